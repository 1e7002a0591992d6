package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todolist/internal/config"
	"todolist/internal/todo"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	dayStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Subject list"))
	b.WriteString(fmt.Sprintf("  (sort: %s)", m.store.SortMode()))
	b.WriteString("\n\n")

	view := m.store.View()
	if len(view) == 0 {
		b.WriteString(fmt.Sprintf("No todos yet. Press '%s' to add one.", m.cfg.Keys.Add))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList(view))
	}

	b.WriteString("\n---\n")
	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString(dayStyle.Render(fmt.Sprintf("  (%s)", m.store.Draft().Day)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderList(view []todo.Item) string {
	edit, editing := m.store.Editing()

	var b strings.Builder
	for i, it := range view {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = cursorStyle.Render(">")
		}

		if editing && m.mode == modeEdit && edit.ID == it.ID {
			b.WriteString(fmt.Sprintf("%s %s %s\n", ">", m.input.View(), dayStyle.Render("("+string(edit.Day)+")")))
			continue
		}

		checkbox := "[ ]"
		text := it.Text
		if it.Completed {
			checkbox = "[x]"
			text = doneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, text, dayStyle.Render("("+string(it.Day)+")")))
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s edit • %s remove • %s sort • %s/%s day • %s quit",
		k.Up, k.Down, k.Add, keyLabel(k.Toggle), k.Edit, k.Delete, k.Sort, k.NextDay, k.PrevDay, k.Quit)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
