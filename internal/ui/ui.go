package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"todolist/internal/config"
	"todolist/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type Model struct {
	store      *todo.Store
	cfg        config.Config
	log        *log.Logger
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	confirmDel bool
	pendingDel *todo.Item
}

func Run(cfg config.Config, logger *log.Logger, firstLaunch bool) error {
	store := todo.NewStore()
	store.SetSortMode(cfg.SortMode())
	if tag, err := language.Parse(cfg.Locale); err == nil {
		store.SetLocale(tag)
	} else {
		logger.Warn("unknown locale, using default collation", "locale", cfg.Locale, "err", err)
	}

	m := newModel(store, cfg, logger)
	if firstLaunch {
		m.status = "Welcome! A default config was written. " + m.status
	}
	logger.Info("session started", "sort", store.SortMode(), "locale", cfg.Locale)

	program := tea.NewProgram(m)
	_, err := program.Run()
	logger.Info("session ended", "items", store.Len())
	return err
}

func newModel(store *todo.Store, cfg config.Config, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Add new todo"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		store:  store,
		cfg:    cfg,
		log:    logger,
		input:  ti,
		mode:   modeList,
		status: fmt.Sprintf("Press '%s' to add, '%s' to sort.", cfg.Keys.Add, cfg.Keys.Sort),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeEdit:
		return m.updateEditMode(key, msg)
	}
	if key == "space" {
		key = " "
	}
	return m.updateListMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.store.CancelDraft()
		m.leaveInput()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.NextDay:
		m.store.SetDraftDay(m.store.Draft().Day.Next())
		return m, nil
	case m.cfg.Keys.PrevDay:
		m.store.SetDraftDay(m.store.Draft().Day.Prev())
		return m, nil
	case m.cfg.Keys.Confirm:
		m.store.UpdateDraft(todo.FieldText, m.input.Value())
		item, ok := m.store.Add()
		if !ok {
			m.status = "Text cannot be empty"
			return m, nil
		}
		m.log.Debug("todo added", "id", item.ID, "day", item.Day)
		m.selectID(item.ID)
		m.leaveInput()
		m.status = "Added todo"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.UpdateDraft(todo.FieldText, m.input.Value())
		return m, cmd
	}
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edit, ok := m.store.Editing()
	if !ok {
		m.leaveInput()
		return m, nil
	}
	switch key {
	case m.cfg.Keys.Cancel:
		m.store.CancelEditing()
		m.leaveInput()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.NextDay:
		m.store.UpdateEdit(todo.FieldDay, string(edit.Day.Next()))
		return m, nil
	case m.cfg.Keys.PrevDay:
		m.store.UpdateEdit(todo.FieldDay, string(edit.Day.Prev()))
		return m, nil
	case m.cfg.Keys.Confirm:
		m.store.UpdateEdit(todo.FieldText, m.input.Value())
		edit, _ = m.store.Editing()
		m.store.SaveEditedTodo(edit.ID)
		m.log.Debug("todo edited", "id", edit.ID, "day", edit.Day)
		m.selectID(edit.ID)
		m.leaveInput()
		m.status = "Saved todo"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.UpdateEdit(todo.FieldText, m.input.Value())
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	view := m.store.View()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(view))
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, len(view))
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.SetValue(m.store.Draft().Text)
		m.input.Placeholder = "Add new todo"
		m.input.Focus()
		m.status = "Add mode: type a todo, tab to change day, Enter to add"
	case m.cfg.Keys.Toggle:
		if len(view) == 0 {
			return m, nil
		}
		item := view[m.cursor]
		m.store.ToggleComplete(item.ID)
		m.log.Debug("todo toggled", "id", item.ID, "completed", !item.Completed)
		m.selectID(item.ID)
		if item.Completed {
			m.status = "Marked as not done"
		} else {
			m.status = "Completed todo"
		}
	case m.cfg.Keys.Delete:
		if len(view) == 0 {
			return m, nil
		}
		item := view[m.cursor]
		m.confirmDel = true
		m.pendingDel = &item
		m.status = fmt.Sprintf("Remove \"%s\"? y/n", item.Text)
	case m.cfg.Keys.Edit:
		if len(view) == 0 {
			m.status = "No todos to edit"
			return m, nil
		}
		item := view[m.cursor]
		m.store.StartEditing(item.ID, item.Text, item.Day)
		m.mode = modeEdit
		m.input.SetValue(item.Text)
		m.input.CursorEnd()
		m.input.Focus()
		m.status = "Editing: tab to change day, Enter to save, Esc to cancel"
	case m.cfg.Keys.Sort:
		var selected int
		if len(view) > 0 {
			selected = view[m.cursor].ID
		}
		m.store.SetSortMode(m.store.SortMode().Next())
		m.log.Debug("sort changed", "sort", m.store.SortMode())
		if len(view) > 0 {
			m.selectID(selected)
		}
		m.status = fmt.Sprintf("Sorted by %s", m.store.SortMode())
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Remove cancelled"
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to remove"
			break
		}
		m.store.Remove(m.pendingDel.ID)
		m.log.Debug("todo removed", "id", m.pendingDel.ID)
		m.cursor = clampCursor(m.cursor, m.store.Len())
		m.status = "Removed todo"
	default:
		return m, nil
	}
	m.confirmDel = false
	m.pendingDel = nil
	return m, nil
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
}

// selectID moves the cursor onto id in the current display order.
func (m *Model) selectID(id int) {
	view := m.store.View()
	for i, it := range view {
		if it.ID == id {
			m.cursor = i
			return
		}
	}
	m.cursor = clampCursor(m.cursor, len(view))
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
