// Package todo holds the in-memory todo list and the orderings used to
// display it.
package todo

import (
	"strings"

	"golang.org/x/text/language"
)

// Store owns the items and the transient draft and edit buffers. It is
// meant to be driven from a single event loop and does no locking.
type Store struct {
	items   []Item
	nextID  int
	draft   Draft
	editing *Edit
	sort    SortMode
	locale  language.Tag
}

// NewStore returns an empty store sorted by SortUncompleted.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		draft:  emptyDraft(),
		sort:   SortUncompleted,
		locale: language.English,
	}
}

// UpdateDraft sets the draft text or day. Values are not validated.
func (s *Store) UpdateDraft(field Field, value string) {
	switch field {
	case FieldText:
		s.draft.Text = value
	case FieldDay:
		s.draft.Day = Weekday(value)
	}
}

// SetDraftDay is UpdateDraft(FieldDay, ...) for typed callers.
func (s *Store) SetDraftDay(day Weekday) {
	s.draft.Day = day
}

// Add appends the draft as a new item and resets the draft. A draft
// whose text is blank is ignored. The stored text keeps its whitespace.
// It reports whether an item was added.
func (s *Store) Add() (Item, bool) {
	if strings.TrimSpace(s.draft.Text) == "" {
		return Item{}, false
	}
	item := Item{
		ID:   s.nextID,
		Text: s.draft.Text,
		Day:  s.draft.Day,
	}
	s.nextID++
	s.items = append(s.items, item)
	s.draft = emptyDraft()
	return item, true
}

// CancelDraft discards the draft.
func (s *Store) CancelDraft() {
	s.draft = emptyDraft()
}

// Remove deletes the item with id, if present.
func (s *Store) Remove(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
}

// ToggleComplete flips the completion flag of the item with id.
func (s *Store) ToggleComplete(id int) {
	if i := s.index(id); i >= 0 {
		s.items[i].Completed = !s.items[i].Completed
	}
}

// StartEditing opens an edit session for id seeded with text and day.
// The values are taken as given; the store does not look the item up.
// Any session already open is replaced and its buffer discarded.
func (s *Store) StartEditing(id int, text string, day Weekday) {
	s.editing = &Edit{ID: id, Text: text, Day: day}
}

// UpdateEdit changes the edit buffer. It does nothing when no session
// is open.
func (s *Store) UpdateEdit(field Field, value string) {
	if s.editing == nil {
		return
	}
	switch field {
	case FieldText:
		s.editing.Text = value
	case FieldDay:
		s.editing.Day = Weekday(value)
	}
}

// CancelEditing closes the edit session without touching any item.
func (s *Store) CancelEditing() {
	s.editing = nil
}

// SaveEditedTodo copies the edit buffer into the item with id and
// closes the session. The session closes even when id is unknown.
func (s *Store) SaveEditedTodo(id int) {
	if s.editing != nil {
		if i := s.index(id); i >= 0 {
			s.items[i].Text = s.editing.Text
			s.items[i].Day = s.editing.Day
		}
	}
	s.editing = nil
}

// Items returns the items in insertion order.
func (s *Store) Items() []Item {
	return cloneItems(s.items)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Lookup returns the item with id.
func (s *Store) Lookup(id int) (Item, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return Item{}, false
}

// Draft returns the current draft.
func (s *Store) Draft() Draft {
	return s.draft
}

// Editing returns the open edit session, if any.
func (s *Store) Editing() (Edit, bool) {
	if s.editing == nil {
		return Edit{}, false
	}
	return *s.editing, true
}

// SortMode returns the selected display order.
func (s *Store) SortMode() SortMode {
	return s.sort
}

// SetSortMode selects the display order. Storage order is unaffected.
func (s *Store) SetSortMode(mode SortMode) {
	s.sort = mode
}

// SetLocale sets the collation used by SortAlphabetical.
func (s *Store) SetLocale(tag language.Tag) {
	s.locale = tag
}

// View returns the items in the selected display order.
func (s *Store) View() []Item {
	return OrderForLocale(s.items, s.sort, s.locale)
}

func (s *Store) index(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
