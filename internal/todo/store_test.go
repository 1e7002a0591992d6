package todo

import (
	"reflect"
	"testing"
)

func addItem(t *testing.T, s *Store, text string, day Weekday) Item {
	t.Helper()
	s.UpdateDraft(FieldText, text)
	s.UpdateDraft(FieldDay, string(day))
	item, ok := s.Add()
	if !ok {
		t.Fatalf("Add(%q) was ignored", text)
	}
	return item
}

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
	if got := s.Draft(); got != (Draft{Day: Monday}) {
		t.Fatalf("Draft = %+v, want empty Monday draft", got)
	}
	if _, ok := s.Editing(); ok {
		t.Fatalf("Editing reported an open session on a new store")
	}
	if s.SortMode() != SortUncompleted {
		t.Fatalf("SortMode = %q, want %q", s.SortMode(), SortUncompleted)
	}
}

func TestAdd_AppendsAndResetsDraft(t *testing.T) {
	s := NewStore()
	s.UpdateDraft(FieldText, "  read chapter 3 ")
	s.UpdateDraft(FieldDay, "Thursday")

	item, ok := s.Add()
	if !ok {
		t.Fatalf("Add returned false for non-empty text")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	want := Item{ID: item.ID, Text: "  read chapter 3 ", Day: Thursday, Completed: false}
	if got := s.Items()[0]; got != want {
		t.Fatalf("item = %+v, want %+v", got, want)
	}
	if got := s.Draft(); got != (Draft{Day: Monday}) {
		t.Fatalf("Draft after Add = %+v, want reset", got)
	}
}

func TestAdd_BlankTextIgnored(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n  "} {
		s := NewStore()
		addItem(t, s, "existing", Friday)
		before := s.Items()

		s.UpdateDraft(FieldText, text)
		s.UpdateDraft(FieldDay, "Sunday")
		if _, ok := s.Add(); ok {
			t.Fatalf("Add(%q) reported success", text)
		}
		if !reflect.DeepEqual(s.Items(), before) {
			t.Fatalf("items changed after blank add %q", text)
		}
		if got := s.Draft(); got.Text != text || got.Day != Sunday {
			t.Fatalf("Draft = %+v, want untouched after ignored add", got)
		}
	}
}

func TestAdd_IDsAreUnique(t *testing.T) {
	s := NewStore()
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		item := addItem(t, s, "task", Monday)
		if seen[item.ID] {
			t.Fatalf("duplicate id %d", item.ID)
		}
		seen[item.ID] = true
	}
	// Removing must not allow an id to be handed out again.
	s.Remove(5)
	item := addItem(t, s, "after remove", Monday)
	if seen[item.ID] {
		t.Fatalf("id %d reused after remove", item.ID)
	}
}

func TestUpdateDraft_NoValidation(t *testing.T) {
	s := NewStore()
	s.UpdateDraft(FieldDay, "Someday")
	if got := s.Draft().Day; got != "Someday" {
		t.Fatalf("Draft.Day = %q, want Someday", got)
	}
	s.SetDraftDay(Saturday)
	if got := s.Draft().Day; got != Saturday {
		t.Fatalf("Draft.Day = %q, want Saturday", got)
	}
}

func TestCancelDraft(t *testing.T) {
	s := NewStore()
	s.UpdateDraft(FieldText, "half typed")
	s.UpdateDraft(FieldDay, "Wednesday")
	s.CancelDraft()
	if got := s.Draft(); got != (Draft{Day: Monday}) {
		t.Fatalf("Draft = %+v, want reset", got)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	a := addItem(t, s, "a", Monday)
	b := addItem(t, s, "b", Tuesday)
	c := addItem(t, s, "c", Wednesday)

	s.Remove(b.ID)
	want := []Item{a, c}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Items = %+v, want %+v", got, want)
	}

	s.Remove(999)
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Items after unknown remove = %+v, want %+v", got, want)
	}
}

func TestToggleComplete_Involution(t *testing.T) {
	s := NewStore()
	item := addItem(t, s, "a", Monday)

	s.ToggleComplete(item.ID)
	if got, _ := s.Lookup(item.ID); !got.Completed {
		t.Fatalf("Completed = false after one toggle")
	}
	s.ToggleComplete(item.ID)
	if got, _ := s.Lookup(item.ID); got.Completed {
		t.Fatalf("Completed = true after two toggles")
	}

	before := s.Items()
	s.ToggleComplete(42)
	if !reflect.DeepEqual(s.Items(), before) {
		t.Fatalf("unknown toggle changed items")
	}
}

func TestEditing_SaveAppliesBuffer(t *testing.T) {
	s := NewStore()
	item := addItem(t, s, "old", Monday)

	s.StartEditing(item.ID, "X", Tuesday)
	edit, ok := s.Editing()
	if !ok || edit != (Edit{ID: item.ID, Text: "X", Day: Tuesday}) {
		t.Fatalf("Editing = %+v, %v; want seeded session", edit, ok)
	}

	s.UpdateEdit(FieldText, "new text")
	s.UpdateEdit(FieldDay, "Saturday")
	s.SaveEditedTodo(item.ID)

	got, _ := s.Lookup(item.ID)
	if got.Text != "new text" || got.Day != Saturday {
		t.Fatalf("item = %+v, want edited text and day", got)
	}
	if _, ok := s.Editing(); ok {
		t.Fatalf("session still open after save")
	}
}

func TestEditing_CancelLeavesItem(t *testing.T) {
	s := NewStore()
	item := addItem(t, s, "keep", Friday)

	s.StartEditing(item.ID, item.Text, item.Day)
	s.UpdateEdit(FieldText, "discard me")
	s.CancelEditing()

	if got, _ := s.Lookup(item.ID); got != item {
		t.Fatalf("item = %+v, want %+v", got, item)
	}
	if _, ok := s.Editing(); ok {
		t.Fatalf("session still open after cancel")
	}
}

func TestEditing_SaveUnknownIDEndsSession(t *testing.T) {
	s := NewStore()
	item := addItem(t, s, "a", Monday)
	before := s.Items()

	s.StartEditing(77, "ghost", Sunday)
	s.SaveEditedTodo(77)

	if !reflect.DeepEqual(s.Items(), before) {
		t.Fatalf("items changed after saving unknown id")
	}
	if _, ok := s.Editing(); ok {
		t.Fatalf("session still open")
	}
	if got, _ := s.Lookup(item.ID); got != item {
		t.Fatalf("item = %+v, want %+v", got, item)
	}
}

func TestEditing_SecondStartReplacesBuffer(t *testing.T) {
	s := NewStore()
	a := addItem(t, s, "a", Monday)
	b := addItem(t, s, "b", Tuesday)

	s.StartEditing(a.ID, a.Text, a.Day)
	s.UpdateEdit(FieldText, "pending for a")
	s.StartEditing(b.ID, b.Text, b.Day)

	edit, _ := s.Editing()
	if edit != (Edit{ID: b.ID, Text: "b", Day: Tuesday}) {
		t.Fatalf("Editing = %+v, want session for b", edit)
	}
	s.SaveEditedTodo(b.ID)
	if got, _ := s.Lookup(a.ID); got != a {
		t.Fatalf("abandoned edit leaked into a: %+v", got)
	}
}

func TestUpdateEdit_WithoutSession(t *testing.T) {
	s := NewStore()
	s.UpdateEdit(FieldText, "nothing")
	if _, ok := s.Editing(); ok {
		t.Fatalf("UpdateEdit opened a session")
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewStore()
	item := addItem(t, s, "a", Monday)

	items := s.Items()
	items[0].Text = "mutated"
	if got, _ := s.Lookup(item.ID); got.Text != "a" {
		t.Fatalf("store item changed through Items copy: %q", got.Text)
	}
}

func TestView_UsesSortModeWithoutReordering(t *testing.T) {
	s := NewStore()
	b := addItem(t, s, "b", Friday)
	a := addItem(t, s, "a", Monday)
	s.ToggleComplete(a.ID)

	s.SetSortMode(SortCompleted)
	if got := ids(s.View()); !reflect.DeepEqual(got, []int{a.ID, b.ID}) {
		t.Fatalf("View ids = %v, want [%d %d]", got, a.ID, b.ID)
	}
	if got := ids(s.Items()); !reflect.DeepEqual(got, []int{b.ID, a.ID}) {
		t.Fatalf("Items ids = %v, want insertion order", got)
	}
}

func ids(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
