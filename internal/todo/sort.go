package todo

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects how the list is ordered for display.
type SortMode string

const (
	SortUncompleted  SortMode = "uncompleted"
	SortCompleted    SortMode = "completed"
	SortAlphabetical SortMode = "alphabetical"
	SortDay          SortMode = "day"
)

// SortModes lists the modes in the order the UI cycles through them.
var SortModes = []SortMode{SortUncompleted, SortCompleted, SortAlphabetical, SortDay}

// ParseSortMode matches a mode name case-insensitively.
func ParseSortMode(s string) (SortMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range SortModes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Next returns the mode after m, wrapping around.
func (m SortMode) Next() SortMode {
	for i, candidate := range SortModes {
		if candidate == m {
			return SortModes[(i+1)%len(SortModes)]
		}
	}
	return SortModes[0]
}

// OrderFor returns a sorted copy of items using English collation for
// SortAlphabetical.
func OrderFor(items []Item, mode SortMode) []Item {
	return OrderForLocale(items, mode, language.English)
}

// OrderForLocale returns a sorted copy of items. The sort is stable, so
// items that compare equal keep their insertion order. Modes other than
// the first three order by day.
func OrderForLocale(items []Item, mode SortMode, tag language.Tag) []Item {
	out := cloneItems(items)
	if len(out) < 2 {
		return out
	}
	slices.SortStableFunc(out, comparator(mode, tag))
	return out
}

func comparator(mode SortMode, tag language.Tag) func(a, b Item) int {
	switch mode {
	case SortCompleted:
		return func(a, b Item) int { return completedFirst(a.Completed, b.Completed) }
	case SortUncompleted:
		return func(a, b Item) int { return completedFirst(b.Completed, a.Completed) }
	case SortAlphabetical:
		// A Collator is not safe for concurrent use.
		c := collate.New(tag)
		return func(a, b Item) int { return c.CompareString(a.Text, b.Text) }
	default:
		return func(a, b Item) int { return a.Day.Rank() - b.Day.Rank() }
	}
}

func completedFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
