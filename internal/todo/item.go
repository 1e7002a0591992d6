package todo

import "strings"

// Weekday labels the day an item is planned for.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// DefaultDay is used for fresh drafts and reset buffers.
const DefaultDay = Monday

// Weekdays lists the labels in rank order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayRank = map[Weekday]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
	Sunday:    7,
}

// unknownRank places labels outside the table after Sunday.
const unknownRank = 8

// Rank returns 1 for Monday through 7 for Sunday.
func (d Weekday) Rank() int {
	if r, ok := dayRank[d]; ok {
		return r
	}
	return unknownRank
}

// Valid reports whether d is one of the seven labels.
func (d Weekday) Valid() bool {
	_, ok := dayRank[d]
	return ok
}

// Next returns the following day, wrapping Sunday to Monday.
// Unknown labels move to Monday.
func (d Weekday) Next() Weekday {
	if !d.Valid() {
		return Monday
	}
	return Weekdays[d.Rank()%len(Weekdays)]
}

// Prev returns the preceding day, wrapping Monday to Sunday.
func (d Weekday) Prev() Weekday {
	if !d.Valid() {
		return Sunday
	}
	return Weekdays[(d.Rank()+len(Weekdays)-2)%len(Weekdays)]
}

// ParseWeekday matches a label case-insensitively, also accepting
// three-letter abbreviations.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, d := range Weekdays {
		name := strings.ToLower(string(d))
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return "", false
}

// Item is a single task.
type Item struct {
	ID        int
	Text      string
	Day       Weekday
	Completed bool
}

// Field selects which buffer value an update targets.
type Field int

const (
	FieldText Field = iota
	FieldDay
)

// Draft holds the values for an item that has not been added yet.
type Draft struct {
	Text string
	Day  Weekday
}

// Edit is an open edit session on an existing item.
type Edit struct {
	ID   int
	Text string
	Day  Weekday
}

func emptyDraft() Draft {
	return Draft{Day: DefaultDay}
}
