package planner

import (
	"fmt"
	"strings"
)

// Weekday is one of the seven canonical day names used as timetable keys.
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

// Weekdays lists all seven canonical days in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// SchoolDays is the default Monday-Friday display window.
var SchoolDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// ErrUnknownWeekday reports day input that does not normalize to a
// canonical weekday.
type ErrUnknownWeekday struct {
	Raw string
}

func (e *ErrUnknownWeekday) Error() string {
	return fmt.Sprintf("unknown weekday %q", e.Raw)
}

// NormalizeWeekday canonicalizes free-text day input: surrounding
// whitespace is trimmed, the first character uppercased and the rest
// lowercased, then matched against the seven canonical names.
func NormalizeWeekday(raw string) (Weekday, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ErrUnknownWeekday{Raw: raw}
	}
	normalized := strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:])
	for _, day := range Weekdays {
		if normalized == string(day) {
			return day, nil
		}
	}
	return "", &ErrUnknownWeekday{Raw: raw}
}

// ParseWeekday matches an already-canonical day name. Unlike
// NormalizeWeekday it does not rewrite case; it is meant for values the
// API stores after normalization.
func ParseWeekday(value string) (Weekday, error) {
	for _, day := range Weekdays {
		if value == string(day) {
			return day, nil
		}
	}
	return "", &ErrUnknownWeekday{Raw: value}
}
