package planner

import "time"

// ISODate is the wire format for calendar dates.
const ISODate = "2006-01-02"

// TaskItem is a date-stamped task as shown on the calendar.
type TaskItem struct {
	ID        string
	Date      string
	Text      string
	Completed bool
}

// CalendarCell is one rendered day of a month view: the date, a bounded
// preview of that day's tasks, and how many were cut off.
type CalendarCell struct {
	Date          time.Time
	Tasks         []TaskItem
	OverflowCount int
}

// MonthGrid returns the full rectangular date range needed to render
// the month containing ref: from the Sunday on or before the first of
// the month through the Saturday on or after its last day. The result
// is contiguous, duplicate-free, and always a multiple of seven long.
func MonthGrid(ref time.Time) []time.Time {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	end := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	grid := make([]time.Time, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grid = append(grid, d)
	}
	return grid
}

// GroupTasks maps tasks onto the grid dates by exact ISO date match,
// preserving insertion order within each day. Each cell keeps at most
// previewLimit tasks plus an overflow count; inputs are not mutated.
func GroupTasks(tasks []TaskItem, grid []time.Time, previewLimit int) []CalendarCell {
	if previewLimit < 0 {
		previewLimit = 0
	}
	cells := make([]CalendarCell, 0, len(grid))
	for _, date := range grid {
		key := date.Format(ISODate)
		matching := []TaskItem{}
		for _, task := range tasks {
			if task.Date == key {
				matching = append(matching, task)
			}
		}
		overflow := 0
		if len(matching) > previewLimit {
			overflow = len(matching) - previewLimit
			matching = matching[:previewLimit]
		}
		cells = append(cells, CalendarCell{Date: date, Tasks: matching, OverflowCount: overflow})
	}
	return cells
}
