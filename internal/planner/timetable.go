package planner

import "sort"

// CourseEntry is one scheduled course row as entered by the student.
// Day is free text until normalized; Time is an opaque string.
type CourseEntry struct {
	Course string
	Day    string
	Time   string
	Units  float64
}

// Timetable groups course entries under canonical weekdays in a fixed
// display order.
type Timetable struct {
	Days  []Weekday
	ByDay map[Weekday][]CourseEntry
}

// BuildTimetable buckets courses by normalized weekday for each day in
// display order. Every requested day is present in the result, with an
// empty bucket when nothing matches. Entries whose day fails to
// normalize to one of the requested days are left out; a five-day view
// omits weekend entries by construction, not by error.
//
// Each bucket is sorted by the raw time string using plain lexicographic
// comparison. That only yields chronological order when all entries
// share one zero-padded format; "10:00 AM" sorts before "9:00 AM".
// Intentionally kept as-is to match the saved-schedule contract.
func BuildTimetable(courses []CourseEntry, days []Weekday) Timetable {
	byDay := make(map[Weekday][]CourseEntry, len(days))
	for _, day := range days {
		bucket := []CourseEntry{}
		for _, course := range courses {
			normalized, err := NormalizeWeekday(course.Day)
			if err != nil {
				continue
			}
			if normalized == day {
				bucket = append(bucket, course)
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Time < bucket[j].Time
		})
		byDay[day] = bucket
	}
	return Timetable{Days: days, ByDay: byDay}
}
