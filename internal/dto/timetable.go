package dto

import "github.com/gradepath/gradepath-api/internal/models"

// ScheduleEntryRequest is one course row as submitted by the client.
// Unit is a pointer so a missing field can default to zero.
type ScheduleEntryRequest struct {
	Course string   `json:"course"`
	Day    string   `json:"day"`
	Time   string   `json:"time"`
	Unit   *float64 `json:"unit"`
}

// SaveScheduleRequest replaces the student's entire schedule.
type SaveScheduleRequest struct {
	Events []ScheduleEntryRequest `json:"events"`
}

// TimetableDay is one weekday column of the normalized weekly view.
type TimetableDay struct {
	Day     string                `json:"day"`
	Courses []models.CourseRecord `json:"courses"`
}

// TimetableResponse is the weekly view in display order.
type TimetableResponse struct {
	Days []TimetableDay `json:"days"`
}
