package dto

import "github.com/gradepath/gradepath-api/internal/models"

// CreateTaskRequest adds one task to the list.
type CreateTaskRequest struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// CalendarCell is one rendered day of the month view.
type CalendarCell struct {
	Date          string        `json:"date"`
	InMonth       bool          `json:"in_month"`
	Tasks         []models.Task `json:"tasks"`
	OverflowCount int           `json:"overflow_count"`
}

// CalendarResponse is the complete month grid, always whole weeks.
type CalendarResponse struct {
	Month string         `json:"month"`
	Cells []CalendarCell `json:"cells"`
}
