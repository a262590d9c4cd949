package dto

import "github.com/gradepath/gradepath-api/internal/models"

// StudentRecordResponse mirrors the student-record fetch contract:
// profile fields plus the saved schedule rows.
type StudentRecordResponse struct {
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Level          string                `json:"level"`
	CurrentCGPA    *float64              `json:"current_cgpa,omitempty"`
	TargetCGPA     float64               `json:"target_cgpa"`
	CompletedUnits float64               `json:"completed_units"`
	Events         []models.CourseRecord `json:"events"`
}

// UpdateCGPARequest updates the student's current CGPA standing.
type UpdateCGPARequest struct {
	CurrentCGPA    float64  `json:"current_cgpa"`
	CompletedUnits *float64 `json:"completed_units"`
}

// FeedbackRequest appends one feedback message.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// ChatRequest relays one message to the assistant backend.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply verbatim.
type ChatResponse struct {
	Reply string `json:"reply"`
}
