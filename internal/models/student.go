package models

import "time"

// Student is the planning profile behind an account, keyed by email to
// match the record-fetch contract of the frontend.
type Student struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Name           string    `db:"name" json:"name"`
	Level          string    `db:"level" json:"level"`
	CurrentCGPA    *float64  `db:"current_cgpa" json:"current_cgpa,omitempty"`
	TargetCGPA     float64   `db:"target_cgpa" json:"target_cgpa"`
	CompletedUnits float64   `db:"completed_units" json:"completed_units"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Feedback is one submitted feedback message, append-only.
type Feedback struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
