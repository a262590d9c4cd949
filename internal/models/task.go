package models

import "time"

// Task is a date-stamped to-do item. Position preserves insertion order
// across whole-collection rewrites.
type Task struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"-"`
	Date      string    `db:"date" json:"date"`
	Text      string    `db:"text" json:"text"`
	Completed bool      `db:"completed" json:"completed"`
	Position  int       `db:"position" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
