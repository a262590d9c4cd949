package models

import "time"

// CourseRecord is one row of a student's saved weekly schedule. Day is
// stored normalized (canonical weekday name); Time stays exactly as the
// student typed it.
type CourseRecord struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"-"`
	Course    string    `db:"course" json:"course"`
	Day       string    `db:"day" json:"day"`
	Time      string    `db:"time" json:"time"`
	Unit      float64   `db:"unit" json:"unit"`
	Position  int       `db:"position" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
