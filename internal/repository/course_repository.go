package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gradepath/gradepath-api/internal/models"
)

// ErrNoRowsAffected signals an update that matched nothing.
var ErrNoRowsAffected = errors.New("no rows affected")

// CourseRepository persists a student's weekly schedule. The schedule
// follows a whole-collection contract: reads load every row, writes
// replace every row in one transaction.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListByEmail returns the saved schedule in insertion order.
func (r *CourseRepository) ListByEmail(ctx context.Context, email string) ([]models.CourseRecord, error) {
	const query = `SELECT id, email, course, day, "time", unit, position, created_at
FROM courses WHERE email = $1 ORDER BY position ASC`
	var courses []models.CourseRecord
	if err := r.db.SelectContext(ctx, &courses, query, email); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Replace swaps the student's entire schedule for the given rows. On
// any failure the transaction rolls back and the stored schedule is
// untouched.
func (r *CourseRepository) Replace(ctx context.Context, email string, courses []models.CourseRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace courses: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM courses WHERE email = $1", email); err != nil {
		return fmt.Errorf("clear courses: %w", err)
	}

	const insert = `INSERT INTO courses (id, email, course, day, "time", unit, position, created_at)
VALUES (:id, :email, :course, :day, :time, :unit, :position, :created_at)`
	now := time.Now().UTC()
	for i := range courses {
		courses[i].Email = email
		courses[i].Position = i
		if courses[i].ID == "" {
			courses[i].ID = uuid.NewString()
		}
		if courses[i].CreatedAt.IsZero() {
			courses[i].CreatedAt = now
		}
		if _, err := tx.NamedExecContext(ctx, insert, courses[i]); err != nil {
			return fmt.Errorf("insert course %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace courses: %w", err)
	}
	return nil
}
