package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gradepath/gradepath-api/internal/models"
)

// StudentRepository persists planning profiles and feedback.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByEmail fetches the planning profile for an email.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	const query = `SELECT id, email, name, level, current_cgpa, target_cgpa, completed_units, created_at, updated_at
FROM students WHERE email = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, email); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a planning profile.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	const query = `INSERT INTO students (id, email, name, level, current_cgpa, target_cgpa, completed_units, created_at, updated_at)
VALUES (:id, :email, :name, :level, :current_cgpa, :target_cgpa, :completed_units, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdateCGPA stores the student's current standing.
func (r *StudentRepository) UpdateCGPA(ctx context.Context, email string, currentCGPA float64, completedUnits *float64) error {
	const query = `UPDATE students SET current_cgpa = $1, completed_units = COALESCE($2, completed_units), updated_at = $3
WHERE email = $4`
	result, err := r.db.ExecContext(ctx, query, currentCGPA, completedUnits, time.Now().UTC(), email)
	if err != nil {
		return fmt.Errorf("update cgpa: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cgpa rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// AppendFeedback stores one feedback message, append-only.
func (r *StudentRepository) AppendFeedback(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	feedback.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO feedback (id, email, message, created_at)
VALUES (:id, :email, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, feedback); err != nil {
		return fmt.Errorf("append feedback: %w", err)
	}
	return nil
}

// ListFeedback returns a student's feedback history, oldest first.
func (r *StudentRepository) ListFeedback(ctx context.Context, email string) ([]models.Feedback, error) {
	const query = `SELECT id, email, message, created_at FROM feedback WHERE email = $1 ORDER BY created_at ASC`
	var entries []models.Feedback
	if err := r.db.SelectContext(ctx, &entries, query, email); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return entries, nil
}
