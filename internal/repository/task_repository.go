package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gradepath/gradepath-api/internal/models"
)

// TaskRepository persists the task list with the same whole-collection
// contract as courses: load the full set, rewrite the full set on every
// mutation. No incremental diffing.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs a task repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByEmail returns the student's tasks in insertion order.
func (r *TaskRepository) ListByEmail(ctx context.Context, email string) ([]models.Task, error) {
	const query = `SELECT id, email, "date", text, completed, position, created_at
FROM tasks WHERE email = $1 ORDER BY position ASC`
	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query, email); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Replace swaps the student's entire task list inside one transaction.
// A failed write leaves the stored list exactly as it was.
func (r *TaskRepository) Replace(ctx context.Context, email string, tasks []models.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tasks: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE email = $1", email); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	const insert = `INSERT INTO tasks (id, email, "date", text, completed, position, created_at)
VALUES (:id, :email, :date, :text, :completed, :position, :created_at)`
	now := time.Now().UTC()
	for i := range tasks {
		tasks[i].Email = email
		tasks[i].Position = i
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		if tasks[i].CreatedAt.IsZero() {
			tasks[i].CreatedAt = now
		}
		if _, err := tx.NamedExecContext(ctx, insert, tasks[i]); err != nil {
			return fmt.Errorf("insert task %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tasks: %w", err)
	}
	return nil
}
