package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/models"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
)

type mockTaskRepo struct {
	tasks    []models.Task
	replaced int
}

func (m *mockTaskRepo) ListByEmail(ctx context.Context, email string) ([]models.Task, error) {
	return m.tasks, nil
}

func (m *mockTaskRepo) Replace(ctx context.Context, email string, tasks []models.Task) error {
	m.tasks = tasks
	m.replaced++
	return nil
}

func TestTaskServiceAdd(t *testing.T) {
	repo := &mockTaskRepo{}
	svc := NewTaskService(repo, zap.NewNop(), 3)

	task, err := svc.Add(context.Background(), "ada@example.com", dto.CreateTaskRequest{Text: "  read notes ", Date: "2026-09-10"})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "read notes", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, 1, repo.replaced)
	require.Len(t, repo.tasks, 1)
}

func TestTaskServiceAddRejectsBadDate(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, zap.NewNop(), 3)

	_, err := svc.Add(context.Background(), "ada@example.com", dto.CreateTaskRequest{Text: "x", Date: "10-09-2026"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestTaskServiceAddRejectsEmptyText(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, zap.NewNop(), 3)

	_, err := svc.Add(context.Background(), "ada@example.com", dto.CreateTaskRequest{Text: "   ", Date: "2026-09-10"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestTaskServiceToggle(t *testing.T) {
	repo := &mockTaskRepo{tasks: []models.Task{
		{ID: "t1", Date: "2026-09-10", Text: "read notes"},
		{ID: "t2", Date: "2026-09-11", Text: "submit lab"},
	}}
	svc := NewTaskService(repo, zap.NewNop(), 3)

	toggled, err := svc.Toggle(context.Background(), "ada@example.com", "t1")
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.Toggle(context.Background(), "ada@example.com", "t1")
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	assert.Equal(t, "submit lab", repo.tasks[1].Text)
}

func TestTaskServiceToggleMissing(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, zap.NewNop(), 3)

	_, err := svc.Toggle(context.Background(), "ada@example.com", "nope")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestTaskServiceRemove(t *testing.T) {
	repo := &mockTaskRepo{tasks: []models.Task{
		{ID: "t1", Date: "2026-09-10", Text: "read notes"},
		{ID: "t2", Date: "2026-09-11", Text: "submit lab"},
	}}
	svc := NewTaskService(repo, zap.NewNop(), 3)

	err := svc.Remove(context.Background(), "ada@example.com", "t1")
	require.NoError(t, err)
	require.Len(t, repo.tasks, 1)
	assert.Equal(t, "t2", repo.tasks[0].ID)
}

func TestTaskServiceRemoveMissing(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, zap.NewNop(), 3)

	err := svc.Remove(context.Background(), "ada@example.com", "nope")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestTaskServiceMonthView(t *testing.T) {
	repo := &mockTaskRepo{tasks: []models.Task{
		{ID: "t1", Date: "2026-09-10", Text: "one"},
		{ID: "t2", Date: "2026-09-10", Text: "two"},
		{ID: "t3", Date: "2026-09-10", Text: "three"},
		{ID: "t4", Date: "2026-09-10", Text: "four"},
		{ID: "t5", Date: "2026-10-01", Text: "next month"},
	}}
	svc := NewTaskService(repo, zap.NewNop(), 3)

	view, err := svc.MonthView(context.Background(), "ada@example.com", "2026-09")
	require.NoError(t, err)
	assert.Equal(t, "2026-09", view.Month)
	assert.Equal(t, 0, len(view.Cells)%7)

	var busy *dto.CalendarCell
	for i := range view.Cells {
		if view.Cells[i].Date == "2026-09-10" {
			busy = &view.Cells[i]
		}
	}
	require.NotNil(t, busy)
	assert.True(t, busy.InMonth)
	assert.Len(t, busy.Tasks, 3)
	assert.Equal(t, 1, busy.OverflowCount)
}

func TestTaskServiceMonthViewBadMonth(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, zap.NewNop(), 3)

	_, err := svc.MonthView(context.Background(), "ada@example.com", "September 2026")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
