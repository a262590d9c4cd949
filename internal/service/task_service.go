package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/models"
	"github.com/gradepath/gradepath-api/internal/planner"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
)

type taskRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.Task, error)
	Replace(ctx context.Context, email string, tasks []models.Task) error
}

// TaskService manages the date-stamped task list and its month view.
// Mutations follow the whole-collection contract: load, edit in memory,
// store the full list back.
type TaskService struct {
	tasks        taskRepository
	logger       *zap.Logger
	previewLimit int
}

// NewTaskService constructs a TaskService instance.
func NewTaskService(tasks taskRepository, logger *zap.Logger, previewLimit int) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if previewLimit <= 0 {
		previewLimit = 3
	}
	return &TaskService{tasks: tasks, logger: logger, previewLimit: previewLimit}
}

// List returns every task in insertion order.
func (s *TaskService) List(ctx context.Context, email string) ([]models.Task, error) {
	tasks, err := s.tasks.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Add appends a new incomplete task and stores the updated list.
func (s *TaskService) Add(ctx context.Context, email string, req dto.CreateTaskRequest) (*models.Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "task text must not be empty")
	}
	if _, err := time.Parse(planner.ISODate, req.Date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must use the YYYY-MM-DD format")
	}

	tasks, err := s.List(ctx, email)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:    uuid.NewString(),
		Email: email,
		Date:  req.Date,
		Text:  text,
	}
	tasks = append(tasks, task)

	if err := s.tasks.Replace(ctx, email, tasks); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store tasks")
	}
	return &task, nil
}

// Toggle flips the completion state of one task.
func (s *TaskService) Toggle(ctx context.Context, email, taskID string) (*models.Task, error) {
	tasks, err := s.List(ctx, email)
	if err != nil {
		return nil, err
	}

	var toggled *models.Task
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = !tasks[i].Completed
			toggled = &tasks[i]
			break
		}
	}
	if toggled == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
	}

	if err := s.tasks.Replace(ctx, email, tasks); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store tasks")
	}
	return toggled, nil
}

// Remove deletes one task and stores the remaining list.
func (s *TaskService) Remove(ctx context.Context, email, taskID string) error {
	tasks, err := s.List(ctx, email)
	if err != nil {
		return err
	}

	remaining := make([]models.Task, 0, len(tasks))
	found := false
	for _, task := range tasks {
		if task.ID == taskID {
			found = true
			continue
		}
		remaining = append(remaining, task)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "task not found")
	}

	if err := s.tasks.Replace(ctx, email, remaining); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store tasks")
	}
	return nil
}

// MonthView renders the calendar grid for a month given as YYYY-MM,
// with each day carrying a bounded task preview plus an overflow count.
func (s *TaskService) MonthView(ctx context.Context, email, month string) (*dto.CalendarResponse, error) {
	ref, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "month must use the YYYY-MM format")
	}

	tasks, err := s.List(ctx, email)
	if err != nil {
		return nil, err
	}

	items := make([]planner.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, planner.TaskItem{ID: task.ID, Date: task.Date, Text: task.Text, Completed: task.Completed})
	}

	grid := planner.MonthGrid(ref)
	cells := planner.GroupTasks(items, grid, s.previewLimit)

	response := &dto.CalendarResponse{Month: month, Cells: make([]dto.CalendarCell, 0, len(cells))}
	for _, cell := range cells {
		preview := make([]models.Task, 0, len(cell.Tasks))
		for _, item := range cell.Tasks {
			preview = append(preview, models.Task{ID: item.ID, Email: email, Date: item.Date, Text: item.Text, Completed: item.Completed})
		}
		response.Cells = append(response.Cells, dto.CalendarCell{
			Date:          cell.Date.Format(planner.ISODate),
			InMonth:       cell.Date.Month() == ref.Month(),
			Tasks:         preview,
			OverflowCount: cell.OverflowCount,
		})
	}
	return response, nil
}
