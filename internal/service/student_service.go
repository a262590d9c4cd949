package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/models"
	"github.com/gradepath/gradepath-api/internal/repository"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
)

type studentRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateCGPA(ctx context.Context, email string, currentCGPA float64, completedUnits *float64) error
	AppendFeedback(ctx context.Context, feedback *models.Feedback) error
	ListFeedback(ctx context.Context, email string) ([]models.Feedback, error)
}

type studentCourseRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.CourseRecord, error)
}

// StudentService serves the planning profile behind an account.
type StudentService struct {
	students  studentRepository
	courses   studentCourseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(students studentRepository, courses studentCourseRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{students: students, courses: courses, validator: validate, logger: logger}
}

// GetRecord returns the student's profile together with the saved
// schedule rows, matching the record-fetch contract.
func (s *StudentService) GetRecord(ctx context.Context, email string) (*dto.StudentRecordResponse, error) {
	student, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student record")
	}

	events, err := s.courses.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch saved schedule")
	}
	if events == nil {
		events = []models.CourseRecord{}
	}

	return &dto.StudentRecordResponse{
		Name:           student.Name,
		Email:          student.Email,
		Level:          student.Level,
		CurrentCGPA:    student.CurrentCGPA,
		TargetCGPA:     student.TargetCGPA,
		CompletedUnits: student.CompletedUnits,
		Events:         events,
	}, nil
}

// UpdateCGPA stores the student's current standing. The CGPA must sit
// on the five-point scale; completed units are optional and keep their
// stored value when omitted.
func (s *StudentService) UpdateCGPA(ctx context.Context, email string, req dto.UpdateCGPARequest) error {
	if req.CurrentCGPA < 0 || req.CurrentCGPA > 5 {
		return appErrors.Clone(appErrors.ErrValidation, "current_cgpa must be between 0 and 5")
	}
	if req.CompletedUnits != nil && *req.CompletedUnits < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "completed_units must not be negative")
	}

	if err := s.students.UpdateCGPA(ctx, email, req.CurrentCGPA, req.CompletedUnits); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return appErrors.Clone(appErrors.ErrNotFound, "student record not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update cgpa")
	}

	s.logger.Info("cgpa updated", zap.String("email", email), zap.Float64("current_cgpa", req.CurrentCGPA))
	return nil
}

// SubmitFeedback appends one feedback message to the student's history.
func (s *StudentService) SubmitFeedback(ctx context.Context, email string, req dto.FeedbackRequest) error {
	message := strings.TrimSpace(req.Feedback)
	if message == "" {
		return appErrors.Clone(appErrors.ErrValidation, "feedback must not be empty")
	}

	feedback := &models.Feedback{Email: email, Message: message}
	if err := s.students.AppendFeedback(ctx, feedback); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store feedback")
	}
	return nil
}

// ListFeedback returns the student's feedback history, oldest first.
func (s *StudentService) ListFeedback(ctx context.Context, email string) ([]models.Feedback, error) {
	entries, err := s.students.ListFeedback(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	if entries == nil {
		entries = []models.Feedback{}
	}
	return entries, nil
}
