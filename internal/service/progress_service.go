package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/planner"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
)

// ProgressService runs CGPA goal projections over live form input.
type ProgressService struct {
	logger *zap.Logger
}

// NewProgressService constructs a ProgressService instance.
func NewProgressService(logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{logger: logger}
}

// Project computes the semester performance needed to reach the target
// CGPA. Nothing derived is stored; every call recomputes from the
// request alone.
func (s *ProgressService) Project(ctx context.Context, req dto.ProjectionRequest) (*dto.ProjectionResponse, error) {
	plan := make([]planner.GradePlan, 0, len(req.Plan))
	var plannedUnits float64
	for _, entry := range req.Plan {
		plan = append(plan, planner.GradePlan{
			Course:      entry.Course,
			Units:       entry.Unit,
			TargetGrade: planner.Letter(entry.TargetGrade),
		})
		plannedUnits += entry.Unit
	}

	projection, err := planner.Project(planner.State{
		CurrentCGPA:    req.CurrentCGPA,
		CompletedUnits: req.CompletedUnits,
		TargetCGPA:     req.TargetCGPA,
		Plan:           plan,
	})
	if err != nil {
		var invalid *planner.ErrInvalidInput
		if errors.As(err, &invalid) {
			return nil, appErrors.Clone(appErrors.ErrValidation, invalid.Reason)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "projection failed")
	}

	return &dto.ProjectionResponse{
		PlannedUnits:           plannedUnits,
		RequiredSemesterPoints: projection.RequiredSemesterPoints,
		RequiredAveragePoint:   projection.RequiredAveragePoint,
		RequiredAverageGrade:   string(projection.ImpliedLetter),
		Outlook:                string(projection.Outlook),
	}, nil
}
