package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/models"
	"github.com/gradepath/gradepath-api/internal/planner"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
	"github.com/gradepath/gradepath-api/pkg/export"
)

type scheduleCourseRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.CourseRecord, error)
	Replace(ctx context.Context, email string, courses []models.CourseRecord) error
}

type timetableCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ExportFormat selects a schedule export renderer.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ScheduleOptions tunes the weekly view.
type ScheduleOptions struct {
	Days     []planner.Weekday
	CacheTTL time.Duration
}

// ScheduleService manages the saved weekly schedule and its derived
// timetable view.
type ScheduleService struct {
	courses  scheduleCourseRepository
	cache    timetableCache
	logger   *zap.Logger
	days     []planner.Weekday
	cacheTTL time.Duration
}

// NewScheduleService constructs a ScheduleService instance.
func NewScheduleService(courses scheduleCourseRepository, cache timetableCache, logger *zap.Logger, opts ScheduleOptions) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	days := opts.Days
	if len(days) == 0 {
		days = planner.SchoolDays
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ScheduleService{courses: courses, cache: cache, logger: logger, days: days, cacheTTL: ttl}
}

// GetSchedule returns the saved schedule rows in insertion order.
func (s *ScheduleService) GetSchedule(ctx context.Context, email string) ([]models.CourseRecord, error) {
	courses, err := s.courses.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	if courses == nil {
		courses = []models.CourseRecord{}
	}
	return courses, nil
}

// SaveSchedule validates and normalizes the submitted rows, then
// replaces the stored schedule as a whole. Day names are canonicalized
// before storage; a missing unit defaults to zero.
func (s *ScheduleService) SaveSchedule(ctx context.Context, email string, req dto.SaveScheduleRequest) ([]models.CourseRecord, error) {
	records := make([]models.CourseRecord, 0, len(req.Events))
	for i, event := range req.Events {
		course := strings.TrimSpace(event.Course)
		if course == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("row %d: course is required", i))
		}
		if strings.TrimSpace(event.Time) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("row %d: time is required", i))
		}

		day, err := planner.NormalizeWeekday(event.Day)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("row %d: %v", i, err))
		}

		unit := 0.0
		if event.Unit != nil {
			unit = *event.Unit
		}
		if unit < 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("row %d: unit must not be negative", i))
		}

		records = append(records, models.CourseRecord{
			Course: course,
			Day:    string(day),
			Time:   strings.TrimSpace(event.Time),
			Unit:   unit,
		})
	}

	if err := s.courses.Replace(ctx, email, records); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}

	if err := s.cache.Delete(ctx, s.timetableKey(email)); err != nil {
		s.logger.Warn("failed to invalidate timetable cache", zap.String("email", email), zap.Error(err))
	}

	s.logger.Info("schedule replaced", zap.String("email", email), zap.Int("rows", len(records)))
	return records, nil
}

// GetTimetable returns the weekly view, serving a cached copy when one
// is fresh.
func (s *ScheduleService) GetTimetable(ctx context.Context, email string) (*dto.TimetableResponse, error) {
	key := s.timetableKey(email)

	var cached dto.TimetableResponse
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("timetable cache read failed", zap.String("email", email), zap.Error(err))
	}

	response, err := s.buildTimetable(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, response, s.cacheTTL); err != nil {
		s.logger.Warn("timetable cache write failed", zap.String("email", email), zap.Error(err))
	}

	return response, nil
}

// Export renders the weekly view as a downloadable file.
func (s *ScheduleService) Export(ctx context.Context, email string, format ExportFormat) (string, []byte, error) {
	timetable, err := s.buildTimetable(ctx, email)
	if err != nil {
		return "", nil, err
	}

	dataset := timetableDataset(timetable)
	switch format {
	case ExportCSV:
		payload, err := export.CSV(dataset)
		if err != nil {
			return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return "timetable.csv", payload, nil
	case ExportPDF:
		payload, err := export.PDF(dataset)
		if err != nil {
			return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return "timetable.pdf", payload, nil
	default:
		return "", nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func (s *ScheduleService) buildTimetable(ctx context.Context, email string) (*dto.TimetableResponse, error) {
	courses, err := s.courses.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}

	entries := make([]planner.CourseEntry, 0, len(courses))
	for _, c := range courses {
		entries = append(entries, planner.CourseEntry{Course: c.Course, Day: c.Day, Time: c.Time, Units: c.Unit})
	}

	timetable := planner.BuildTimetable(entries, s.days)

	response := &dto.TimetableResponse{Days: make([]dto.TimetableDay, 0, len(timetable.Days))}
	for _, day := range timetable.Days {
		bucket := []models.CourseRecord{}
		for _, entry := range timetable.ByDay[day] {
			bucket = append(bucket, models.CourseRecord{
				Course: entry.Course,
				Day:    string(day),
				Time:   entry.Time,
				Unit:   entry.Units,
			})
		}
		response.Days = append(response.Days, dto.TimetableDay{Day: string(day), Courses: bucket})
	}
	return response, nil
}

func (s *ScheduleService) timetableKey(email string) string {
	return "timetable:" + email
}

// timetableDataset lays the weekly view out week-across: one column per
// day, one row per slot index.
func timetableDataset(timetable *dto.TimetableResponse) export.Dataset {
	headers := make([]string, 0, len(timetable.Days))
	depth := 0
	for _, day := range timetable.Days {
		headers = append(headers, day.Day)
		if len(day.Courses) > depth {
			depth = len(day.Courses)
		}
	}

	rows := make([]map[string]string, 0, depth)
	for i := 0; i < depth; i++ {
		row := make(map[string]string, len(headers))
		for _, day := range timetable.Days {
			if i < len(day.Courses) {
				course := day.Courses[i]
				row[day.Day] = fmt.Sprintf("%s (%s)", course.Course, course.Time)
			}
		}
		rows = append(rows, row)
	}

	return export.Dataset{Title: "Weekly Timetable", Headers: headers, Rows: rows}
}
