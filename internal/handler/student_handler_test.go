package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/middleware"
	"github.com/gradepath/gradepath-api/internal/models"
	"github.com/gradepath/gradepath-api/internal/service"
)

type studentRepoStub struct {
	student  *models.Student
	feedback []models.Feedback
}

func (m *studentRepoStub) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if m.student == nil {
		return nil, sql.ErrNoRows
	}
	return m.student, nil
}

func (m *studentRepoStub) UpdateCGPA(ctx context.Context, email string, currentCGPA float64, completedUnits *float64) error {
	return nil
}

func (m *studentRepoStub) AppendFeedback(ctx context.Context, feedback *models.Feedback) error {
	m.feedback = append(m.feedback, *feedback)
	return nil
}

func (m *studentRepoStub) ListFeedback(ctx context.Context, email string) ([]models.Feedback, error) {
	return m.feedback, nil
}

type courseListStub struct {
	courses []models.CourseRecord
}

func (m *courseListStub) ListByEmail(ctx context.Context, email string) ([]models.CourseRecord, error) {
	return m.courses, nil
}

func newStudentHandlerForTest(students *studentRepoStub, courses *courseListStub) *StudentHandler {
	return NewStudentHandler(service.NewStudentService(students, courses, nil, zap.NewNop()))
}

func TestStudentHandlerGetRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	students := &studentRepoStub{student: &models.Student{Email: "ada@example.com", Name: "Ada Obi", TargetCGPA: 4.5}}
	courses := &courseListStub{courses: []models.CourseRecord{{Course: "MTH 201", Day: "Monday", Time: "08:00"}}}
	handler := newStudentHandlerForTest(students, courses)

	c, w := newGinContext(http.MethodGet, "/students/me", nil)
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.GetRecord(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestStudentHandlerGetRecordMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandlerForTest(&studentRepoStub{}, &courseListStub{})

	c, w := newGinContext(http.MethodGet, "/students/me", nil)
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.GetRecord(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentHandlerUpdateCGPA(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandlerForTest(&studentRepoStub{}, &courseListStub{})

	payload, _ := json.Marshal(dto.UpdateCGPARequest{CurrentCGPA: 3.4})
	c, w := newGinContext(http.MethodPut, "/students/me/cgpa", payload)
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.UpdateCGPA(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestStudentHandlerUpdateCGPAOutOfRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandlerForTest(&studentRepoStub{}, &courseListStub{})

	payload, _ := json.Marshal(dto.UpdateCGPARequest{CurrentCGPA: 9.9})
	c, w := newGinContext(http.MethodPut, "/students/me/cgpa", payload)
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.UpdateCGPA(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerSubmitFeedback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	students := &studentRepoStub{}
	handler := newStudentHandlerForTest(students, &courseListStub{})

	payload, _ := json.Marshal(dto.FeedbackRequest{Feedback: "great tool"})
	c, w := newGinContext(http.MethodPost, "/students/me/feedback", payload)
	c.Set(middleware.ContextUserKey, studentClaims())

	handler.SubmitFeedback(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, students.feedback, 1)
}
