package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/service"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
	"github.com/gradepath/gradepath-api/pkg/response"
)

// StudentHandler serves the planning profile endpoints.
type StudentHandler struct {
	service *service.StudentService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// GetRecord godoc
// @Summary Get student record
// @Description Returns the profile and saved schedule of the current student
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/me [get]
func (h *StudentHandler) GetRecord(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	record, err := h.service.GetRecord(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, record, nil)
}

// UpdateCGPA godoc
// @Summary Update current CGPA
// @Description Store the student's current standing
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.UpdateCGPARequest true "CGPA payload"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/me/cgpa [put]
func (h *StudentHandler) UpdateCGPA(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateCGPARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cgpa payload"))
		return
	}

	if err := h.service.UpdateCGPA(c.Request.Context(), claims.Email, req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Append one feedback message
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.FeedbackRequest true "Feedback payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/me/feedback [post]
func (h *StudentHandler) SubmitFeedback(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	if err := h.service.SubmitFeedback(c.Request.Context(), claims.Email, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "feedback received"})
}

// ListFeedback godoc
// @Summary List feedback history
// @Description Returns the student's feedback messages, oldest first
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/me/feedback [get]
func (h *StudentHandler) ListFeedback(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	entries, err := h.service.ListFeedback(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entries, nil)
}
