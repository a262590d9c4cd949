package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/service"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
	"github.com/gradepath/gradepath-api/pkg/response"
)

// ScheduleHandler serves the weekly schedule endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Get godoc
// @Summary Get saved schedule
// @Description Returns the stored schedule rows in insertion order
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.service.GetSchedule(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses, nil)
}

// Save godoc
// @Summary Replace schedule
// @Description Validates, normalizes and stores the submitted rows as the whole schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.SaveScheduleRequest true "Schedule payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule [put]
func (h *ScheduleHandler) Save(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	saved, err := h.service.SaveSchedule(c.Request.Context(), claims.Email, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, saved, nil)
}

// Timetable godoc
// @Summary Get weekly timetable
// @Description Returns the normalized Monday-to-Friday view of the saved schedule
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule/timetable [get]
func (h *ScheduleHandler) Timetable(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	timetable, err := h.service.GetTimetable(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, timetable, nil)
}

// Export godoc
// @Summary Export timetable
// @Description Downloads the weekly timetable as CSV or PDF
// @Tags Schedule
// @Produce octet-stream
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /schedule/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	name, payload, err := h.service.Export(c.Request.Context(), claims.Email, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := "text/csv"
	if format == service.ExportPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, payload)
}
