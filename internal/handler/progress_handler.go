package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/service"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
	"github.com/gradepath/gradepath-api/pkg/response"
)

// ProgressHandler serves CGPA projection requests.
type ProgressHandler struct {
	service *service.ProgressService
}

// NewProgressHandler creates a new handler.
func NewProgressHandler(svc *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: svc}
}

// Project godoc
// @Summary Project CGPA goal
// @Description Computes the semester average needed to reach the target CGPA
// @Tags Progress
// @Accept json
// @Produce json
// @Param payload body dto.ProjectionRequest true "Projection inputs"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /progress/projection [post]
func (h *ProgressHandler) Project(c *gin.Context) {
	var req dto.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid projection payload"))
		return
	}

	res, err := h.service.Project(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}
