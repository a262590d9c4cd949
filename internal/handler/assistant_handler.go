package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradepath/gradepath-api/internal/dto"
	"github.com/gradepath/gradepath-api/internal/service"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
	"github.com/gradepath/gradepath-api/pkg/response"
)

// AssistantHandler relays chat messages to the advisory backend.
type AssistantHandler struct {
	service *service.AssistantService
}

// NewAssistantHandler creates a new handler.
func NewAssistantHandler(svc *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: svc}
}

// Chat godoc
// @Summary Chat with the advisor
// @Description Forwards a message to the advisory backend and relays the reply
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body dto.ChatRequest true "Chat message"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), claims.Email, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, reply, nil)
}
