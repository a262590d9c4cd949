package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gradepath/gradepath-api/internal/dto"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
)

// AssistantService relays chat messages to the external advisory
// backend. Replies pass through verbatim; any transport problem is
// surfaced as a gateway failure rather than invented locally.
type AssistantService struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewAssistantService constructs an AssistantService instance.
func NewAssistantService(baseURL string, client *http.Client, logger *zap.Logger) *AssistantService {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{baseURL: strings.TrimRight(baseURL, "/"), client: client, logger: logger}
}

// Chat forwards one message and returns the backend's reply.
func (s *AssistantService) Chat(ctx context.Context, email string, req dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "message must not be empty")
	}

	payload, err := json.Marshal(map[string]string{"message": message, "email": email})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode chat payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build chat request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn("assistant backend unreachable", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrTransport.Code, appErrors.ErrTransport.Status, "assistant backend unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("assistant backend error", zap.Int("status", resp.StatusCode))
		return nil, appErrors.Clone(appErrors.ErrTransport, fmt.Sprintf("assistant backend returned status %d", resp.StatusCode))
	}

	var reply dto.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrTransport.Code, appErrors.ErrTransport.Status, "assistant backend sent a malformed reply")
	}
	return &reply, nil
}
