package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradepath/gradepath-api/internal/models"
	"github.com/gradepath/gradepath-api/internal/service"
)

type userRepoStub struct {
	userByEmail   *models.User
	created       *models.User
	refreshTokens map[string]*models.RefreshToken
}

func (m *userRepoStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.userByEmail == nil {
		return nil, sql.ErrNoRows
	}
	return m.userByEmail, nil
}

func (m *userRepoStub) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.userByEmail == nil || m.userByEmail.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.userByEmail, nil
}

func (m *userRepoStub) Create(ctx context.Context, user *models.User) error {
	m.created = user
	return nil
}

func (m *userRepoStub) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	return nil
}

func (m *userRepoStub) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.refreshTokens == nil {
		m.refreshTokens = make(map[string]*models.RefreshToken)
	}
	m.refreshTokens[token.Token] = token
	return nil
}

func (m *userRepoStub) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.refreshTokens[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return rt, nil
}

func (m *userRepoStub) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	return nil
}

func (m *userRepoStub) RevokeUserRefreshTokens(ctx context.Context, userID string) error {
	return nil
}

type studentCreateStub struct {
	created *models.Student
}

func (m *studentCreateStub) Create(ctx context.Context, student *models.Student) error {
	m.created = student
	return nil
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func newAuthHandlerForTest(users *userRepoStub) *AuthHandler {
	svc := service.NewAuthService(users, &studentCreateStub{}, nil, zap.NewNop(), service.AuthConfig{
		AccessTokenSecret:  "secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	})
	return NewAuthHandler(svc)
}

func TestAuthHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := &userRepoStub{}
	handler := newAuthHandlerForTest(users)

	payload, _ := json.Marshal(models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		Password:   "secret123",
		Level:      "300",
		TargetCGPA: 4.5,
	})
	c, w := newGinContext(http.MethodPost, "/auth/register", payload)

	handler.Register(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, users.created)
}

func TestAuthHandlerRegisterDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := &userRepoStub{userByEmail: &models.User{ID: "u1", Email: "ada@example.com"}}
	handler := newAuthHandlerForTest(users)

	payload, _ := json.Marshal(models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		Password:   "secret123",
		Level:      "300",
		TargetCGPA: 4.5,
	})
	c, w := newGinContext(http.MethodPost, "/auth/register", payload)

	handler.Register(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	users := &userRepoStub{userByEmail: &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Active: true}}
	handler := newAuthHandlerForTest(users)

	payload, _ := json.Marshal(models.LoginRequest{Email: "ada@example.com", Password: "password"})
	c, w := newGinContext(http.MethodPost, "/auth/login", payload)

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	users := &userRepoStub{userByEmail: &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Active: true}}
	handler := newAuthHandlerForTest(users)

	payload, _ := json.Marshal(models.LoginRequest{Email: "ada@example.com", Password: "nope"})
	c, w := newGinContext(http.MethodPost, "/auth/login", payload)

	handler.Login(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
