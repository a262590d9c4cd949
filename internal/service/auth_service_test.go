package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradepath/gradepath-api/internal/models"
	appErrors "github.com/gradepath/gradepath-api/pkg/errors"
)

type mockUserRepo struct {
	userByEmail      *models.User
	created          *models.User
	refreshTokens    map[string]*models.RefreshToken
	lastLoginUpdated bool
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.userByEmail == nil {
		return nil, sql.ErrNoRows
	}
	return m.userByEmail, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.userByEmail == nil || m.userByEmail.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.userByEmail, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	m.created = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	m.lastLoginUpdated = true
	return nil
}

func (m *mockUserRepo) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.refreshTokens == nil {
		m.refreshTokens = make(map[string]*models.RefreshToken)
	}
	m.refreshTokens[token.Token] = token
	return nil
}

func (m *mockUserRepo) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.refreshTokens[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return rt, nil
}

func (m *mockUserRepo) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	for _, token := range m.refreshTokens {
		if token.ID == id {
			token.Revoked = true
			token.RevokedAt = &revokedAt
		}
	}
	return nil
}

func (m *mockUserRepo) RevokeUserRefreshTokens(ctx context.Context, userID string) error {
	return nil
}

type mockStudentProfileRepo struct {
	created *models.Student
}

func (m *mockStudentProfileRepo) Create(ctx context.Context, student *models.Student) error {
	m.created = student
	return nil
}

func newTestAuthService(users *mockUserRepo, students *mockStudentProfileRepo) *AuthService {
	return NewAuthService(users, students, validator.New(), zap.NewNop(), AuthConfig{
		AccessTokenSecret:  "secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "gradepath-test",
	})
}

func TestAuthServiceRegisterCreatesAccountAndProfile(t *testing.T) {
	users := &mockUserRepo{}
	students := &mockStudentProfileRepo{}
	svc := newTestAuthService(users, students)

	info, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		Password:   "secret123",
		Level:      "300",
		TargetCGPA: 4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", info.Email)
	assert.Equal(t, models.RoleStudent, info.Role)

	require.NotNil(t, users.created)
	assert.NotEqual(t, "secret123", users.created.PasswordHash)
	require.NotNil(t, students.created)
	assert.Equal(t, "300", students.created.Level)
	assert.Equal(t, 4.5, students.created.TargetCGPA)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{userByEmail: &models.User{ID: "u1", Email: "ada@example.com"}}
	svc := newTestAuthService(users, &mockStudentProfileRepo{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		Password:   "secret123",
		Level:      "300",
		TargetCGPA: 4.5,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestAuthServiceRegisterRejectsInvalidPayload(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{}, &mockStudentProfileRepo{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "not-an-email"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	users := &mockUserRepo{userByEmail: &models.User{
		ID:           "u1",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Active:       true,
		Role:         models.RoleStudent,
	}}
	svc := newTestAuthService(users, &mockStudentProfileRepo{})

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "password"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.True(t, users.lastLoginUpdated)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	users := &mockUserRepo{userByEmail: &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Active: true}}
	svc := newTestAuthService(users, &mockStudentProfileRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	users := &mockUserRepo{userByEmail: &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Active: false}}
	svc := newTestAuthService(users, &mockStudentProfileRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "password"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErr.Code)
}

func TestAuthServiceRefreshTokenRotates(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	users := &mockUserRepo{userByEmail: &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Active: true}}
	svc := newTestAuthService(users, &mockStudentProfileRepo{})

	login, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "password"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	used := users.refreshTokens[login.RefreshToken]
	require.NotNil(t, used)
	assert.True(t, used.Revoked)
}

func TestAuthServiceRefreshTokenExpired(t *testing.T) {
	users := &mockUserRepo{
		userByEmail: &models.User{ID: "u1", Email: "ada@example.com", Active: true},
		refreshTokens: map[string]*models.RefreshToken{
			"stale": {ID: "rt1", UserID: "u1", Token: "stale", ExpiresAt: time.Now().UTC().Add(-time.Hour)},
		},
	}
	svc := newTestAuthService(users, &mockStudentProfileRepo{})

	_, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: "stale"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{}, &mockStudentProfileRepo{})

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
