package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in validation.RegisterInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, in validation.LoginInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupUserRouter(userID uuid.UUID) (*MockAuthService, func(method, path string, body any) (int, []byte)) {
	svc := new(MockAuthService)
	h := handler.NewUserHandler(svc)
	r := newRouter(userID)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/me", h.Me)
	return svc, func(method, path string, body any) (int, []byte) {
		resp := perform(r, method, path, body)
		return resp.Code, resp.Body.Bytes()
	}
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	svc, do := setupUserRouter(uuid.Nil)
	reqBody := validation.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	user := &model.User{ID: uuid.New(), Name: reqBody.Name, Email: reqBody.Email, HashedPassword: "secret-hash"}
	svc.On("Register", mock.Anything, reqBody).Return(&service.AuthResult{Token: "jwt", User: user}, nil)

	// Act
	code, body := do(http.MethodPost, "/auth/register", reqBody)

	// Assert
	require.Equal(t, http.StatusCreated, code)
	response := decodeBytes[handler.AuthResponse](body)
	assert.Equal(t, "jwt", response.Token)
	assert.Equal(t, reqBody.Name, response.User.Name)
	assert.Equal(t, reqBody.Email, response.User.Email)
	assert.NotContains(t, string(body), "secret-hash")
	svc.AssertExpectations(t)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	// Arrange
	svc, do := setupUserRouter(uuid.Nil)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, &service.ConflictError{Message: "Email already registered"})

	// Act
	code, body := do(http.MethodPost, "/auth/register", validation.RegisterInput{
		Name:     "Test User",
		Email:    "existing@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email already registered", decodeBytes[map[string]string](body)["error"])
}

func TestRegister_InvalidInput(t *testing.T) {
	svc, do := setupUserRouter(uuid.Nil)

	code, body := do(http.MethodPost, "/auth/register", map[string]string{"email": "nope", "name": "T", "password": "1"})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), `"email":"email"`)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	svc, do := setupUserRouter(uuid.Nil)
	good := validation.LoginInput{Email: "test@example.com", Password: "password123"}
	bad := validation.LoginInput{Email: "test@example.com", Password: "wrong"}
	svc.On("Login", mock.Anything, good).Return(&service.AuthResult{Token: "jwt", User: &model.User{ID: uuid.New()}}, nil)
	svc.On("Login", mock.Anything, bad).Return(nil, service.ErrInvalidCredentials)

	code, body := do(http.MethodPost, "/auth/login", good)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "jwt", decodeBytes[handler.AuthResponse](body).Token)

	code, _ = do(http.MethodPost, "/auth/login", bad)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLogoutAndMe(t *testing.T) {
	userID := uuid.New()
	svc, do := setupUserRouter(userID)
	svc.On("Logout", mock.Anything, "session-1").Return(nil)
	svc.On("CurrentUser", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Ann", Email: "ann@example.com"}, nil)

	code, body := do(http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ann", decodeBytes[handler.UserResponse](body).Name)

	code, _ = do(http.MethodPost, "/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, code)
	svc.AssertExpectations(t)
}
