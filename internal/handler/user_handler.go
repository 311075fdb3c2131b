package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

type AuthService interface {
	Register(ctx context.Context, in validation.RegisterInput) (*service.AuthResult, error)
	Login(ctx context.Context, in validation.LoginInput) (*service.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type UserHandler struct {
	auth AuthService
}

func NewUserHandler(auth AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register signs up a user with email and password
// @Summary  Register
// @Tags     Users
// @Accept   json
// @Produce  json
// @Param    user body     validation.RegisterInput true "Credentials"
// @Success  201  {object} AuthResponse
// @Failure  400  {object} ErrorResponse
// @Failure  409  {object} ErrorResponse
// @Router   /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req validation.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: result.Token, User: userResponse(result.User)})
}

// Login exchanges credentials for a token
// @Summary  Login
// @Tags     Users
// @Accept   json
// @Produce  json
// @Param    credentials body     validation.LoginInput true "Credentials"
// @Success  200         {object} AuthResponse
// @Failure  400         {object} ErrorResponse
// @Failure  401         {object} ErrorResponse
// @Router   /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req validation.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: userResponse(result.User)})
}

// Logout ends the session the token was issued for
// @Summary  Logout
// @Tags     Users
// @Security BearerAuth
// @Success  204
// @Router   /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, err, "Failed to sign out")
		return
	}

	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user
// @Summary  Current user
// @Tags     Users
// @Security BearerAuth
// @Produce  json
// @Success  200 {object} UserResponse
// @Failure  404 {object} ErrorResponse
// @Router   /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}
