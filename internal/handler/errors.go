package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/middleware"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps service error kinds onto HTTP statuses. Anything
// unrecognised is logged and reported as fallback with a 500.
func respondError(c *gin.Context, err error, fallback string) {
	var (
		verr     *validation.ValidationError
		notFound *service.NotFoundError
		conflict *service.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input", Fields: verr.Fields})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflict.Message})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
	default:
		log.WithError(err).WithField("route", c.FullPath()).Error("❌ " + fallback)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// bindJSON decodes and validates the body, writing a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, validation.FromBindError(err), "")
		return false
	}
	return true
}

// pathID parses a uuid path parameter, writing a 400 on failure.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, validation.Field(param, "uuid"), "")
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Invalid user ID format"})
		return uuid.Nil, false
	}
	return id, true
}
