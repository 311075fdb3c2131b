package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/service"
)

// BoardAccess authorizes the caller against the board owning a resource.
type BoardAccess interface {
	CheckBoard(ctx context.Context, userID, boardID uuid.UUID, level service.AccessLevel) error
	CheckList(ctx context.Context, userID, listID uuid.UUID, level service.AccessLevel) error
	CheckCard(ctx context.Context, userID, cardID uuid.UUID, level service.AccessLevel) error
}

// allowed writes the 403/404 for a failed access check.
func allowed(c *gin.Context, err error) bool {
	if err != nil {
		respondError(c, err, "Failed to check board access")
		return false
	}
	return true
}
