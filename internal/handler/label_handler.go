package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

type LabelService interface {
	ListLabelsByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Label, error)
	CreateLabel(ctx context.Context, in validation.CreateLabelInput) (*model.Label, error)
	AttachLabel(ctx context.Context, cardID, labelID uuid.UUID) error
	DetachLabel(ctx context.Context, cardID, labelID uuid.UUID) error
}

type LabelHandler struct {
	labels LabelService
	access BoardAccess
}

func NewLabelHandler(labels LabelService, access BoardAccess) *LabelHandler {
	return &LabelHandler{labels: labels, access: access}
}

// GetByBoard returns the labels defined on a board
// @Summary  Labels of a board
// @Tags     Labels
// @Security BearerAuth
// @Produce  json
// @Param    id  path    string true "Board ID"
// @Success  200 {array} LabelResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /boards/{id}/labels [get]
func (h *LabelHandler) GetByBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !allowed(c, h.access.CheckBoard(c.Request.Context(), userID, boardID, service.ReadAccess)) {
		return
	}

	labels, err := h.labels.ListLabelsByBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve labels")
		return
	}

	resp := make([]LabelResponse, len(labels))
	for i := range labels {
		resp[i] = labelResponse(&labels[i])
	}
	c.JSON(http.StatusOK, resp)
}

// Create defines a new label on a board
// @Summary  Create label
// @Tags     Labels
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    label body     validation.CreateLabelInput true "Label"
// @Success  201   {object} LabelResponse
// @Failure  400   {object} ErrorResponse
// @Failure  403   {object} ErrorResponse
// @Failure  404   {object} ErrorResponse
// @Router   /labels [post]
func (h *LabelHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validation.CreateLabelInput
	if !bindJSON(c, &req) {
		return
	}
	boardID := uuid.MustParse(req.BoardID)
	if !allowed(c, h.access.CheckBoard(c.Request.Context(), userID, boardID, service.WriteAccess)) {
		return
	}

	label, err := h.labels.CreateLabel(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create label")
		return
	}

	c.JSON(http.StatusCreated, labelResponse(label))
}

// Attach puts a label on a card
// @Summary  Attach label to card
// @Tags     Labels
// @Security BearerAuth
// @Param    id       path string true "Card ID"
// @Param    label_id path string true "Label ID"
// @Success  204
// @Failure  400 {object} ErrorResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /cards/{id}/labels/{label_id} [post]
func (h *LabelHandler) Attach(c *gin.Context) {
	cardID, labelID, ok := h.writableCard(c)
	if !ok {
		return
	}

	if err := h.labels.AttachLabel(c.Request.Context(), cardID, labelID); err != nil {
		respondError(c, err, "Failed to add label to card")
		return
	}

	c.Status(http.StatusNoContent)
}

// Detach takes a label off a card
// @Summary  Detach label from card
// @Tags     Labels
// @Security BearerAuth
// @Param    id       path string true "Card ID"
// @Param    label_id path string true "Label ID"
// @Success  204
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /cards/{id}/labels/{label_id} [delete]
func (h *LabelHandler) Detach(c *gin.Context) {
	cardID, labelID, ok := h.writableCard(c)
	if !ok {
		return
	}

	if err := h.labels.DetachLabel(c.Request.Context(), cardID, labelID); err != nil {
		respondError(c, err, "Failed to remove label from card")
		return
	}

	c.Status(http.StatusNoContent)
}

// writableCard parses the card and label ids and requires write access to
// the card's board.
func (h *LabelHandler) writableCard(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	labelID, ok := pathID(c, "label_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	if !allowed(c, h.access.CheckCard(c.Request.Context(), userID, cardID, service.WriteAccess)) {
		return uuid.Nil, uuid.Nil, false
	}
	return cardID, labelID, true
}
