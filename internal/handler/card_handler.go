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

type CardService interface {
	ListCardsByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error)
	CreateCard(ctx context.Context, in validation.CreateCardInput) (*model.Card, error)
	UpdateCardPosition(ctx context.Context, id uuid.UUID, in validation.UpdateCardPositionInput) (*model.Card, error)
	UpdateCard(ctx context.Context, id uuid.UUID, in validation.UpdateCardInput) (*model.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

type CardHandler struct {
	cards  CardService
	access BoardAccess
}

func NewCardHandler(cards CardService, access BoardAccess) *CardHandler {
	return &CardHandler{cards: cards, access: access}
}

// GetByList returns the cards of a list ordered by position
// @Summary  Cards of a list
// @Tags     Cards
// @Security BearerAuth
// @Produce  json
// @Param    id  path    string true "List ID"
// @Success  200 {array} CardResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /lists/{id}/cards [get]
func (h *CardHandler) GetByList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !allowed(c, h.access.CheckList(c.Request.Context(), userID, listID, service.ReadAccess)) {
		return
	}

	cards, err := h.cards.ListCardsByList(c.Request.Context(), listID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cards")
		return
	}

	resp := make([]CardResponse, len(cards))
	for i := range cards {
		resp[i] = cardResponse(&cards[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID returns a card with its active labels
// @Summary  Get card
// @Tags     Cards
// @Security BearerAuth
// @Produce  json
// @Param    id  path     string true "Card ID"
// @Success  200 {object} CardResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !allowed(c, h.access.CheckCard(c.Request.Context(), userID, cardID, service.ReadAccess)) {
		return
	}

	card, err := h.cards.GetCard(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve card")
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

// Create appends a card to a list
// @Summary  Create card
// @Tags     Cards
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    card body     validation.CreateCardInput true "Card"
// @Success  201  {object} CardResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validation.CreateCardInput
	if !bindJSON(c, &req) {
		return
	}
	listID := uuid.MustParse(req.ListID)
	if !allowed(c, h.access.CheckList(c.Request.Context(), userID, listID, service.WriteAccess)) {
		return
	}

	card, err := h.cards.CreateCard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create card")
		return
	}

	c.JSON(http.StatusCreated, cardResponse(card))
}

// UpdatePosition overwrites a card's position
// @Summary  Move card within its list
// @Tags     Cards
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id       path     string                             true "Card ID"
// @Param    position body     validation.UpdateCardPositionInput true "Position"
// @Success  200      {object} CardResponse
// @Failure  400      {object} ErrorResponse
// @Failure  403      {object} ErrorResponse
// @Failure  404      {object} ErrorResponse
// @Router   /cards/{id}/position [put]
func (h *CardHandler) UpdatePosition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateCardPositionInput
	if !bindJSON(c, &req) {
		return
	}
	if !allowed(c, h.access.CheckCard(c.Request.Context(), userID, cardID, service.WriteAccess)) {
		return
	}

	card, err := h.cards.UpdateCardPosition(c.Request.Context(), cardID, req)
	if err != nil {
		respondError(c, err, "Failed to update card position")
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

// Update applies a partial update to a card. Moving it to another list needs
// write access to that list's board as well.
// @Summary  Update card
// @Tags     Cards
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id   path     string                     true "Card ID"
// @Param    card body     validation.UpdateCardInput true "Changes"
// @Success  200  {object} CardResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateCardInput
	if !bindJSON(c, &req) {
		return
	}
	if !allowed(c, h.access.CheckCard(c.Request.Context(), userID, cardID, service.WriteAccess)) {
		return
	}
	if req.ListID != nil {
		target := uuid.MustParse(*req.ListID)
		if !allowed(c, h.access.CheckList(c.Request.Context(), userID, target, service.WriteAccess)) {
			return
		}
	}

	card, err := h.cards.UpdateCard(c.Request.Context(), cardID, req)
	if err != nil {
		respondError(c, err, "Failed to update card")
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

// Delete removes a card
// @Summary  Delete card
// @Tags     Cards
// @Security BearerAuth
// @Param    id  path string true "Card ID"
// @Success  204
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !allowed(c, h.access.CheckCard(c.Request.Context(), userID, cardID, service.WriteAccess)) {
		return
	}

	if err := h.cards.DeleteCard(c.Request.Context(), cardID); err != nil {
		respondError(c, err, "Failed to delete card")
		return
	}

	c.Status(http.StatusNoContent)
}
