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

type ListService interface {
	ListListsByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error)
	CreateList(ctx context.Context, in validation.CreateListInput) (*model.List, error)
	UpdateList(ctx context.Context, id uuid.UUID, in validation.UpdateListInput) (*model.List, error)
}

type ListHandler struct {
	lists  ListService
	access BoardAccess
}

func NewListHandler(lists ListService, access BoardAccess) *ListHandler {
	return &ListHandler{lists: lists, access: access}
}

// GetByBoard returns the lists of a board ordered by position
// @Summary  Lists of a board
// @Tags     Lists
// @Security BearerAuth
// @Produce  json
// @Param    id  path    string true "Board ID"
// @Success  200 {array} ListResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /boards/{id}/lists [get]
func (h *ListHandler) GetByBoard(c *gin.Context) {
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

	lists, err := h.lists.ListListsByBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve lists")
		return
	}

	resp := make([]ListResponse, len(lists))
	for i := range lists {
		resp[i] = listResponse(&lists[i])
	}
	c.JSON(http.StatusOK, resp)
}

// Create appends a list to a board
// @Summary  Create list
// @Tags     Lists
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    list body     validation.CreateListInput true "List"
// @Success  201  {object} ListResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validation.CreateListInput
	if !bindJSON(c, &req) {
		return
	}
	boardID := uuid.MustParse(req.BoardID)
	if !allowed(c, h.access.CheckBoard(c.Request.Context(), userID, boardID, service.WriteAccess)) {
		return
	}

	list, err := h.lists.CreateList(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create list")
		return
	}

	c.JSON(http.StatusCreated, listResponse(list))
}

// Update renames or repositions a list
// @Summary  Update list
// @Tags     Lists
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id   path     string                     true "List ID"
// @Param    list body     validation.UpdateListInput true "Changes"
// @Success  200  {object} ListResponse
// @Failure  400  {object} ErrorResponse
// @Failure  403  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /lists/{id} [put]
func (h *ListHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateListInput
	if !bindJSON(c, &req) {
		return
	}
	if !allowed(c, h.access.CheckList(c.Request.Context(), userID, listID, service.WriteAccess)) {
		return
	}

	list, err := h.lists.UpdateList(c.Request.Context(), listID, req)
	if err != nil {
		respondError(c, err, "Failed to update list")
		return
	}

	c.JSON(http.StatusOK, listResponse(list))
}
