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

type BoardService interface {
	GetBoard(ctx context.Context, id uuid.UUID) (*model.Board, error)
	ListBoardsByOwner(ctx context.Context, ownerID, viewerID uuid.UUID, in validation.ListBoardsInput) (*service.BoardPage, error)
	CreateBoard(ctx context.Context, ownerID uuid.UUID, in validation.CreateBoardInput) (*model.Board, error)
	UpdateBoard(ctx context.Context, id uuid.UUID, in validation.UpdateBoardInput) (*model.Board, error)
	RecordRecentView(ctx context.Context, userID, boardID uuid.UUID) (*model.RecentlyViewed, error)
	ListRecentlyViewed(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
}

type BoardHandler struct {
	boards BoardService
}

func NewBoardHandler(boards BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// Create creates a new board owned by the authenticated user
// @Summary  Create board
// @Tags     Boards
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    board body     validation.CreateBoardInput true "Board"
// @Success  201   {object} BoardResponse
// @Failure  400   {object} ErrorResponse
// @Failure  409   {object} ErrorResponse
// @Router   /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validation.CreateBoardInput
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boards.CreateBoard(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to create board")
		return
	}

	c.JSON(http.StatusCreated, boardResponse(board))
}

// GetByID returns a board. Private boards are visible to their owner only.
// @Summary  Get board
// @Tags     Boards
// @Security BearerAuth
// @Produce  json
// @Param    id  path     string true "Board ID"
// @Success  200 {object} BoardResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	board, err := h.boards.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	if !allowed(c, service.Authorize(board, userID, service.ReadAccess)) {
		return
	}

	c.JSON(http.StatusOK, boardResponse(board))
}

// ListByOwner pages through a user's boards, newest first. Other users only
// see the owner's public boards.
// @Summary  List boards of a user
// @Tags     Boards
// @Security BearerAuth
// @Produce  json
// @Param    id     path     string true  "Owner ID"
// @Param    limit  query    int    false "Page size (1-100)"
// @Param    cursor query    string false "First board of the page"
// @Success  200    {object} BoardPageResponse
// @Failure  400    {object} ErrorResponse
// @Router   /users/{id}/boards [get]
func (h *BoardHandler) ListByOwner(c *gin.Context) {
	viewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var query validation.ListBoardsInput
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, validation.FromBindError(err), "")
		return
	}

	page, err := h.boards.ListBoardsByOwner(c.Request.Context(), ownerID, viewerID, query)
	if err != nil {
		respondError(c, err, "Failed to retrieve boards")
		return
	}

	resp := BoardPageResponse{Items: boardResponses(page.Items), TotalCount: page.TotalCount}
	if page.NextCursor != nil {
		next := page.NextCursor.String()
		resp.NextCursor = &next
	}
	c.JSON(http.StatusOK, resp)
}

// Update renames a board owned by the authenticated user
// @Summary  Update board title
// @Tags     Boards
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id    path     string                      true "Board ID"
// @Param    board body     validation.UpdateBoardInput true "Title"
// @Success  200   {object} BoardResponse
// @Failure  400   {object} ErrorResponse
// @Failure  403   {object} ErrorResponse
// @Failure  404   {object} ErrorResponse
// @Failure  409   {object} ErrorResponse
// @Router   /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateBoardInput
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boards.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	if !allowed(c, service.Authorize(board, userID, service.WriteAccess)) {
		return
	}

	updated, err := h.boards.UpdateBoard(c.Request.Context(), boardID, req)
	if err != nil {
		respondError(c, err, "Failed to update board")
		return
	}

	c.JSON(http.StatusOK, boardResponse(updated))
}

// RecordView marks a board the user can read as visited
// @Summary  Record board visit
// @Tags     Boards
// @Security BearerAuth
// @Produce  json
// @Param    id  path     string true "Board ID"
// @Success  200 {object} RecentViewResponse
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /boards/{id}/views [post]
func (h *BoardHandler) RecordView(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	board, err := h.boards.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}
	if !allowed(c, service.Authorize(board, userID, service.ReadAccess)) {
		return
	}

	record, err := h.boards.RecordRecentView(c.Request.Context(), userID, boardID)
	if err != nil {
		respondError(c, err, "Failed to record visit")
		return
	}

	c.JSON(http.StatusOK, RecentViewResponse{
		UserID:    record.UserID.String(),
		BoardID:   record.BoardID.String(),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	})
}

// Recent lists the boards the authenticated user visited last
// @Summary  Recently viewed boards
// @Tags     Boards
// @Security BearerAuth
// @Produce  json
// @Success  200 {array} BoardResponse
// @Router   /me/recent-boards [get]
func (h *BoardHandler) Recent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boards.ListRecentlyViewed(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve recent boards")
		return
	}

	c.JSON(http.StatusOK, boardResponses(boards))
}
