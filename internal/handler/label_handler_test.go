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

type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) ListLabelsByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *MockLabelService) CreateLabel(ctx context.Context, in validation.CreateLabelInput) (*model.Label, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Label), args.Error(1)
}

func (m *MockLabelService) AttachLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return m.Called(ctx, cardID, labelID).Error(0)
}

func (m *MockLabelService) DetachLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return m.Called(ctx, cardID, labelID).Error(0)
}

func TestLabelHandler(t *testing.T) {
	svc := new(MockLabelService)
	h := handler.NewLabelHandler(svc, accessReturning(nil))
	r := newRouter(uuid.New())
	r.GET("/boards/:id/labels", h.GetByBoard)
	r.POST("/labels", h.Create)
	r.POST("/cards/:id/labels/:label_id", h.Attach)
	r.DELETE("/cards/:id/labels/:label_id", h.Detach)

	boardID, cardID, labelID := uuid.New(), uuid.New(), uuid.New()
	input := validation.CreateLabelInput{BoardID: boardID.String(), Name: "bug", Color: "#ff0000"}
	svc.On("CreateLabel", mock.Anything, input).Return(&model.Label{ID: labelID, BoardID: boardID, Name: "bug", Color: "#ff0000"}, nil)
	svc.On("ListLabelsByBoard", mock.Anything, boardID).Return([]model.Label{{ID: labelID, BoardID: boardID, Name: "bug"}}, nil)
	svc.On("AttachLabel", mock.Anything, cardID, labelID).Return(nil)
	svc.On("DetachLabel", mock.Anything, cardID, labelID).Return(&service.NotFoundError{Resource: "card label"})

	resp := perform(r, http.MethodPost, "/labels", input)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "bug", decodeBytes[handler.LabelResponse](resp.Body.Bytes()).Name)

	resp = perform(r, http.MethodGet, "/boards/"+boardID.String()+"/labels", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeBytes[[]handler.LabelResponse](resp.Body.Bytes()), 1)

	resp = perform(r, http.MethodPost, "/cards/"+cardID.String()+"/labels/"+labelID.String(), nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = perform(r, http.MethodDelete, "/cards/"+cardID.String()+"/labels/"+labelID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = perform(r, http.MethodPost, "/cards/"+cardID.String()+"/labels/oops", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "label_id")

	resp = perform(r, http.MethodPost, "/labels", map[string]string{"boardId": boardID.String(), "name": "x", "color": "blue"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLabelHandler_Forbidden(t *testing.T) {
	svc := new(MockLabelService)
	access := accessReturning(service.ErrForbidden)
	h := handler.NewLabelHandler(svc, access)
	r := newRouter(uuid.New())
	r.GET("/boards/:id/labels", h.GetByBoard)
	r.POST("/labels", h.Create)
	r.POST("/cards/:id/labels/:label_id", h.Attach)
	r.DELETE("/cards/:id/labels/:label_id", h.Detach)
	boardID, cardID, labelID := uuid.New(), uuid.New(), uuid.New()

	resp := perform(r, http.MethodGet, "/boards/"+boardID.String()+"/labels", nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = perform(r, http.MethodPost, "/labels", validation.CreateLabelInput{BoardID: boardID.String(), Name: "bug", Color: "#ff0000"})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = perform(r, http.MethodPost, "/cards/"+cardID.String()+"/labels/"+labelID.String(), nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = perform(r, http.MethodDelete, "/cards/"+cardID.String()+"/labels/"+labelID.String(), nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	access.AssertCalled(t, "CheckCard", mock.Anything, mock.Anything, cardID, service.WriteAccess)
	svc.AssertNotCalled(t, "AttachLabel", mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "DetachLabel", mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "CreateLabel", mock.Anything, mock.Anything)
}
