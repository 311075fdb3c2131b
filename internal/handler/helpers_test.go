package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskboard/internal/middleware"
	"taskboard/internal/service"
	"taskboard/internal/validation"
)

type MockBoardAccess struct {
	mock.Mock
}

func (m *MockBoardAccess) CheckBoard(ctx context.Context, userID, boardID uuid.UUID, level service.AccessLevel) error {
	return m.Called(ctx, userID, boardID, level).Error(0)
}

func (m *MockBoardAccess) CheckList(ctx context.Context, userID, listID uuid.UUID, level service.AccessLevel) error {
	return m.Called(ctx, userID, listID, level).Error(0)
}

func (m *MockBoardAccess) CheckCard(ctx context.Context, userID, cardID uuid.UUID, level service.AccessLevel) error {
	return m.Called(ctx, userID, cardID, level).Error(0)
}

// accessReturning answers every check with err.
func accessReturning(err error) *MockBoardAccess {
	m := new(MockBoardAccess)
	for _, method := range []string{"CheckBoard", "CheckList", "CheckCard"} {
		m.On(method, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(err)
	}
	return m
}

func newRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.RegisterGin()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.UserIDKey, userID)
			c.Set(middleware.SessionIDKey, "session-1")
		}
		c.Next()
	})
	return r
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBytes[T any](body []byte) T {
	var out T
	_ = json.Unmarshal(body, &out)
	return out
}
