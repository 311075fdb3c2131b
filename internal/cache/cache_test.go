package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"taskboard/internal/model"
)

type stubBoards struct {
	boards  map[uuid.UUID]*model.Board
	gets    int
	updates int
}

func (s *stubBoards) Create(ctx context.Context, board *model.Board) error {
	s.boards[board.ID] = board
	return nil
}

func (s *stubBoards) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	s.gets++
	board, ok := s.boards[id]
	if !ok {
		return nil, errors.New("board not found")
	}
	copied := *board
	return &copied, nil
}

func (s *stubBoards) ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool, cursor *uuid.UUID, fetch int) ([]model.Board, error) {
	return nil, errors.New("unexpected ListByOwner call")
}

func (s *stubBoards) CountByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) (int64, error) {
	return int64(len(s.boards)), nil
}

func (s *stubBoards) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.Board, error) {
	s.updates++
	s.boards[id].Title = title
	return s.GetByID(ctx, id)
}

type stubRecent struct {
	records []model.RecentlyViewed
	lists   int
}

func (s *stubRecent) Touch(ctx context.Context, userID, boardID uuid.UUID, at time.Time) (*model.RecentlyViewed, error) {
	record := model.RecentlyViewed{UserID: userID, BoardID: boardID, CreatedAt: at, UpdatedAt: at}
	s.records = append([]model.RecentlyViewed{record}, s.records...)
	return &record, nil
}

func (s *stubRecent) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.RecentlyViewed, error) {
	s.lists++
	if len(s.records) > limit {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestBoards_MissThenHit(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	board := &model.Board{
		ID:         uuid.New(),
		Title:      "Roadmap",
		Background: datatypes.NewJSONType(model.Background{Type: model.BackgroundGradient, Value: "linear-gradient(#000, #fff)"}),
	}
	base := &stubBoards{boards: map[uuid.UUID]*model.Board{board.ID: board}}
	boards := NewBoards(base, client, time.Minute)

	first, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	second, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, base.gets)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, model.BackgroundGradient, second.Background.Data().Type)
	ttl := mr.TTL(boardKey(board.ID))
	assert.True(t, ttl > 0 && ttl <= time.Minute, "unexpected TTL %v", ttl)
}

func TestBoards_UpdateTitleEvicts(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	board := &model.Board{ID: uuid.New(), Title: "Old"}
	base := &stubBoards{boards: map[uuid.UUID]*model.Board{board.ID: board}}
	boards := NewBoards(base, client, time.Minute)

	_, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists(boardKey(board.ID)))

	_, err = boards.UpdateTitle(ctx, board.ID, "New")
	require.NoError(t, err)
	assert.False(t, mr.Exists(boardKey(board.ID)))

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestBoards_RedisDownFallsBack(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	board := &model.Board{ID: uuid.New(), Title: "Any"}
	base := &stubBoards{boards: map[uuid.UUID]*model.Board{board.ID: board}}
	boards := NewBoards(base, client, time.Minute)
	mr.Close()

	got, err := boards.GetByID(ctx, board.ID)

	require.NoError(t, err)
	assert.Equal(t, "Any", got.Title)
}

func TestBoards_CorruptEntryIsDropped(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	board := &model.Board{ID: uuid.New(), Title: "Any"}
	base := &stubBoards{boards: map[uuid.UUID]*model.Board{board.ID: board}}
	require.NoError(t, mr.Set(boardKey(board.ID), "{not json"))

	got, err := NewBoards(base, client, time.Minute).GetByID(ctx, board.ID)

	require.NoError(t, err)
	assert.Equal(t, "Any", got.Title)
	assert.Equal(t, 1, base.gets)
}

func TestRecent_TouchEvicts(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	userID := uuid.New()
	base := &stubRecent{}
	recent := NewRecent(base, client, time.Minute)

	_, err := recent.Touch(ctx, userID, uuid.New(), time.Now())
	require.NoError(t, err)

	records, err := recent.ListRecent(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	_, err = recent.ListRecent(ctx, userID, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, base.lists)
	assert.True(t, mr.Exists(recentKey(userID)))

	_, err = recent.Touch(ctx, userID, uuid.New(), time.Now())
	require.NoError(t, err)
	assert.False(t, mr.Exists(recentKey(userID)))

	records, err = recent.ListRecent(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, base.lists)
}

func TestBoards_UpdateTitleEvictsLinkedRecentLists(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	board := &model.Board{ID: uuid.New(), Title: "Old"}
	boards := NewBoards(&stubBoards{boards: map[uuid.UUID]*model.Board{board.ID: board}}, client, time.Minute)
	base := &stubRecent{}
	recent := NewRecent(base, client, time.Minute)
	owner, viewer := uuid.New(), uuid.New()

	_, err := base.Touch(ctx, owner, board.ID, time.Now())
	require.NoError(t, err)
	for _, userID := range []uuid.UUID{owner, viewer} {
		_, err := recent.ListRecent(ctx, userID, 5)
		require.NoError(t, err)
		require.True(t, mr.Exists(recentKey(userID)))
	}
	unrelated := uuid.New()
	require.NoError(t, mr.Set(recentKey(unrelated), "{}"))

	_, err = boards.UpdateTitle(ctx, board.ID, "New")
	require.NoError(t, err)

	assert.False(t, mr.Exists(recentKey(owner)))
	assert.False(t, mr.Exists(recentKey(viewer)))
	assert.False(t, mr.Exists(dependentsKey(board.ID)))
	assert.True(t, mr.Exists(recentKey(unrelated)))
}

func TestRecent_DifferentLimitBypassesEntry(t *testing.T) {
	_, client := setupRedis(t)
	ctx := context.Background()
	userID := uuid.New()
	base := &stubRecent{}
	recent := NewRecent(base, client, time.Minute)

	_, err := recent.ListRecent(ctx, userID, 5)
	require.NoError(t, err)
	_, err = recent.ListRecent(ctx, userID, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, base.lists)
}

func TestConnect(t *testing.T) {
	mr, _ := setupRedis(t)

	client, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	_, err = Connect(context.Background(), "not a url")
	assert.Error(t, err)
}
