// Package cache serves board reads through Redis in front of the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/model"
)

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	log.WithField("addr", opts.Addr).Info("✅ Connected to redis")
	return client, nil
}

type client struct {
	redis *redis.Client
	ttl   time.Duration
}

func (c client) load(ctx context.Context, key string, dst any) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).WithField("key", key).Debug("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		_ = c.redis.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c client) store(ctx context.Context, key string, value any) {
	if c.redis == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.WithError(err).WithField("key", key).Debug("cache write failed")
	}
}

func (c client) evict(ctx context.Context, keys ...string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		log.WithError(err).WithField("keys", keys).Debug("cache evict failed")
	}
}

// link records that key embeds a copy of the board, so a change to the
// board can evict it.
func (c client) link(ctx context.Context, boardIDs []uuid.UUID, key string) {
	if c.redis == nil || c.ttl <= 0 || len(boardIDs) == 0 {
		return
	}
	_, err := c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range boardIDs {
			pipe.SAdd(ctx, dependentsKey(id), key)
			pipe.Expire(ctx, dependentsKey(id), c.ttl)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("key", key).Debug("cache link failed")
	}
}

// dependents returns the keys linked to a board.
func (c client) dependents(ctx context.Context, boardID uuid.UUID) []string {
	if c.redis == nil {
		return nil
	}
	keys, err := c.redis.SMembers(ctx, dependentsKey(boardID)).Result()
	if err != nil {
		log.WithError(err).WithField("board_id", boardID).Debug("cache lookup failed")
		return nil
	}
	return keys
}

type boardBackend interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool, cursor *uuid.UUID, fetch int) ([]model.Board, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) (int64, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.Board, error)
}

// Boards caches single-board lookups. Title updates evict the entry and every
// cached recent list holding the board.
type Boards struct {
	boardBackend
	cache client
}

func NewBoards(base boardBackend, rdb *redis.Client, ttl time.Duration) *Boards {
	if base == nil {
		panic("cache.NewBoards: base store is nil")
	}
	return &Boards{boardBackend: base, cache: client{redis: rdb, ttl: ttl}}
}

func (b *Boards) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if b.cache.load(ctx, boardKey(id), &board) {
		return &board, nil
	}

	found, err := b.boardBackend.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.cache.store(ctx, boardKey(id), found)
	return found, nil
}

func (b *Boards) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.Board, error) {
	board, err := b.boardBackend.UpdateTitle(ctx, id, title)
	if err != nil {
		return nil, err
	}
	keys := append(b.cache.dependents(ctx, id), boardKey(id), dependentsKey(id))
	b.cache.evict(ctx, keys...)
	return board, nil
}

type recentBackend interface {
	Touch(ctx context.Context, userID, boardID uuid.UUID, at time.Time) (*model.RecentlyViewed, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.RecentlyViewed, error)
}

// Recent caches a user's recent-board list. Recording a view evicts it.
type Recent struct {
	base  recentBackend
	cache client
}

type recentEntry struct {
	Limit   int                    `json:"limit"`
	Records []model.RecentlyViewed `json:"records"`
}

func NewRecent(base recentBackend, rdb *redis.Client, ttl time.Duration) *Recent {
	if base == nil {
		panic("cache.NewRecent: base store is nil")
	}
	return &Recent{base: base, cache: client{redis: rdb, ttl: ttl}}
}

func (r *Recent) Touch(ctx context.Context, userID, boardID uuid.UUID, at time.Time) (*model.RecentlyViewed, error) {
	record, err := r.base.Touch(ctx, userID, boardID, at)
	if err != nil {
		return nil, err
	}
	r.cache.evict(ctx, recentKey(userID))
	return record, nil
}

func (r *Recent) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.RecentlyViewed, error) {
	var entry recentEntry
	if r.cache.load(ctx, recentKey(userID), &entry) && entry.Limit == limit {
		return entry.Records, nil
	}

	records, err := r.base.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	key := recentKey(userID)
	r.cache.store(ctx, key, recentEntry{Limit: limit, Records: records})
	boardIDs := make([]uuid.UUID, len(records))
	for i := range records {
		boardIDs[i] = records[i].BoardID
	}
	r.cache.link(ctx, boardIDs, key)
	return records, nil
}

func boardKey(id uuid.UUID) string {
	return "board:" + id.String()
}

func recentKey(userID uuid.UUID) string {
	return "recent:" + userID.String()
}

func dependentsKey(boardID uuid.UUID) string {
	return "board:" + boardID.String() + ":dependents"
}
