package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// Storage contracts the services depend on. The gorm repositories satisfy
// them directly; the Redis cache decorates BoardStore and RecentStore.

type BoardStore interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool, cursor *uuid.UUID, fetch int) ([]model.Board, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) (int64, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.Board, error)
}

type RecentStore interface {
	Touch(ctx context.Context, userID, boardID uuid.UUID, at time.Time) (*model.RecentlyViewed, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.RecentlyViewed, error)
}

type ListStore interface {
	Create(ctx context.Context, list *model.List) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.List, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error)
	Update(ctx context.Context, id uuid.UUID, changes repository.ListChanges) (*model.List, error)
}

type CardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetWithActiveLabels(ctx context.Context, id uuid.UUID) (*model.Card, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) (*model.Card, error)
	Update(ctx context.Context, id uuid.UUID, changes repository.CardChanges) (*model.Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LabelStore interface {
	Create(ctx context.Context, label *model.Label) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Label, error)
	Attach(ctx context.Context, cardID, labelID uuid.UUID) error
	Detach(ctx context.Context, cardID, labelID uuid.UUID) error
}

type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	Active(ctx context.Context, token string, now time.Time) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}

var (
	_ BoardStore   = (*repository.BoardRepository)(nil)
	_ RecentStore  = (*repository.RecentRepository)(nil)
	_ ListStore    = (*repository.ListRepository)(nil)
	_ CardStore    = (*repository.CardRepository)(nil)
	_ LabelStore   = (*repository.LabelRepository)(nil)
	_ SessionStore = (*repository.SessionRepository)(nil)
)
