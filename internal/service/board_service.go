package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"taskboard/internal/model"
	"taskboard/internal/validation"
)

const (
	DefaultPageSize = 20
	RecentLimit     = 5
)

// BoardPage is one page of an owner's boards, newest first.
type BoardPage struct {
	Items      []model.Board
	NextCursor *uuid.UUID
	TotalCount int64
}

type BoardService struct {
	boards BoardStore
	recent RecentStore
	now    func() time.Time
}

func NewBoardService(boards BoardStore, recent RecentStore) *BoardService {
	return &BoardService{boards: boards, recent: recent, now: time.Now}
}

// WithClock replaces the clock used to stamp recent views.
func (s *BoardService) WithClock(now func() time.Time) *BoardService {
	s.now = now
	return s
}

func (s *BoardService) GetBoard(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, translateFor(err, id)
	}
	return board, nil
}

// ListBoardsByOwner fetches one row past the page to learn whether another
// page exists; that row becomes the next cursor. Viewers other than the owner
// only see public boards.
func (s *BoardService) ListBoardsByOwner(ctx context.Context, ownerID, viewerID uuid.UUID, in validation.ListBoardsInput) (*BoardPage, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	limit := DefaultPageSize
	if in.Limit != nil {
		limit = *in.Limit
	}
	var cursor *uuid.UUID
	if in.Cursor != "" {
		id := uuid.MustParse(in.Cursor)
		cursor = &id
	}

	publicOnly := viewerID != ownerID
	boards, err := s.boards.ListByOwner(ctx, ownerID, publicOnly, cursor, limit+1)
	if err != nil {
		return nil, translate(err)
	}
	total, err := s.boards.CountByOwner(ctx, ownerID, publicOnly)
	if err != nil {
		return nil, err
	}

	page := &BoardPage{Items: boards, TotalCount: total}
	if len(boards) > limit {
		next := boards[limit].ID
		page.Items = boards[:limit]
		page.NextCursor = &next
	}
	return page, nil
}

func (s *BoardService) CreateBoard(ctx context.Context, ownerID uuid.UUID, in validation.CreateBoardInput) (*model.Board, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	board := &model.Board{
		Title:   in.Title,
		OwnerID: ownerID,
		Public:  in.Public,
		Background: datatypes.NewJSONType(model.Background{
			Type:  model.BackgroundType(in.Background.Type),
			Value: in.Background.Value,
		}),
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, translate(err)
	}
	return s.GetBoard(ctx, board.ID)
}

// UpdateBoard changes the title only.
func (s *BoardService) UpdateBoard(ctx context.Context, id uuid.UUID, in validation.UpdateBoardInput) (*model.Board, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	board, err := s.boards.UpdateTitle(ctx, id, in.Title)
	if err != nil {
		return nil, translateFor(err, id)
	}
	return board, nil
}

func (s *BoardService) RecordRecentView(ctx context.Context, userID, boardID uuid.UUID) (*model.RecentlyViewed, error) {
	record, err := s.recent.Touch(ctx, userID, boardID, s.now().UTC())
	if err != nil {
		return nil, translateFor(err, boardID)
	}
	return record, nil
}

// ListRecentlyViewed returns up to RecentLimit boards, most recent visit first.
func (s *BoardService) ListRecentlyViewed(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	records, err := s.recent.ListRecent(ctx, userID, RecentLimit)
	if err != nil {
		return nil, err
	}
	boards := make([]model.Board, 0, len(records))
	for _, record := range records {
		boards = append(boards, record.Board)
	}
	return boards, nil
}
