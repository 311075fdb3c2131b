package service

import (
	"context"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

type AccessLevel int

const (
	ReadAccess AccessLevel = iota
	WriteAccess
)

// Authorize returns ErrForbidden unless userID may use board at level.
// Public boards are readable by every signed-in user; only the owner writes.
func Authorize(board *model.Board, userID uuid.UUID, level AccessLevel) error {
	if board.OwnerID == userID {
		return nil
	}
	if level == ReadAccess && board.Public {
		return nil
	}
	return ErrForbidden
}

// AccessService resolves lists and cards to their board before authorizing.
type AccessService struct {
	boards BoardStore
	lists  ListStore
	cards  CardStore
}

func NewAccessService(boards BoardStore, lists ListStore, cards CardStore) *AccessService {
	return &AccessService{boards: boards, lists: lists, cards: cards}
}

func (s *AccessService) CheckBoard(ctx context.Context, userID, boardID uuid.UUID, level AccessLevel) error {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return translateFor(err, boardID)
	}
	return Authorize(board, userID, level)
}

func (s *AccessService) CheckList(ctx context.Context, userID, listID uuid.UUID, level AccessLevel) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return translateFor(err, listID)
	}
	return s.CheckBoard(ctx, userID, list.BoardID, level)
}

func (s *AccessService) CheckCard(ctx context.Context, userID, cardID uuid.UUID, level AccessLevel) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return translateFor(err, cardID)
	}
	return s.CheckList(ctx, userID, card.ListID, level)
}
