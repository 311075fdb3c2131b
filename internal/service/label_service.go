package service

import (
	"context"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/validation"
)

type LabelService struct {
	boards BoardStore
	lists  ListStore
	cards  CardStore
	labels LabelStore
}

func NewLabelService(boards BoardStore, lists ListStore, cards CardStore, labels LabelStore) *LabelService {
	return &LabelService{boards: boards, lists: lists, cards: cards, labels: labels}
}

func (s *LabelService) ListLabelsByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, translateFor(err, boardID)
	}
	return s.labels.ListByBoard(ctx, boardID)
}

func (s *LabelService) CreateLabel(ctx context.Context, in validation.CreateLabelInput) (*model.Label, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	boardID := uuid.MustParse(in.BoardID)

	label := &model.Label{BoardID: boardID, Name: in.Name, Color: in.Color}
	if err := s.labels.Create(ctx, label); err != nil {
		return nil, translateFor(err, boardID)
	}
	return label, nil
}

// AttachLabel activates the label on the card. Both must belong to the same board.
func (s *LabelService) AttachLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return translateFor(err, cardID)
	}
	label, err := s.labels.GetByID(ctx, labelID)
	if err != nil {
		return translateFor(err, labelID)
	}
	list, err := s.lists.GetByID(ctx, card.ListID)
	if err != nil {
		return translateFor(err, card.ListID)
	}
	if list.BoardID != label.BoardID {
		return validation.Field("label_id", "same_board")
	}
	return s.labels.Attach(ctx, cardID, labelID)
}

// DetachLabel marks the association inactive.
func (s *LabelService) DetachLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return translateFor(s.labels.Detach(ctx, cardID, labelID), labelID)
}
