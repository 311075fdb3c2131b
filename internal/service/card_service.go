package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

type CardService struct {
	lists ListStore
	cards CardStore
}

func NewCardService(lists ListStore, cards CardStore) *CardService {
	return &CardService{lists: lists, cards: cards}
}

// ListCardsByList returns the list's cards in ascending position.
func (s *CardService) ListCardsByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, translateFor(err, listID)
	}
	return s.cards.ListByList(ctx, listID)
}

// GetCard returns the card with its active labels.
func (s *CardService) GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	card, err := s.cards.GetWithActiveLabels(ctx, id)
	if err != nil {
		return nil, translateFor(err, id)
	}
	return card, nil
}

func (s *CardService) CreateCard(ctx context.Context, in validation.CreateCardInput) (*model.Card, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	listID := uuid.MustParse(in.ListID)

	card := &model.Card{Title: in.Title, Description: in.Description, ListID: listID}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, translateFor(err, listID)
	}
	return card, nil
}

func (s *CardService) UpdateCardPosition(ctx context.Context, id uuid.UUID, in validation.UpdateCardPositionInput) (*model.Card, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	card, err := s.cards.UpdatePosition(ctx, id, *in.Position)
	if err != nil {
		return nil, translateFor(err, id)
	}
	return card, nil
}

func (s *CardService) UpdateCard(ctx context.Context, id uuid.UUID, in validation.UpdateCardInput) (*model.Card, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	changes := repository.CardChanges{Title: in.Title, Description: in.Description}
	if in.ListID != nil {
		listID := uuid.MustParse(*in.ListID)
		changes.ListID = &listID
	}

	card, err := s.cards.Update(ctx, id, changes)
	if errors.Is(err, repository.ErrListNotFound) {
		return nil, notFound("list", changes.ListID)
	}
	if err != nil {
		return nil, translateFor(err, id)
	}
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return translateFor(s.cards.Delete(ctx, id), id)
}
