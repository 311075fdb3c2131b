package service

import (
	"context"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

type ListService struct {
	boards BoardStore
	lists  ListStore
}

func NewListService(boards BoardStore, lists ListStore) *ListService {
	return &ListService{boards: boards, lists: lists}
}

func (s *ListService) ListListsByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, translateFor(err, boardID)
	}
	return s.lists.ListByBoard(ctx, boardID)
}

func (s *ListService) GetList(ctx context.Context, id uuid.UUID) (*model.List, error) {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, translateFor(err, id)
	}
	return list, nil
}

func (s *ListService) CreateList(ctx context.Context, in validation.CreateListInput) (*model.List, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	boardID := uuid.MustParse(in.BoardID)

	list := &model.List{Title: in.Title, BoardID: boardID}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, translateFor(err, boardID)
	}
	return list, nil
}

func (s *ListService) UpdateList(ctx context.Context, id uuid.UUID, in validation.UpdateListInput) (*model.List, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	list, err := s.lists.Update(ctx, id, repository.ListChanges{Title: in.Title, Position: in.Position})
	if err != nil {
		return nil, translateFor(err, id)
	}
	return list, nil
}
