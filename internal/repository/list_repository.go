package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

// ListChanges holds the optional fields of a list update; nil means unchanged.
type ListChanges struct {
	Title    *string
	Position *int
}

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

// Create appends the list after the board's current last list.
func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board model.Board
		if err := forUpdate(tx).Select("id").Where("id = ?", list.BoardID).First(&board).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		last, err := maxPosition(tx, &model.List{}, "board_id = ?", list.BoardID)
		if err != nil {
			return err
		}
		list.Position = last + 1
		return tx.Omit(clause.Associations).Create(list).Error
	})
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position").Order("created_at").Order("id").
		Find(&lists).Error
	return lists, err
}

// Update overwrites the given fields. Sibling positions are never touched.
func (r *ListRepository) Update(ctx context.Context, id uuid.UUID, changes ListChanges) (*model.List, error) {
	var list model.List
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&list).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListNotFound
			}
			return err
		}

		updates := map[string]any{}
		if changes.Title != nil {
			updates["title"] = *changes.Title
		}
		if changes.Position != nil {
			updates["position"] = *changes.Position
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&list).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&list).Error
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// maxPosition returns the highest position in the scope, or 0 when it is empty.
func maxPosition(tx *gorm.DB, table any, query string, args ...any) (int, error) {
	var result struct {
		Max int
	}
	err := tx.Model(table).
		Select("COALESCE(MAX(position), 0) AS max").
		Where(query, args...).
		Scan(&result).Error
	return result.Max, err
}
