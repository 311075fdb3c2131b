package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create inserts the board unless another board already uses its title.
// The unique index on boards.title catches inserts that race past the check.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Board{}).Where("title = ?", board.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrBoardTitleTaken
		}
		return tx.Omit(clause.Associations).Create(board).Error
	})
	if isDuplicateKey(err) {
		return ErrBoardTitleTaken
	}
	return err
}

// GetByID returns the board with its owner loaded.
func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

// ListByOwner returns up to fetch boards of the owner, newest first. A non-nil
// cursor names the first board to return; it must belong to the same owner
// and pass the same visibility filter.
func (r *BoardRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool, cursor *uuid.UUID, fetch int) ([]model.Board, error) {
	query := ownedBy(r.db.WithContext(ctx).Preload("Owner"), ownerID, publicOnly)

	if cursor != nil {
		var anchor model.Board
		err := ownedBy(r.db.WithContext(ctx).Select("id", "created_at"), ownerID, publicOnly).
			Where("id = ?", *cursor).
			First(&anchor).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCursor
		}
		if err != nil {
			return nil, err
		}
		query = query.Where("(created_at < ? OR (created_at = ? AND id <= ?))",
			anchor.CreatedAt, anchor.CreatedAt, anchor.ID)
	}

	var boards []model.Board
	err := query.Order("created_at DESC").Order("id DESC").Limit(fetch).Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) (int64, error) {
	var count int64
	err := ownedBy(r.db.WithContext(ctx).Model(&model.Board{}), ownerID, publicOnly).Count(&count).Error
	return count, err
}

func ownedBy(tx *gorm.DB, ownerID uuid.UUID, publicOnly bool) *gorm.DB {
	tx = tx.Where("owner_id = ?", ownerID)
	if publicOnly {
		tx = tx.Where("public = ?", true)
	}
	return tx
}

// UpdateTitle changes only the title and returns the reloaded board.
func (r *BoardRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&board).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Board{}).Where("title = ? AND id <> ?", title, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrBoardTitleTaken
		}

		if err := tx.Model(&board).Update("title", title).Error; err != nil {
			return err
		}
		return tx.Preload("Owner").Where("id = ?", id).First(&board).Error
	})
	if isDuplicateKey(err) {
		return nil, ErrBoardTitleTaken
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// forUpdate locks the selected rows on dialects with row-level locking.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
