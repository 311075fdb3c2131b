package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

type RecentRepository struct {
	db *gorm.DB
}

func NewRecentRepository(db *gorm.DB) *RecentRepository {
	return &RecentRepository{db: db}
}

// Touch records a visit of the user to the board at the given time. The row
// is written with a single upsert so concurrent visits never duplicate it.
func (r *RecentRepository) Touch(ctx context.Context, userID, boardID uuid.UUID, at time.Time) (*model.RecentlyViewed, error) {
	record := model.RecentlyViewed{
		UserID:    userID,
		BoardID:   boardID,
		CreatedAt: at,
		UpdatedAt: at,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Board{}).Where("id = ?", boardID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBoardNotFound
		}

		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "board_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&record).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ? AND board_id = ?", userID, boardID).First(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecent returns the user's most recently viewed boards, newest visit first.
func (r *RecentRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.RecentlyViewed, error) {
	var records []model.RecentlyViewed
	err := r.db.WithContext(ctx).
		Preload("Board").
		Preload("Board.Owner").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("board_id").
		Limit(limit).
		Find(&records).Error
	return records, err
}
