package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// Create adds a new label to an existing board
func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Board{}).Where("id = ?", label.BoardID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBoardNotFound
		}
		return tx.Omit(clause.Associations).Create(label).Error
	})
}

// GetByID retrieves a label by its ID
func (r *LabelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

// ListByBoard retrieves all labels for a specific board
func (r *LabelRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Label, error) {
	var labels []model.Label
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("name").Find(&labels).Error
	return labels, err
}

// Attach marks the label active on the card, reviving a detached association
func (r *LabelRepository) Attach(ctx context.Context, cardID, labelID uuid.UUID) error {
	link := model.CardLabel{CardID: cardID, LabelID: labelID, Status: model.LabelActive}
	return r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "card_id"}, {Name: "label_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&link).Error
}

// Detach marks the association inactive; the row itself is kept
func (r *LabelRepository) Detach(ctx context.Context, cardID, labelID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.CardLabel{}).
		Where("card_id = ? AND label_id = ?", cardID, labelID).
		Update("status", model.LabelInactive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardLabelNotFound
	}
	return nil
}
