package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

// CardChanges holds the optional fields of a card update; nil means unchanged.
type CardChanges struct {
	Title       *string
	Description *string
	ListID      *uuid.UUID
}

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create appends the card to its list: position is one past the list's
// highest position, so the first card of an empty list gets 1.
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list model.List
		if err := forUpdate(tx).Select("id").Where("id = ?", card.ListID).First(&list).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListNotFound
			}
			return err
		}

		last, err := maxPosition(tx, &model.Card{}, "list_id = ?", card.ListID)
		if err != nil {
			return err
		}
		card.Position = last + 1
		return tx.Omit(clause.Associations).Create(card).Error
	})
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// GetWithActiveLabels retrieves a card together with its active label associations
func (r *CardRepository) GetWithActiveLabels(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).
		Preload("CardLabels", "status = ?", model.LabelActive).
		Preload("CardLabels.Label").
		Where("id = ?", id).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// ListByList retrieves all cards in a list ordered by position
func (r *CardRepository) ListByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("position").Order("created_at").Order("id").
		Find(&cards).Error
	return cards, err
}

// UpdatePosition overwrites the card's position. Siblings keep theirs, even
// when the new value collides with one of them.
func (r *CardRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}
		if err := tx.Model(&card).Update("position", position).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Update applies a partial update. Moving a card to another list keeps its
// position value as is.
func (r *CardRepository) Update(ctx context.Context, id uuid.UUID, changes CardChanges) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		updates := map[string]any{}
		if changes.ListID != nil {
			var count int64
			if err := tx.Model(&model.List{}).Where("id = ?", *changes.ListID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrListNotFound
			}
			updates["list_id"] = *changes.ListID
		}
		if changes.Title != nil {
			updates["title"] = *changes.Title
		}
		if changes.Description != nil {
			updates["description"] = *changes.Description
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&card).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete removes the card and its label associations. Remaining cards keep
// their positions; gaps are expected.
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&model.CardLabel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Card{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCardNotFound
		}
		return nil
	})
}
