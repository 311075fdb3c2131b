package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Card struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:256;not null"`
	Description *string   `gorm:"type:text"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	List       List        `gorm:"foreignKey:ListID"`
	CardLabels []CardLabel `gorm:"foreignKey:CardID"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
