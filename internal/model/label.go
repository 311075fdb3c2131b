package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Association states for a label on a card
const (
	LabelActive   = "active"
	LabelInactive = "inactive"
)

type Label struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"size:64;not null"`
	Color   string    `gorm:"size:7;not null"`

	Board Board `gorm:"foreignKey:BoardID"`
}

func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CardLabel links a label to a card. Removing a label only flips Status.
type CardLabel struct {
	CardID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LabelID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status  string    `gorm:"size:16;not null;index"`

	Card  Card  `gorm:"foreignKey:CardID"`
	Label Label `gorm:"foreignKey:LabelID"`
}
