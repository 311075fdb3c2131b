package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BackgroundType string

const (
	BackgroundColor    BackgroundType = "color"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// Background is stored as JSON with an explicit type tag.
type Background struct {
	Type  BackgroundType `json:"type"`
	Value string         `json:"value"`
}

// Resolved returns b with its type filled in. Rows written before the type
// tag existed are classified from the shape of the value.
func (b Background) Resolved() Background {
	if b.Type != "" {
		return b
	}
	switch {
	case strings.Contains(b.Value, "https"):
		b.Type = BackgroundImage
	case strings.Contains(b.Value, "gradient"):
		b.Type = BackgroundGradient
	default:
		b.Type = BackgroundColor
	}
	return b
}

type Board struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"size:54;not null;uniqueIndex"`
	Background datatypes.JSONType[Background]
	Public     bool      `gorm:"not null"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_boards_owner_created,priority:1"`
	CreatedAt  time.Time `gorm:"index:idx_boards_owner_created,priority:2"`
	UpdatedAt  time.Time

	Owner User   `gorm:"foreignKey:OwnerID"`
	Lists []List `gorm:"foreignKey:BoardID"`
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
