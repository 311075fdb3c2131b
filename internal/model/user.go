package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"size:255"`
	Email          string    `gorm:"size:255;uniqueIndex;not null"`
	EmailVerified  *time.Time
	Image          string    `gorm:"size:255"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
