package model

import (
	"time"

	"github.com/google/uuid"
)

type RecentlyViewed struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`

	User  User  `gorm:"foreignKey:UserID"`
	Board Board `gorm:"foreignKey:BoardID"`
}

func (RecentlyViewed) TableName() string {
	return "recently_viewed"
}
