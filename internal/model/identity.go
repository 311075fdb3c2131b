package model

import (
	"time"

	"github.com/google/uuid"
)

const ProviderCredentials = "credentials"

// Account links a user to an identity provider
type Account struct {
	Provider          string    `gorm:"size:255;primaryKey"`
	ProviderAccountID string    `gorm:"size:255;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Type              string    `gorm:"size:255;not null"`
	RefreshToken      *string   `gorm:"type:text"`
	AccessToken       *string   `gorm:"type:text"`
	ExpiresAt         *int64
	TokenType         string  `gorm:"size:255"`
	Scope             string  `gorm:"size:255"`
	IDToken           *string `gorm:"type:text"`
	SessionState      string  `gorm:"size:255"`

	User User `gorm:"foreignKey:UserID"`
}

type Session struct {
	SessionToken string    `gorm:"size:255;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Expires      time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}

type VerificationToken struct {
	Identifier string    `gorm:"size:255;primaryKey"`
	Token      string    `gorm:"size:255;primaryKey"`
	Expires    time.Time `gorm:"not null"`
}
