package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

// Active returns the session when it exists and has not expired at now.
func (r *SessionRepository) Active(ctx context.Context, token string, now time.Time) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("session_token = ? AND expires > ?", token, now).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("session_token = ?", token).Delete(&model.Session{}).Error
}
