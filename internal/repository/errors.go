package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common repository errors
var (
	ErrBoardNotFound     = errors.New("board not found")
	ErrBoardTitleTaken   = errors.New("board title already exists")
	ErrInvalidCursor     = errors.New("cursor does not match a board of this owner")
	ErrListNotFound      = errors.New("list not found")
	ErrCardNotFound      = errors.New("card not found")
	ErrLabelNotFound     = errors.New("label not found")
	ErrCardLabelNotFound = errors.New("label is not attached to card")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrSessionNotFound   = errors.New("session not found")
)

// isDuplicateKey reports unique constraint violations from any supported dialect.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
