package service

import (
	"errors"
	"fmt"

	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// NotFoundError reports a missing resource. ID is empty when unknown.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports a write rejected by a uniqueness rule.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func notFound(resource string, id fmt.Stringer) error {
	return &NotFoundError{Resource: resource, ID: id.String()}
}

// translate maps repository sentinels onto service error kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrBoardNotFound):
		return &NotFoundError{Resource: "board"}
	case errors.Is(err, repository.ErrListNotFound):
		return &NotFoundError{Resource: "list"}
	case errors.Is(err, repository.ErrCardNotFound):
		return &NotFoundError{Resource: "card"}
	case errors.Is(err, repository.ErrLabelNotFound):
		return &NotFoundError{Resource: "label"}
	case errors.Is(err, repository.ErrCardLabelNotFound):
		return &NotFoundError{Resource: "card label"}
	case errors.Is(err, repository.ErrUserNotFound):
		return &NotFoundError{Resource: "user"}
	case errors.Is(err, repository.ErrBoardTitleTaken):
		return &ConflictError{Message: "Board already exists"}
	case errors.Is(err, repository.ErrEmailTaken):
		return &ConflictError{Message: "Email already registered"}
	case errors.Is(err, repository.ErrInvalidCursor):
		return validation.Field("cursor", "unknown")
	}
	return err
}

// translateFor is translate with the ID of the resource the caller looked up.
func translateFor(err error, id fmt.Stringer) error {
	err = translate(err)
	var nf *NotFoundError
	if errors.As(err, &nf) && nf.ID == "" {
		nf.ID = id.String()
	}
	return err
}
