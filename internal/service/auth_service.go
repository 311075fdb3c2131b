package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

type TokenIssuer interface {
	GenerateToken(userID, sessionID string) (string, error)
	TTL() time.Duration
}

// AuthResult is returned by a successful sign-up or sign-in.
type AuthResult struct {
	Token     string
	SessionID string
	User      *model.User
}

type AuthService struct {
	users    repository.UserRepositoryInterface
	sessions SessionStore
	tokens   TokenIssuer
	now      func() time.Time
}

func NewAuthService(users repository.UserRepositoryInterface, sessions SessionStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens, now: time.Now}
}

// Register creates a credentials user and signs them in.
func (s *AuthService) Register(ctx context.Context, in validation.RegisterInput) (*AuthResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.ToLower(in.Email)
	user := &model.User{
		Name:           in.Name,
		Email:          email,
		HashedPassword: string(hashedPassword),
	}
	account := &model.Account{
		Provider:          model.ProviderCredentials,
		ProviderAccountID: email,
		Type:              model.ProviderCredentials,
	}
	if err := s.users.Register(ctx, user, account); err != nil {
		return nil, translate(err)
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (*AuthResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.HashedPassword == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// SessionActive reports whether the session is still live.
func (s *AuthService) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.sessions.Active(ctx, sessionID, s.now().UTC())
	if errors.Is(err, repository.ErrSessionNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user", id)
	}
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *model.User) (*AuthResult, error) {
	session := &model.Session{
		SessionToken: uuid.NewString(),
		UserID:       user.ID,
		Expires:      s.now().UTC().Add(s.tokens.TTL()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID.String(), session.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Token: token, SessionID: session.SessionToken, User: user}, nil
}
