package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/logger"
	"food-picker/metrics"
	"food-picker/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore reads and writes admin accounts. dao/postgres.UserDAO implements it.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
}

// Sessions starts and ends admin sessions. auth.SessionManager implements it.
type Sessions interface {
	Start(ctx context.Context, username string) (string, error)
	End(ctx context.Context, token string) error
}

type AuthService struct {
	users     UserStore
	sessions  Sessions
	cost      int
	dummyHash []byte
	metrics   *metrics.Metrics
	log       *zap.Logger
}

// NewAuthService builds an AuthService. users may be nil when no database is
// configured, in which case login and user creation fail with ErrNotConfigured.
func NewAuthService(users UserStore, sessions Sessions, m *metrics.Metrics, log *zap.Logger) (*AuthService, error) {
	return newAuthService(users, sessions, bcrypt.DefaultCost, m, log)
}

func newAuthService(users UserStore, sessions Sessions, cost int, m *metrics.Metrics, log *zap.Logger) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("food-picker-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		cost:      cost,
		dummyHash: dummy,
		metrics:   m,
		log:       logger.Component(log, "auth_service"),
	}, nil
}

// Login checks credentials and returns a session token. Unknown users and
// wrong passwords both yield ErrInvalidCredentials after one bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.users == nil {
		return "", apperrors.ErrNotConfigured
	}
	username = strings.TrimSpace(username)

	user, err := s.users.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return "", s.rejectLogin(username)
	case err != nil:
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", s.rejectLogin(username)
	}

	token, err := s.sessions.Start(ctx, user.Username)
	if err != nil {
		return "", err
	}
	s.metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.log.Info("admin logged in", zap.String("username", user.Username))
	return token, nil
}

func (s *AuthService) rejectLogin(username string) error {
	s.metrics.LoginAttempts.WithLabelValues("failure").Inc()
	s.log.Warn("admin login rejected", zap.String("username", username))
	return apperrors.ErrInvalidCredentials
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}

// CreateUser hashes password and stores a new admin account.
func (s *AuthService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", "must not be empty")
	}
	if utf8.RuneCountInString(username) > config.COMMENT_NAME_MAX_LEN {
		return nil, apperrors.NewValidationError("username", "is too long")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "must not be empty")
	}
	if s.users == nil {
		return nil, apperrors.ErrNotConfigured
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.NewValidationError("password", "must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.Create(ctx, username, string(hash))
}

// EnsureAdmin creates the bootstrap admin account unless it already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if s.users == nil || username == "" {
		return nil
	}
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if _, err := s.CreateUser(ctx, username, password); err != nil {
		return fmt.Errorf("failed to bootstrap admin %q: %w", username, err)
	}
	s.log.Info("bootstrap admin created", zap.String("username", username))
	return nil
}
