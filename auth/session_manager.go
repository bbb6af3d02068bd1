// Package auth issues and verifies admin session cookies. The cookie carries an
// HS256 token naming a server-side session; the session itself lives in the
// session store so logout takes effect immediately.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/dao/redis"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionStore keeps server-side session flags.
type SessionStore interface {
	Create(ctx context.Context, sessionID, username string) error
	Lookup(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type SessionManager struct {
	store        SessionStore
	secret       []byte
	ttl          time.Duration
	secureCookie bool
	now          func() time.Time
}

func NewSessionManager(store SessionStore, secret []byte, ttl time.Duration, secureCookie bool) *SessionManager {
	return &SessionManager{
		store:        store,
		secret:       secret,
		ttl:          ttl,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

// Start stores a new session for username and returns the signed token that
// references it.
func (m *SessionManager) Start(ctx context.Context, username string) (string, error) {
	sessionID := uuid.NewString()
	if err := m.store.Create(ctx, sessionID, username); err != nil {
		return "", err
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Resolve verifies token and returns the username of its live session. Any
// failure other than a store error is reported as apperrors.ErrUnauthorized.
func (m *SessionManager) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	username, err := m.store.Lookup(ctx, claims.ID)
	if errors.Is(err, redis.ErrSessionNotFound) {
		return "", apperrors.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if username != claims.Subject {
		return "", apperrors.ErrUnauthorized
	}
	return username, nil
}

// End deletes the session behind token. Invalid tokens are ignored.
func (m *SessionManager) End(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *SessionManager) parse(token string) (*jwt.RegisteredClaims, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || claims.ID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

// SetCookie writes the session cookie.
func (m *SessionManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.SESSION_COOKIE_NAME,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest returns the session cookie value, or "" when absent.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(config.SESSION_COOKIE_NAME)
	if err != nil {
		return ""
	}
	return c.Value
}

// GenerateSecret returns a random hex-encoded 32-byte signing secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
