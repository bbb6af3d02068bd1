package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-picker/db"
)

const SESSION_KEY_FORMAT_V1 = "admin_session_v1:%s"

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("session not found")

// RedisSessionDAO stores admin session flags keyed by session ID.
type RedisSessionDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisSessionDAO initializes a RedisSessionDAO whose entries expire after ttl.
func NewRedisSessionDAO(client db.RedisClient, ttl time.Duration) *RedisSessionDAO {
	return &RedisSessionDAO{client: client, ttl: ttl}
}

// Create records that username holds session sessionID.
func (dao *RedisSessionDAO) Create(ctx context.Context, sessionID, username string) error {
	if err := dao.client.Set(ctx, sessionKey(sessionID), username, dao.ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Lookup returns the username of an active session.
func (dao *RedisSessionDAO) Lookup(ctx context.Context, sessionID string) (string, error) {
	username, err := dao.client.Get(ctx, sessionKey(sessionID))
	if errors.Is(err, db.ErrKeyNotFound) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return username, nil
}

// Delete ends a session. Deleting an unknown session is not an error.
func (dao *RedisSessionDAO) Delete(ctx context.Context, sessionID string) error {
	if _, err := dao.client.Del(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(SESSION_KEY_FORMAT_V1, sessionID)
}
