package db

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key is missing or expired.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient is the key/value surface the session store needs.
type RedisClient interface {
	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// Del removes key and reports whether it existed.
	Del(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}
