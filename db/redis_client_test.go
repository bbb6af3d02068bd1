package db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisClient(t *testing.T) (*GoRedisClient, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := NewGoRedisClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { client.Close() })
	return client, srv
}

func clients(t *testing.T) []struct {
	name   string
	client RedisClient
} {
	goRedis, _ := newMiniRedisClient(t)
	return []struct {
		name   string
		client RedisClient
	}{
		{"MemoryRedisClient", NewMemoryRedisClient()},
		{"GoRedisClient", goRedis},
	}
}

func TestRedisClient_SetGetDel(t *testing.T) {
	ctx := context.Background()
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.client.Set(ctx, "test-key", "test-value", 0))

			got, err := test.client.Get(ctx, "test-key")
			require.NoError(t, err)
			assert.Equal(t, "test-value", got)

			deleted, err := test.client.Del(ctx, "test-key")
			require.NoError(t, err)
			assert.True(t, deleted)

			deleted, err = test.client.Del(ctx, "test-key")
			require.NoError(t, err)
			assert.False(t, deleted)

			_, err = test.client.Get(ctx, "test-key")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestRedisClient_Ping(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			assert.NoError(t, test.client.Ping(context.Background()))
		})
	}
}

func TestGoRedisClient_TTL(t *testing.T) {
	ctx := context.Background()
	client, srv := newMiniRedisClient(t)

	require.NoError(t, client.Set(ctx, "session", "admin", time.Minute))
	srv.FastForward(2 * time.Minute)

	_, err := client.Get(ctx, "session")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryRedisClient_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	client := NewMemoryRedisClient()
	client.now = func() time.Time { return now }

	require.NoError(t, client.Set(ctx, "session", "admin", time.Minute))
	got, err := client.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "admin", got)

	now = now.Add(time.Minute)
	_, err = client.Get(ctx, "session")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	deleted, err := client.Del(ctx, "session")
	require.NoError(t, err)
	assert.False(t, deleted, "expired keys do not count as deleted")
}

func TestMemoryRedisClient_DropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	client := NewMemoryRedisClient()
	client.now = func() time.Time { return now }

	require.NoError(t, client.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, client.Set(ctx, "b", "2", time.Minute))
	require.NoError(t, client.Set(ctx, "forever", "3", 0))

	now = now.Add(2 * time.Minute)
	_, err := client.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NotContains(t, client.data, "a")

	require.NoError(t, client.Set(ctx, "c", "4", time.Minute))
	assert.NotContains(t, client.data, "b")
	assert.Len(t, client.data, 2)
}

func TestDialRedis(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := DialRedis(context.Background(), srv.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	srv.Close()
	_, err = DialRedis(context.Background(), srv.Addr(), "", 0)
	assert.Error(t, err)
}
