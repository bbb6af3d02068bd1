package db

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryRedisClient keeps keys in process memory. It backs the session store
// when no Redis address is configured, and serves as a test double.
type MemoryRedisClient struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	now  func() time.Time
}

// NewMemoryRedisClient initializes an empty MemoryRedisClient.
func NewMemoryRedisClient() *MemoryRedisClient {
	return &MemoryRedisClient{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	m.sweepLocked()
	return nil
}

// sweepLocked drops expired entries. Callers hold the write lock.
func (m *MemoryRedisClient) sweepLocked() {
	for k, e := range m.data {
		if m.expired(e) {
			delete(m.data, k)
		}
	}
}

func (m *MemoryRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, exists := m.data[key]
	m.mu.RUnlock()
	if !exists {
		return "", ErrKeyNotFound
	}
	if m.expired(entry) {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && m.expired(current) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", ErrKeyNotFound
	}
	return entry.value, nil
}

func (m *MemoryRedisClient) Del(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, exists := m.data[key]
	delete(m.data, key)
	return exists && !m.expired(entry), nil
}

func (m *MemoryRedisClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryRedisClient) Close() error {
	return nil
}

func (m *MemoryRedisClient) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}
