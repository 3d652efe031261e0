// Package session issues and verifies signed session tokens.
//
// A session is an HS256 JWT carrying the user ID and a unique token ID (jti).
// The jti is written to a revocation store so logout can invalidate a token
// before it expires. The store is Redis-backed when Redis is configured and
// falls back to an in-process map otherwise.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks which session token IDs are live.
type Store interface {
	Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	Valid(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

const redisKeyPrefix = "session:"

// RedisStore keeps live session IDs in Redis, surviving process restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+jti, userID, ttl).Err()
}

func (s *RedisStore) Valid(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.Get(ctx, redisKeyPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Revoke(ctx context.Context, jti string) error {
	return s.client.Del(ctx, redisKeyPrefix+jti).Err()
}

// MemoryStore keeps live session IDs in process memory. Sessions do not
// survive a restart; acceptable for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	expiry map[string]time.Time
}

// NewMemoryStore returns an empty in-process Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{expiry: make(map[string]time.Time)}
}

func (s *MemoryStore) Save(_ context.Context, jti string, _ uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiry[jti] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryStore) Valid(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	exp, ok := s.expiry[jti]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		s.mu.Lock()
		delete(s.expiry, jti)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expiry, jti)
	return nil
}
