package session

import (
	"Agrilink/internal/pkg/redis"
	"context"
	"sync"
)

// TokenStore persists the one session token across restarts.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// RedisTokenStore keeps the token under a single redis key
type RedisTokenStore struct {
	key string
}

func NewRedisTokenStore(key string) *RedisTokenStore {
	return &RedisTokenStore{key: key}
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	return redis.GetValue(ctx, s.key)
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	return redis.SetValue(ctx, s.key, token)
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return redis.DeleteKey(ctx, s.key)
}

// MemoryTokenStore does not survive a restart; used when redis is not configured and in tests.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
