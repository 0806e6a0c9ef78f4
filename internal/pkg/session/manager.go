package session

import (
	"Agrilink/internal/pkg/security"
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager owns the current session token. The persisted token is the only
// source of "is authenticated"; requests get it through Context.
type Manager struct {
	store TokenStore
	now   func() time.Time

	mu    sync.RWMutex
	token string
}

func NewManager(store TokenStore) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Restore 从持久化存储恢复 token
func (s *Manager) Restore(ctx context.Context) (string, error) {
	token, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return token, nil
}

// Persist 保存 token
func (s *Manager) Persist(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear drops the in-memory token even when the persisted copy cannot be removed.
func (s *Manager) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

func (s *Manager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Manager) IsAuthenticated() bool {
	token := s.Token()
	return token != "" && !security.IsExpired(token, s.now())
}

// Context attaches the current credential to parent.
func (s *Manager) Context(parent context.Context) context.Context {
	token := s.Token()
	if token == "" {
		return parent
	}
	return WithCredential(parent, Credential{Token: token})
}
