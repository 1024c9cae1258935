package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spec-kit/facility-console/internal/domain"
)

// memoryStore is a map-backed Store with the same key scheme as the Redis
// implementation. Used by tests and as a degraded-mode fallback when Redis
// is unreachable.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore builds an in-memory credential store.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string]string)}
}

func (s *memoryStore) SaveCredential(_ context.Context, cred domain.Credential) error {
	profile, err := json.Marshal(cred.User)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenKey(cred.UserType)] = cred.Token
	s.data[userKey(cred.UserType)] = string(profile)
	return nil
}

func (s *memoryStore) Token(_ context.Context, userType domain.UserType) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[tokenKey(userType)], nil
}

func (s *memoryStore) Profile(_ context.Context, userType domain.UserType) (*domain.Profile, error) {
	s.mu.RLock()
	raw, ok := s.data[userKey(userType)]
	s.mu.RUnlock()
	if !ok || raw == "" {
		return nil, nil
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

func (s *memoryStore) Clear(_ context.Context, userType domain.UserType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, tokenKey(userType))
	delete(s.data, userKey(userType))
	return nil
}

func (s *memoryStore) IsAuthenticated(ctx context.Context, userType domain.UserType) (bool, error) {
	token, err := s.Token(ctx, userType)
	if err != nil || token == "" {
		return false, err
	}
	profile, err := s.Profile(ctx, userType)
	if err != nil {
		return false, err
	}
	return profile != nil, nil
}

func (s *memoryStore) Resolve(ctx context.Context) (domain.UserType, error) {
	return resolveWith(ctx, s)
}

func (s *memoryStore) ForceClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.data {
		if authRelated(key) {
			delete(s.data, key)
		}
	}
	return nil
}
