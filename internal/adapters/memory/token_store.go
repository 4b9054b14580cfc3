package memory

import (
	"context"
	"sync"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
)

type TokenStore struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]domain.Token
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[uuid.UUID]domain.Token)}
}

func (s *TokenStore) Save(_ context.Context, token *domain.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token.ID] = *token
	return nil
}

func (s *TokenStore) Lookup(_ context.Context, tokenID uuid.UUID) (*domain.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return nil, nil
	}
	return &token, nil
}

func (s *TokenStore) Delete(_ context.Context, tokenID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, tokenID)
	return nil
}
