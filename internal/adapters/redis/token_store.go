package redis_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "six-cities:token:"

type tokenRecord struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenStore keeps tokens as Redis keys that expire together with the token.
type TokenStore struct {
	client goredis.UniversalClient
}

func NewTokenStore(client goredis.UniversalClient) (*TokenStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &TokenStore{client: client}, nil
}

func tokenKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *TokenStore) Save(ctx context.Context, token *domain.Token) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token %s is already expired", token.ID)
	}

	payload, err := json.Marshal(tokenRecord{
		UserID:    token.UserID.String(),
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := s.client.Set(ctx, tokenKey(token.ID), payload, ttl).Err(); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to save token", err, port.Fields{
			"component": "RedisTokenStore",
			"token_id":  token.ID.String(),
		})
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Lookup(ctx context.Context, tokenID uuid.UUID) (*domain.Token, error) {
	payload, err := s.client.Get(ctx, tokenKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	var record tokenRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("corrupt token record: %w", err)
	}
	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		return nil, fmt.Errorf("corrupt token owner %q: %w", record.UserID, err)
	}

	return &domain.Token{
		ID:        tokenID,
		UserID:    userID,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (s *TokenStore) Delete(ctx context.Context, tokenID uuid.UUID) error {
	if err := s.client.Del(ctx, tokenKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
