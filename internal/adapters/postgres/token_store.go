package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenStore keeps issued tokens in "auth_tokens". Expired rows are
// treated as absent.
type TokenStore struct {
	pool *pgxpool.Pool
}

func NewTokenStore(pool *pgxpool.Pool) (*TokenStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &TokenStore{pool: pool}, nil
}

func (r *TokenStore) Save(ctx context.Context, token *domain.Token) error {
	query := `INSERT INTO auth_tokens (id, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, token.ID, token.UserID, token.CreatedAt, token.ExpiresAt); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (r *TokenStore) Lookup(ctx context.Context, tokenID uuid.UUID) (*domain.Token, error) {
	query := `SELECT id, user_id, created_at, expires_at FROM auth_tokens WHERE id = $1 AND expires_at > now()`
	var token domain.Token
	err := r.pool.QueryRow(ctx, query, tokenID).Scan(&token.ID, &token.UserID, &token.CreatedAt, &token.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	return &token, nil
}

func (r *TokenStore) Delete(ctx context.Context, tokenID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM auth_tokens WHERE id = $1`, tokenID); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
