package port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/google/uuid"
)

// TokenStorePort maps issued tokens to users.
// Lookup returns (nil, nil) when the token is unknown.
type TokenStorePort interface {
	Save(ctx context.Context, token *domain.Token) error
	Lookup(ctx context.Context, tokenID uuid.UUID) (*domain.Token, error)
	Delete(ctx context.Context, tokenID uuid.UUID) error
}
