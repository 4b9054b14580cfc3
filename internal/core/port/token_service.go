package port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

// TokenServicePort turns token records into bearer strings and back.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, token *domain.Token) (string, error)
	// ValidateToken checks signature and expiry and returns domain.ErrTokenInvalid otherwise.
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
