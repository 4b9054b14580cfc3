package port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/google/uuid"
)

// UserStorePort - user records and their favorite lists.
// Find methods return (nil, nil) when the user does not exist.
type UserStorePort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// AddFavorite is a no-op when offerID is already in the list.
	AddFavorite(ctx context.Context, userID, offerID uuid.UUID) error
	// RemoveFavorite is a no-op when offerID is not in the list.
	RemoveFavorite(ctx context.Context, userID, offerID uuid.UUID) error
	UpdateAvatar(ctx context.Context, userID uuid.UUID, link string) error
}
