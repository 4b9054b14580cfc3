package port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

// EventPublisherPort - outgoing domain events. Delivery is best-effort:
// callers log failures and carry on.
type EventPublisherPort interface {
	PublishFavoriteToggled(ctx context.Context, event domain.FavoriteToggledEvent) error
	PublishCommentCreated(ctx context.Context, event domain.CommentCreatedEvent) error
}
