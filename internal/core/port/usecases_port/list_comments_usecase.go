package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/google/uuid"
)

type ListCommentsUseCasePort interface {
	Execute(ctx context.Context, offerID uuid.UUID) ([]domain.CommentWithAuthor, error)
}
