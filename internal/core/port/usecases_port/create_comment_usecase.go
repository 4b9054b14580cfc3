package usecases_port

import (
	"context"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type CreateCommentUseCasePort interface {
	Execute(ctx context.Context, author *domain.User, offer *domain.Offer, text string, rating int) (*domain.CommentWithAuthor, error)
}
