package usecase

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
)

type ListCommentsUseCase struct {
	commentStore port.CommentStorePort
	userStore    port.UserStorePort
	limit        int
}

func NewListCommentsUseCase(commentStore port.CommentStorePort, userStore port.UserStorePort, limit int) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentStore: commentStore,
		userStore:    userStore,
		limit:        limit,
	}
}

// Execute returns the newest comments of an offer joined with their authors.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, offerID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListComments",
		"offer_id": offerID.String(),
	})

	ucLogger.Info("Use case started", nil)

	comments, err := uc.commentStore.FindByOffer(ctx, offerID, uc.limit)
	if err != nil {
		ucLogger.Error("Comment store failed to list comments", err, nil)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	authors := make(map[uuid.UUID]*domain.User)
	result := make([]domain.CommentWithAuthor, 0, len(comments))
	for _, comment := range comments {
		author, seen := authors[comment.UserID]
		if !seen {
			author, err = uc.userStore.FindByID(ctx, comment.UserID)
			if err != nil {
				ucLogger.Error("User store failed to load comment author", err, port.Fields{"author_id": comment.UserID.String()})
				return nil, fmt.Errorf("failed to load comment author: %w", err)
			}
			authors[comment.UserID] = author
		}
		result = append(result, domain.CommentWithAuthor{Comment: comment, Author: author})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(result)})
	return result, nil
}
