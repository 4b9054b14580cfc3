package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
)

type CreateCommentUseCase struct {
	commentStore port.CommentStorePort
	offerStore   port.OfferStorePort
	publisher    port.EventPublisherPort
}

func NewCreateCommentUseCase(commentStore port.CommentStorePort, offerStore port.OfferStorePort, publisher port.EventPublisherPort) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		commentStore: commentStore,
		offerStore:   offerStore,
		publisher:    publisher,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, author *domain.User, offer *domain.Offer, text string, rating int) (*domain.CommentWithAuthor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateComment",
		"user_id":  author.ID.String(),
		"offer_id": offer.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	comment, err := domain.NewComment(text, rating, offer.ID, author.ID)
	if err != nil {
		ucLogger.Warn("Comment rejected", port.Fields{"reason": err.Error()})
		return nil, err
	}

	if err := uc.commentStore.Create(ctx, comment); err != nil {
		ucLogger.Error("Comment store failed to create comment", err, nil)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// the comment is already saved, a stale counter is not worth failing the request
	if err := uc.offerStore.IncCommentCount(ctx, offer.ID); err != nil {
		ucLogger.Error("Failed to increment offer comment count", err, nil)
	}

	event := domain.CommentCreatedEvent{
		CommentID:  comment.ID,
		OfferID:    offer.ID,
		UserID:     author.ID,
		Rating:     comment.Rating,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishCommentCreated(ctx, event); err != nil {
		ucLogger.Error("Failed to publish comment event, continuing", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"comment_id": comment.ID.String()})
	return &domain.CommentWithAuthor{Comment: *comment, Author: author}, nil
}
