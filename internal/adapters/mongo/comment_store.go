package mongo_adapter

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentStore struct {
	coll *mongo.Collection
}

func NewCommentStore(db *mongo.Database) (*CommentStore, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &CommentStore{coll: db.Collection(commentsCollection)}, nil
}

func (r *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	doc := commentDocument{
		ID:        comment.ID.String(),
		Text:      comment.Text,
		Rating:    comment.Rating,
		OfferID:   comment.OfferID.String(),
		UserID:    comment.UserID.String(),
		CreatedAt: comment.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentStore) FindByOffer(ctx context.Context, offerID uuid.UUID, limit int) ([]domain.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"offerId": offerID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(docs))
	for _, doc := range docs {
		comment, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, nil
}
