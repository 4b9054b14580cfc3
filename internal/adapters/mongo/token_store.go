package mongo_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TokenStore keeps issued tokens; the TTL index from EnsureIndexes purges
// expired ones, and Lookup ignores those not yet purged.
type TokenStore struct {
	coll *mongo.Collection
}

func NewTokenStore(db *mongo.Database) (*TokenStore, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &TokenStore{coll: db.Collection(tokensCollection)}, nil
}

func (r *TokenStore) Save(ctx context.Context, token *domain.Token) error {
	doc := tokenDocument{
		ID:        token.ID.String(),
		UserID:    token.UserID.String(),
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (r *TokenStore) Lookup(ctx context.Context, tokenID uuid.UUID) (*domain.Token, error) {
	filter := bson.M{
		"_id":       tokenID.String(),
		"expiresAt": bson.M{"$gt": time.Now().UTC()},
	}
	var doc tokenDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, fmt.Errorf("corrupt token owner %q: %w", doc.UserID, err)
	}
	return &domain.Token{
		ID:        tokenID,
		UserID:    userID,
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

func (r *TokenStore) Delete(ctx context.Context, tokenID uuid.UUID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": tokenID.String()}); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
