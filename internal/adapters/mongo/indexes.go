package mongo_adapter

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	usersCollection    = "users"
	offersCollection   = "offers"
	commentsCollection = "comments"
	tokensCollection   = "tokens"
)

// EnsureIndexes creates the indexes the stores rely on: unique emails,
// newest-first listings and token expiry.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		offersCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		commentsCollection: {
			{Keys: bson.D{{Key: "offerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		tokensCollection: {
			// TTL index, mongo removes the record once expiresAt passes
			{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
