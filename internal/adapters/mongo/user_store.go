package mongo_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserStore keeps each user as one document with the favorites embedded.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) (*UserStore, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &UserStore{coll: db.Collection(usersCollection)}, nil
}

func (r *UserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := r.coll.InsertOne(ctx, newUserDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailInUse
		}
		contextkeys.LoggerFromContext(ctx).Error("Failed to insert user", err, port.Fields{
			"component": "MongoUserStore",
			"user_id":   user.ID.String(),
		})
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserStore) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.toDomain()
}

// AddFavorite relies on $addToSet, so repeating it leaves a single entry.
func (r *UserStore) AddFavorite(ctx context.Context, userID, offerID uuid.UUID) error {
	return r.updateFavorites(ctx, userID, bson.M{"$addToSet": bson.M{"favorites": offerID.String()}})
}

func (r *UserStore) RemoveFavorite(ctx context.Context, userID, offerID uuid.UUID) error {
	return r.updateFavorites(ctx, userID, bson.M{"$pull": bson.M{"favorites": offerID.String()}})
}

func (r *UserStore) updateFavorites(ctx context.Context, userID uuid.UUID, update bson.M) error {
	result, err := r.coll.UpdateByID(ctx, userID.String(), update)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to update favorites", err, port.Fields{
			"component": "MongoUserStore",
			"user_id":   userID.String(),
		})
		return fmt.Errorf("failed to update favorites: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserStore) UpdateAvatar(ctx context.Context, userID uuid.UUID, link string) error {
	result, err := r.coll.UpdateByID(ctx, userID.String(), bson.M{"$set": bson.M{"avatarUrl": link}})
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
