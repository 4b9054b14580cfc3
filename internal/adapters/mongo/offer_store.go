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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type OfferStore struct {
	coll *mongo.Collection
}

func NewOfferStore(db *mongo.Database) (*OfferStore, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil")
	}
	return &OfferStore{coll: db.Collection(offersCollection)}, nil
}

func (r *OfferStore) Create(ctx context.Context, offer *domain.Offer) error {
	if _, err := r.coll.InsertOne(ctx, newOfferDocument(offer)); err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *OfferStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	var doc offerDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return doc.toDomain()
}

func (r *OfferStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Offer, error) {
	if len(ids) == 0 {
		return []domain.Offer{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": idsToStrings(ids)}}, options.Find())
}

func (r *OfferStore) Find(ctx context.Context, limit int) ([]domain.Offer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *OfferStore) IncCommentCount(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.UpdateByID(ctx, id.String(), bson.M{"$inc": bson.M{"commentCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *OfferStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]domain.Offer, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []offerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode offers: %w", err)
	}

	return offersFromDocuments(ctx, docs), nil
}

// offersFromDocuments converts docs, skipping the ones that no longer map to
// a valid offer so one bad record does not hide the rest of a list.
func offersFromDocuments(ctx context.Context, docs []offerDocument) []domain.Offer {
	offers := make([]domain.Offer, 0, len(docs))
	for _, doc := range docs {
		offer, err := doc.toDomain()
		if err != nil {
			contextkeys.LoggerFromContext(ctx).Error("Skipping corrupt offer document", err, port.Fields{"offer_doc_id": doc.ID})
			continue
		}
		offers = append(offers, *offer)
	}
	return offers
}
