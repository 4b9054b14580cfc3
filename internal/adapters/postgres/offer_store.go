package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerColumns = `id, title, description, city, preview_image, images, is_premium, rating, type,
       rooms, guests, price, goods, host_id, latitude, longitude, geohash, comment_count, created_at`

type OfferStore struct {
	pool *pgxpool.Pool
}

func NewOfferStore(pool *pgxpool.Pool) (*OfferStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &OfferStore{pool: pool}, nil
}

func (r *OfferStore) Create(ctx context.Context, offer *domain.Offer) error {
	query := `INSERT INTO offers (` + offerColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.pool.Exec(ctx, query,
		offer.ID, offer.Title, offer.Description, offer.City, offer.PreviewImage, offer.Images,
		offer.IsPremium, offer.Rating, string(offer.Type), offer.Rooms, offer.Guests, offer.Price,
		offer.Goods, offer.HostID, offer.Location.Latitude, offer.Location.Longitude, offer.Geohash,
		offer.CommentCount, offer.CreatedAt)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to insert offer", err, port.Fields{
			"component": "PostgresOfferStore",
			"offer_id":  offer.ID.String(),
		})
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *OfferStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	offer, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return offer, nil
}

func (r *OfferStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Offer, error) {
	if len(ids) == 0 {
		return []domain.Offer{}, nil
	}
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	return r.query(ctx, "FindByIDs", `SELECT `+offerColumns+` FROM offers WHERE id = ANY($1::uuid[])`, raw)
}

func (r *OfferStore) Find(ctx context.Context, limit int) ([]domain.Offer, error) {
	return r.query(ctx, "Find", `SELECT `+offerColumns+` FROM offers ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *OfferStore) IncCommentCount(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE offers SET comment_count = comment_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *OfferStore) query(ctx context.Context, method, query string, args ...interface{}) ([]domain.Offer, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresOfferStore",
		"method":    method,
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query offers", err, nil)
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			repoLogger.Error("Failed to scan offer row", err, nil)
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during offers iteration", err, nil)
		return nil, fmt.Errorf("error during offers iteration: %w", err)
	}
	return offers, nil
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var offer domain.Offer
	var offerType string
	err := row.Scan(
		&offer.ID, &offer.Title, &offer.Description, &offer.City, &offer.PreviewImage, &offer.Images,
		&offer.IsPremium, &offer.Rating, &offerType, &offer.Rooms, &offer.Guests, &offer.Price,
		&offer.Goods, &offer.HostID, &offer.Location.Latitude, &offer.Location.Longitude, &offer.Geohash,
		&offer.CommentCount, &offer.CreatedAt)
	if err != nil {
		return nil, err
	}
	offer.Type = domain.OfferType(offerType)
	return &offer, nil
}
