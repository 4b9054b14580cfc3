package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/Akergez/2572371-six-cities-4/internal/contextkeys"
	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentStore struct {
	pool *pgxpool.Pool
}

func NewCommentStore(pool *pgxpool.Pool) (*CommentStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CommentStore{pool: pool}, nil
}

func (r *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	query := `INSERT INTO comments (id, offer_id, user_id, text, rating, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.pool.Exec(ctx, query,
		comment.ID, comment.OfferID, comment.UserID, comment.Text, comment.Rating, comment.CreatedAt); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentStore) FindByOffer(ctx context.Context, offerID uuid.UUID, limit int) ([]domain.Comment, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresCommentStore",
		"method":    "FindByOffer",
		"offer_id":  offerID.String(),
	})

	query := `SELECT id, offer_id, user_id, text, rating, created_at
              FROM comments WHERE offer_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offerID, limit)
	if err != nil {
		repoLogger.Error("Failed to query comments", err, nil)
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.OfferID, &c.UserID, &c.Text, &c.Rating, &c.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan comment row", err, nil)
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during comments iteration: %w", err)
	}
	return comments, nil
}
