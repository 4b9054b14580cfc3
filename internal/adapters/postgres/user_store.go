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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// UserStore keeps users in "users" and their favorites in "user_favorites".
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) (*UserStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserStore{pool: pool}, nil
}

func (r *UserStore) Create(ctx context.Context, user *domain.User) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresUserStore",
		"method":    "Create",
		"user_id":   user.ID.String(),
	})

	query := `INSERT INTO users (id, email, name, type, avatar_url, password_hash, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.Name, string(user.Type), user.AvatarURL, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			repoLogger.Warn("Email already registered", nil)
			return domain.ErrEmailInUse
		}
		repoLogger.Error("Failed to insert user", err, nil)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "FindByID", `WHERE id = $1`, id)
}

func (r *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "FindByEmail", `WHERE email = $1`, email)
}

func (r *UserStore) findOne(ctx context.Context, method, where string, arg interface{}) (*domain.User, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresUserStore",
		"method":    method,
	})

	query := `SELECT id, email, name, type, avatar_url, password_hash, created_at FROM users ` + where
	var user domain.User
	var userType string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Name, &userType, &user.AvatarURL, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to query user", err, nil)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user.Type = domain.UserType(userType)

	favorites, err := r.findFavoriteIDs(ctx, user.ID)
	if err != nil {
		repoLogger.Error("Failed to query user favorites", err, nil)
		return nil, err
	}
	user.Favorites = favorites
	return &user, nil
}

// findFavoriteIDs returns favorite offer ids in the order they were added.
func (r *UserStore) findFavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT offer_id::text FROM user_favorites WHERE user_id = $1 ORDER BY created_at, offer_id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite IDs: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan favorite ID: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt favorite ID %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during favorite IDs iteration: %w", err)
	}
	return ids, nil
}

func (r *UserStore) AddFavorite(ctx context.Context, userID, offerID uuid.UUID) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresUserStore",
		"method":    "AddFavorite",
		"user_id":   userID.String(),
		"offer_id":  offerID.String(),
	})

	query := `INSERT INTO user_favorites (user_id, offer_id) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, userID, offerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			repoLogger.Debug("Favorite already exists, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to add favorite", err, port.Fields{"query": query})
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *UserStore) RemoveFavorite(ctx context.Context, userID, offerID uuid.UUID) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresUserStore",
		"method":    "RemoveFavorite",
		"user_id":   userID.String(),
		"offer_id":  offerID.String(),
	})

	query := `DELETE FROM user_favorites WHERE user_id = $1 AND offer_id = $2`
	cmdTag, err := r.pool.Exec(ctx, query, userID, offerID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, port.Fields{"query": query})
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Debug("Attempted to remove a favorite that did not exist.", nil)
	}
	return nil
}

func (r *UserStore) UpdateAvatar(ctx context.Context, userID uuid.UUID, link string) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE users SET avatar_url = $2 WHERE id = $1`, userID, link)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
