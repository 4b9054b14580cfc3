package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/adapters/memory"
	mongo_adapter "github.com/Akergez/2572371-six-cities-4/internal/adapters/mongo"
	postgres_adapter "github.com/Akergez/2572371-six-cities-4/internal/adapters/postgres"
	redis_adapter "github.com/Akergez/2572371-six-cities-4/internal/adapters/redis"
	"github.com/Akergez/2572371-six-cities-4/internal/configs"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/pkg/mongodb"
	"github.com/Akergez/2572371-six-cities-4/pkg/postgres"
	"github.com/Akergez/2572371-six-cities-4/pkg/redis"
)

// stores bundles the persistence ports with the closers of the clients behind them.
type stores struct {
	users    port.UserStorePort
	offers   port.OfferStorePort
	comments port.CommentStorePort
	tokens   port.TokenStorePort

	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func(ctx context.Context) error
}

func (s *stores) onClose(name string, fn func(ctx context.Context) error) {
	s.closers = append(s.closers, namedCloser{name: name, close: fn})
}

func (s *stores) close(logger port.LoggerPort) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		if err := c.close(ctx); err != nil {
			logger.Error("Error closing storage client", err, port.Fields{"client": c.name})
			continue
		}
		logger.Info("Storage client closed", port.Fields{"client": c.name})
	}
	s.closers = nil
}

// openStores connects the configured storage driver and, when Redis is
// enabled, moves the Token Store there.
func openStores(ctx context.Context, cfg *configs.AppConfig, logger port.LoggerPort) (*stores, error) {
	s := &stores{}

	var err error
	switch cfg.Storage.Driver {
	case configs.StorageDriverMongo:
		err = s.openMongo(ctx, cfg, logger)
	case configs.StorageDriverPostgres:
		err = s.openPostgres(ctx, cfg, logger)
	case configs.StorageDriverMemory:
		s.users = memory.NewUserStore()
		s.offers = memory.NewOfferStore()
		s.comments = memory.NewCommentStore()
		s.tokens = memory.NewTokenStore()
		logger.Warn("Using in-memory storage, data is lost on restart", nil)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		s.close(logger)
		return nil, err
	}

	if cfg.Redis.Enabled {
		if err := s.openRedisTokens(ctx, cfg, logger); err != nil {
			s.close(logger)
			return nil, err
		}
	}

	return s, nil
}

func (s *stores) openMongo(ctx context.Context, cfg *configs.AppConfig, logger port.LoggerPort) error {
	client, db, err := mongodb.NewClient(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	s.onClose("mongo", client.Disconnect)
	logger.Info("Successfully connected to MongoDB", port.Fields{"database": cfg.Mongo.Database})

	if err := mongo_adapter.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create MongoDB indexes: %w", err)
	}

	if s.users, err = mongo_adapter.NewUserStore(db); err != nil {
		return err
	}
	if s.offers, err = mongo_adapter.NewOfferStore(db); err != nil {
		return err
	}
	if s.comments, err = mongo_adapter.NewCommentStore(db); err != nil {
		return err
	}
	if s.tokens, err = mongo_adapter.NewTokenStore(db); err != nil {
		return err
	}
	return nil
}

func (s *stores) openPostgres(ctx context.Context, cfg *configs.AppConfig, logger port.LoggerPort) error {
	pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: cfg.Database.URL})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.onClose("postgres", func(context.Context) error {
		pool.Close()
		return nil
	})
	logger.Info("Successfully connected to PostgreSQL", nil)

	if err := postgres_adapter.ApplyMigrations(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if s.users, err = postgres_adapter.NewUserStore(pool); err != nil {
		return err
	}
	if s.offers, err = postgres_adapter.NewOfferStore(pool); err != nil {
		return err
	}
	if s.comments, err = postgres_adapter.NewCommentStore(pool); err != nil {
		return err
	}
	if s.tokens, err = postgres_adapter.NewTokenStore(pool); err != nil {
		return err
	}
	return nil
}

func (s *stores) openRedisTokens(ctx context.Context, cfg *configs.AppConfig, logger port.LoggerPort) error {
	client, err := redis.NewClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s.onClose("redis", func(context.Context) error { return client.Close() })

	tokens, err := redis_adapter.NewTokenStore(client)
	if err != nil {
		return err
	}
	s.tokens = tokens
	logger.Info("Token store moved to Redis", port.Fields{"addr": cfg.Redis.Addr})
	return nil
}
