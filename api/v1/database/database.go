package database

import (
	"context"
	"fmt"

	"github.com/bp0001/backend/api/v1/models"
	"github.com/bp0001/backend/config"
	"go.uber.org/zap"
)

// UserRepository is the lookup capability the user service depends on.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Store is a UserRepository that also owns its connection lifecycle.
type Store interface {
	UserRepository
	CreateUser(ctx context.Context, user *models.User) error
	Ping(ctx context.Context) error
	Close()
}

// Open builds the store selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Infow("using in-memory user store")
		return NewMemoryStore(), nil
	case config.DriverPostgres:
		store, err := Connect(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := Migrate(ctx, cfg.Postgres.URL); err != nil {
				store.Close()
				return nil, err
			}
			log.Infow("migrations applied")
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// Seed creates a user for each username, skipping ones that already exist.
func Seed(ctx context.Context, store Store, usernames []string, log *zap.SugaredLogger) error {
	for _, username := range usernames {
		err := store.CreateUser(ctx, &models.User{Username: username})
		switch {
		case err == nil:
			log.Infow("seeded user", "username", username)
		case IsUsernameExistsError(err):
			log.Debugw("seed user already present", "username", username)
		default:
			return fmt.Errorf("seed user %q: %w", username, err)
		}
	}
	return nil
}
