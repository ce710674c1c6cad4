// Package backend opens the UserStore selected by configuration.
package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hongminglow/all-in-forms/internal/config"
	"github.com/hongminglow/all-in-forms/internal/storage"
	"github.com/hongminglow/all-in-forms/internal/storage/memory"
	"github.com/hongminglow/all-in-forms/internal/storage/postgres"
	redisstorage "github.com/hongminglow/all-in-forms/internal/storage/redis"
	"github.com/hongminglow/all-in-forms/internal/storage/sqlite"
)

// Open returns the configured store and a function releasing its resources.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (storage.UserStore, func(), error) {
	log = log.With(zap.String("storage", cfg.StorageType))

	switch cfg.StorageType {
	case config.StorageMemory:
		log.Warn("using in-memory storage; records are lost on exit")
		return memory.New(), func() {}, nil

	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("opened sqlite storage", zap.String("path", cfg.SQLitePath))
		return store, closer(log, store.Close), nil

	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		store, err := redisstorage.New(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected to redis storage")
		return store, closer(log, store.Close), nil

	case config.StoragePostgres:
		store, err := postgres.NewUserStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected to postgres storage")
		return store, func() { store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}

func closer(log *zap.Logger, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			log.Warn("could not close storage", zap.Error(err))
		}
	}
}
