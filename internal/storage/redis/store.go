package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"

	"github.com/hongminglow/all-in-forms/internal/models"
	"github.com/hongminglow/all-in-forms/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store keeps one JSON-encoded UserRecord per Redis key, without expiry.
type Store struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}

	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, key string) (models.UserRecord, error) {
	data, err := s.client.Get(ctx, userKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.UserRecord{}, storage.ErrNotFound
		}
		return models.UserRecord{}, errors.Wrap(err, "get user record")
	}

	var record models.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.UserRecord{}, errors.Wrapf(storage.ErrCorrupted, "decode %q: %v", key, err)
	}
	return record, nil
}

func (s *Store) Put(ctx context.Context, key string, record models.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "encode user record")
	}
	if err := s.client.Set(ctx, userKey(key), data, 0).Err(); err != nil {
		return errors.Wrap(err, "set user record")
	}
	return nil
}
