package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hongminglow/all-in-forms/internal/models"
	"github.com/hongminglow/all-in-forms/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store provides Postgres-backed persistence for user records.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a new Store and runs migrations.
func NewUserStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_records (
			username TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// Get fetches the record stored under key.
func (s *Store) Get(ctx context.Context, key string) (models.UserRecord, error) {
	const query = `SELECT username, email, password FROM user_records WHERE username = $1;`

	var record models.UserRecord
	err := s.pool.QueryRow(ctx, query, key).Scan(&record.Username, &record.Email, &record.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.UserRecord{}, storage.ErrNotFound
		}
		return models.UserRecord{}, errors.Wrap(err, "select user record")
	}
	return record, nil
}

// Put inserts the record or replaces the one already stored under key.
func (s *Store) Put(ctx context.Context, key string, record models.UserRecord) error {
	const query = `
		INSERT INTO user_records (username, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE
		SET email = EXCLUDED.email, password = EXCLUDED.password, updated_at = NOW();
	`
	if _, err := s.pool.Exec(ctx, query, key, record.Email, record.Password); err != nil {
		return errors.Wrap(err, "upsert user record")
	}
	return nil
}
