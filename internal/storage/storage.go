package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/all-in-forms/internal/models"
)

// ErrNotFound indicates no record is stored under the key.
var ErrNotFound = errors.New("record not found")

// ErrCorrupted indicates a stored value exists but cannot be decoded into a UserRecord.
var ErrCorrupted = errors.New("record corrupted")

// UserStore maps a normalized username to its UserRecord. Keys are matched exactly;
// callers lowercase usernames before calling.
type UserStore interface {
	Get(ctx context.Context, key string) (models.UserRecord, error)
	// Put overwrites any existing record under key.
	Put(ctx context.Context, key string, record models.UserRecord) error
}
