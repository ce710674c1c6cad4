package sqlite

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/hongminglow/all-in-forms/internal/models"
	"github.com/hongminglow/all-in-forms/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// entry is one key/value pair; Payload holds the JSON-encoded UserRecord.
type entry struct {
	Username string `gorm:"primaryKey"`
	Payload  string `gorm:"not null"`
}

func (entry) TableName() string { return "user_entries" }

// Store persists user records in a local SQLite file.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, errors.Wrap(err, "migrate sqlite")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Get(ctx context.Context, key string) (models.UserRecord, error) {
	var row entry
	err := s.db.WithContext(ctx).Where("username = ?", key).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserRecord{}, storage.ErrNotFound
		}
		return models.UserRecord{}, errors.Wrap(err, "select user entry")
	}

	var record models.UserRecord
	if err := json.Unmarshal([]byte(row.Payload), &record); err != nil {
		return models.UserRecord{}, errors.Wrapf(storage.ErrCorrupted, "decode %q: %v", key, err)
	}
	return record, nil
}

func (s *Store) Put(ctx context.Context, key string, record models.UserRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "encode user record")
	}
	row := entry{Username: key, Payload: string(payload)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "upsert user entry")
	}
	return nil
}
