package storage

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key-value pair. Values are JSON blobs; the
// codecs in this package own their shape.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (Entry) TableName() string { return "store_entries" }

// Store is the persistent key-value state of the application: cart
// snapshots and the session blob live here, nothing else.
type Store struct {
	db *gorm.DB
}

// Open connects using DATABASE_URL when it is set, otherwise a local
// sqlite file at STORE_PATH (default broteverde.db), and migrates the
// entries table.
func Open() (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	} else {
		path := os.Getenv("STORE_PATH")
		if path == "" {
			path = "broteverde.db"
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	return New(db)
}

// New wraps an existing connection, migrating the entries table. Tests
// hand it an in-memory sqlite connection.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the raw value for key and whether it existed.
func (s *Store) Get(key string) (string, bool, error) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set writes key synchronously, replacing any previous value.
func (s *Store) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
