package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one key-value row.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;type:varchar(191)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName pins the table name regardless of naming strategy.
func (Entry) TableName() string {
	return "kv_entries"
}

// GORMStore keeps entries in a relational table through GORM.
type GORMStore struct {
	db *gorm.DB
}

var _ Store = (*GORMStore)(nil)

// NewGORMStore migrates the entries table and wraps db.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file.
func OpenSQLite(path string, cfg *gorm.Config) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return NewGORMStore(db)
}

// OpenPostgres connects to PostgreSQL with the given DSN.
func OpenPostgres(dsn string, cfg *gorm.Config) (*GORMStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return NewGORMStore(db)
}

// Get reads the value stored under key.
func (s *GORMStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	if err := s.db.WithContext(ctx).First(&entry, "entry_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to get entry %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Put upserts the value under key.
func (s *GORMStore) Put(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to put entry %s: %w", key, err)
	}
	return nil
}

// Delete removes key; a missing key is not an error.
func (s *GORMStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Entry{}, "entry_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *GORMStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
