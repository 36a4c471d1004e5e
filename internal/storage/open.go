package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers.
const (
	DriverMemory    = "memory"
	DriverSQLite    = "sqlite"
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
)

// Options selects and configures a backend.
type Options struct {
	Driver              string
	SQLitePath          string
	PostgresDSN         string
	FirestoreProject    string
	FirestoreCollection string
}

// Open builds the Store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite, "":
		return OpenSQLite(opts.SQLitePath, gormCfg)
	case DriverPostgres:
		return OpenPostgres(opts.PostgresDSN, gormCfg)
	case DriverFirestore:
		return NewFirestoreStore(ctx, opts.FirestoreProject, opts.FirestoreCollection)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
