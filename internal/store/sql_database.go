package store

import (
	"database/sql"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/migrations"
)

// DB wraps the sqlite connection used by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded journal schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
