package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// TxJournal is the sqlite-backed transaction journal.
	TxJournal TxJournalRepository

	db *DB
}

// NewClientStorages opens the sqlite journal at cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TxJournal: NewTxJournalRepository(db, logger),
		db:        db,
	}, nil
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
