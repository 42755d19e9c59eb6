package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/models"
)

type txJournalRepository struct {
	*DB
	logger *logger.Logger
}

// NewTxJournalRepository returns a sqlite-backed [TxJournalRepository].
func NewTxJournalRepository(db *DB, logger *logger.Logger) TxJournalRepository {
	return &txJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *txJournalRepository) Save(ctx context.Context, record models.TxRecord) error {
	query, args, err := buildInsertTxRecordQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateTxHash, record.TxHash)
		}
		r.logger.Err(err).
			Str("func", "txJournalRepository.Save").
			Str("id", record.ID).
			Str("tx_hash", record.TxHash).
			Msg("failed to insert tx record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTxRecordNotSaved
	}

	return nil
}

func (r *txJournalRepository) UpdateStatus(ctx context.Context, record models.TxRecord) error {
	query, args, err := buildUpdateTxStatusQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "txJournalRepository.UpdateStatus").
			Str("id", record.ID).
			Str("status", string(record.Status)).
			Msg("failed to update tx record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrTxRecordNotFound, record.ID)
	}

	return nil
}

func (r *txJournalRepository) ListByStatus(ctx context.Context, status models.TxStatus, limit int) ([]models.TxRecord, error) {
	query, args, err := buildListByStatusQuery(status, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "txJournalRepository.ListByStatus", query, args)
}

func (r *txJournalRepository) ListRecent(ctx context.Context, limit int) ([]models.TxRecord, error) {
	query, args, err := buildListRecentQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "txJournalRepository.ListRecent", query, args)
}

func (r *txJournalRepository) list(ctx context.Context, fn, query string, args []any) ([]models.TxRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to query tx journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.TxRecord, 0)
	for rows.Next() {
		record, err := scanTxRecord(rows)
		if err != nil {
			r.logger.Err(err).Str("func", fn).Msg("failed to scan tx record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func scanTxRecord(rows *sql.Rows) (models.TxRecord, error) {
	var (
		record models.TxRecord
		action string
		status string
	)

	err := rows.Scan(
		&record.ID,
		&action,
		&record.TxHash,
		&record.From,
		&status,
		&record.BlockNumber,
		&record.Error,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return models.TxRecord{}, err
	}

	record.Action = models.TxAction(action)
	record.Status = models.TxStatus(status)

	return record, nil
}
