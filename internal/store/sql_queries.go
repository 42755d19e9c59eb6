package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-will-keeper/models"
)

const txJournalTable = "tx_journal"

var txJournalColumns = []string{
	"id",
	"action",
	"tx_hash",
	"from_address",
	"status",
	"block_number",
	"error",
	"created_at",
	"updated_at",
}

// sqlite uses ? placeholders
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertTxRecordQuery(record models.TxRecord) (string, []any, error) {
	return qb.
		Insert(txJournalTable).
		Columns(txJournalColumns...).
		Values(
			record.ID,
			string(record.Action),
			record.TxHash,
			record.From,
			string(record.Status),
			record.BlockNumber,
			record.Error,
			record.CreatedAt,
			record.UpdatedAt,
		).
		ToSql()
}

func buildUpdateTxStatusQuery(record models.TxRecord) (string, []any, error) {
	return qb.
		Update(txJournalTable).
		Set("status", string(record.Status)).
		Set("block_number", record.BlockNumber).
		Set("error", record.Error).
		Set("updated_at", record.UpdatedAt).
		Where(sq.Eq{"id": record.ID}).
		ToSql()
}

func buildListByStatusQuery(status models.TxStatus, limit int) (string, []any, error) {
	q := qb.
		Select(txJournalColumns...).
		From(txJournalTable).
		Where(sq.Eq{"status": string(status)}).
		OrderBy("updated_at ASC", "id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildListRecentQuery(limit int) (string, []any, error) {
	q := qb.
		Select(txJournalColumns...).
		From(txJournalTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}
