// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() models.TxRecord {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return models.TxRecord{
		ID:        "0192f3c6-0000-7000-8000-000000000001",
		Action:    models.ActionSetEncryptedWill,
		TxHash:    "0xabc",
		From:      "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Status:    models.TxPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func Test_buildInsertTxRecordQuery(t *testing.T) {
	rec := testRecord()

	query, args, err := buildInsertTxRecordQuery(rec)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into tx_journal")
	for _, c := range txJournalColumns {
		require.Contains(t, q, c)
	}

	// placeholder format should be ? (sqlite)
	assert.Equal(t, len(txJournalColumns), strings.Count(query, "?"))
	assert.NotContains(t, query, "$1")

	require.Len(t, args, len(txJournalColumns))
	assert.Equal(t, rec.ID, args[0])
	assert.Equal(t, "setEncryptedWill", args[1])
	assert.Equal(t, rec.TxHash, args[2])
	assert.Equal(t, "pending", args[4])
}

func Test_buildUpdateTxStatusQuery(t *testing.T) {
	rec := testRecord()
	rec.Status = models.TxConfirmed
	rec.BlockNumber = 42

	query, args, err := buildUpdateTxStatusQuery(rec)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update tx_journal set")
	require.Contains(t, q, "status = ?")
	require.Contains(t, q, "block_number = ?")
	require.Contains(t, q, "where id = ?")
	assert.NotContains(t, q, "tx_hash")

	assert.Equal(t, []any{"confirmed", uint64(42), "", rec.UpdatedAt, rec.ID}, args)
}

func Test_buildListByStatusQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit bool
	}{
		{name: "with limit", limit: 25, wantLimit: true},
		{name: "without limit", limit: 0, wantLimit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListByStatusQuery(models.TxPending, tt.limit)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "from tx_journal")
			require.Contains(t, q, "where status = ?")
			require.Contains(t, q, "order by updated_at asc")
			assert.Equal(t, tt.wantLimit, strings.Contains(q, "limit 25"))
			assert.Equal(t, []any{"pending"}, args)
		})
	}
}

func Test_buildListRecentQuery(t *testing.T) {
	query, args, err := buildListRecentQuery(10)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from tx_journal")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, q, "limit 10")
	assert.NotContains(t, q, "where")
	assert.Empty(t, args)
}
