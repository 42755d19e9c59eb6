// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the client's local transaction journal in sqlite.
//
// The journal records what this client submitted to the contract together
// with the settlement status of each transaction. It never stores contract
// state.
package store

import (
	"context"

	"github.com/MKhiriev/go-will-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TxJournalRepository persists [models.TxRecord] rows.
type TxJournalRepository interface {
	// Save inserts a new record.
	Save(ctx context.Context, record models.TxRecord) error

	// UpdateStatus writes Status, BlockNumber, Error and UpdatedAt of the
	// record with record.ID. Returns [ErrTxRecordNotFound] if no row matched.
	UpdateStatus(ctx context.Context, record models.TxRecord) error

	// ListByStatus returns up to limit records with the given status,
	// least recently updated first. A non-positive limit means no limit.
	ListByStatus(ctx context.Context, status models.TxStatus, limit int) ([]models.TxRecord, error)

	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.TxRecord, error)
}
