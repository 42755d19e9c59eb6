// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's user actions on top of the
// wallet provider, the contract and storage adapters and the local
// transaction journal. Every exported service maps adapter and wallet
// failures to the sentinel errors in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// WalletService owns the in-memory wallet session.
type WalletService interface {
	// Connect asks the provider for its accounts and makes the first one the
	// session account. On failure the previous session is kept.
	Connect(ctx context.Context) (models.WalletSession, error)

	// Session returns the current session and whether one is established.
	Session() (models.WalletSession, bool)

	// ExecutionContext builds a fresh signer bound to the session account.
	// It returns ErrNotConnected before Connect has succeeded.
	ExecutionContext(ctx context.Context) (*bind.TransactOpts, error)
}

// WillService stores and reads the encrypted-will reference.
type WillService interface {
	// Store sends setEncryptedWill(cid), waits for the receipt and journals
	// the transaction. An empty cid is rejected with ErrEmptyWillReference.
	Store(ctx context.Context, cid string) (models.TxRecord, error)

	// Fetch calls getEncryptedWill() as the session account. An empty
	// reference is a valid result.
	Fetch(ctx context.Context) (models.WillReference, error)
}

// BeneficiaryService registers token beneficiaries.
type BeneficiaryService interface {
	// Add validates recipient and share, then sends
	// addTokenBeneficiary(recipient, share). Invalid input is rejected before
	// any remote call with ErrInvalidAddress or ErrInvalidShare.
	Add(ctx context.Context, recipient, share string) (models.TxRecord, error)
}

// IdentityService approves beneficiary identities.
type IdentityService interface {
	// Approve validates target and sends approveIdentity(target).
	Approve(ctx context.Context, target string) (models.TxRecord, error)
}

// EstateService triggers the contract's settlement procedures.
type EstateService interface {
	// ConfirmDeceased sends confirmDeceased().
	ConfirmDeceased(ctx context.Context) (models.TxRecord, error)

	// Distribute sends distributeToken().
	Distribute(ctx context.Context) (models.TxRecord, error)
}

// UploadService puts local files on the storage network.
type UploadService interface {
	// Upload reads the file at path and posts it to the gateway. An empty
	// path is rejected with ErrNoFileSelected.
	Upload(ctx context.Context, path string) (models.UploadResult, error)
}

// JournalService reads the local transaction journal.
type JournalService interface {
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]models.TxRecord, error)
}

// ReceiptSyncService settles journal records left pending.
type ReceiptSyncService interface {
	// Reconcile polls the node once for every pending record and updates the
	// ones that were mined. It returns how many records were settled.
	Reconcile(ctx context.Context) (int, error)
}

// ReceiptSyncJob runs [ReceiptSyncService.Reconcile] in the background.
type ReceiptSyncJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped before the new one begins.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
