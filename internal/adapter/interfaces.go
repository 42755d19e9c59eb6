// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's connections to the two remote
// systems it talks to: the inheritance contract behind an Ethereum JSON-RPC
// node, and an IPFS gateway that stores uploaded files.
//
// [ContractAdapter] wraps the fixed contract ABI (embedded from abi.json) and
// [StorageAdapter] wraps the gateway's multipart add endpoint. Both map
// transport failures to the sentinel values in errors.go so callers can use
// [errors.Is] without knowing the transport.
package adapter

import (
	"context"
	"io"
	"math/big"

	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContractAdapter exposes the inheritance contract procedures one-to-one.
// State-changing methods sign with opts and return the broadcast
// transaction without waiting for it; use WaitMined for that.
type ContractAdapter interface {
	// ChainID returns the chain id reported by the node.
	ChainID(ctx context.Context) (*big.Int, error)

	// GetEncryptedWill calls the read-only getEncryptedWill() as from. An
	// empty string is a valid result.
	GetEncryptedWill(ctx context.Context, from common.Address) (string, error)

	// SetEncryptedWill sends setEncryptedWill(cid).
	SetEncryptedWill(ctx context.Context, opts *bind.TransactOpts, cid string) (*types.Transaction, error)

	// AddTokenBeneficiary sends addTokenBeneficiary(recipient, share).
	AddTokenBeneficiary(ctx context.Context, opts *bind.TransactOpts, recipient common.Address, share *big.Int) (*types.Transaction, error)

	// ApproveIdentity sends approveIdentity(target).
	ApproveIdentity(ctx context.Context, opts *bind.TransactOpts, target common.Address) (*types.Transaction, error)

	// ConfirmDeceased sends confirmDeceased().
	ConfirmDeceased(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error)

	// DistributeToken sends distributeToken().
	DistributeToken(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error)

	// WaitMined blocks until tx is mined or ctx is done. A mined transaction
	// with a failed status returns its receipt together with
	// [ErrTransactionReverted].
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// TransactionReceipt fetches the receipt for hash once. It returns
	// [ErrReceiptNotFound] while the transaction is not mined.
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)

	// Close releases the RPC connection.
	Close()
}

// StorageAdapter uploads files to the content-addressed storage network.
type StorageAdapter interface {
	// Upload posts content as multipart field "file" named name and returns
	// the content identifier announced by the gateway.
	Upload(ctx context.Context, name string, content io.Reader) (models.UploadResult, error)
}
