// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"math/big"

	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_provider_mock.go -package=mock

// Provider is the injected wallet. Implementations must be safe for
// concurrent use because every view action runs on its own goroutine.
type Provider interface {
	// Kind reports which variant backs the provider.
	Kind() models.ProviderKind

	// RequestAccounts returns the accounts the provider controls in a stable
	// order. The first one becomes the session account.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// Signer returns a transactor bound to account and chainID. A new value
	// is built on every call and must not be cached by callers.
	Signer(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}
