// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProviderKind names the wallet provider variant backing a session.
type ProviderKind string

const (
	// ProviderKeystore signs with accounts from a go-ethereum keystore directory.
	ProviderKeystore ProviderKind = "keystore"
	// ProviderMnemonic signs with keys derived from a BIP-39 mnemonic.
	ProviderMnemonic ProviderKind = "mnemonic"
	// ProviderUnavailable is used when no wallet is configured at all.
	ProviderUnavailable ProviderKind = "unavailable"
)

// WalletSession is the in-memory identity obtained by connecting a wallet.
// It is never persisted and lives only as long as the client process.
type WalletSession struct {
	// Account is the first address returned by the provider.
	Account common.Address
	// Provider tells which wallet variant issued the account.
	Provider ProviderKind
	// ConnectedAt is the local time the session was established.
	ConnectedAt time.Time
}

// Address returns the checksummed hex form of the session account, or an
// empty string for a zero session.
func (s WalletSession) Address() string {
	if s.Account == (common.Address{}) {
		return ""
	}
	return s.Account.Hex()
}
