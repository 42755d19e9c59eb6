// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallet abstracts the external key material the client signs with.
//
// A [Provider] hands out the accounts it controls and builds a fresh
// [bind.TransactOpts] signer for every state-changing call. Three variants
// exist: a go-ethereum keystore directory, a BIP-39 mnemonic derived on the
// Ethereum BIP-44 path, and an unavailable provider used when neither is
// configured. The unavailable variant fails every call with [ErrNoProvider]
// instead of silently doing nothing.
package wallet
