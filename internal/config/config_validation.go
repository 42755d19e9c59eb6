// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks the merged [StructuredConfig]. Source-level validation is
// deferred to [ClientConfig.validate], which sees the final values.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Wallet.KeystoreDir != "" && cfg.Wallet.Mnemonic != "" {
		return fmt.Errorf("%w: keystore and mnemonic are mutually exclusive", ErrInvalidWalletConfigs)
	}
	if cfg.Wallet.AccountCount < 0 {
		return fmt.Errorf("%w: negative account count", ErrInvalidWalletConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ReceiptInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.JournalLimit < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (a ClientAdapter) validate() error {
	if strings.TrimSpace(a.RPCURL) == "" {
		return fmt.Errorf("%w: empty rpc url", ErrInvalidAdapterConfigs)
	}
	if !common.IsHexAddress(a.ContractAddress) {
		return fmt.Errorf("%w: bad contract address %q", ErrInvalidAdapterConfigs, a.ContractAddress)
	}
	u, err := url.Parse(a.IPFSURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad ipfs url %q", ErrInvalidAdapterConfigs, a.IPFSURL)
	}
	if a.RequestTimeout <= 0 || a.TxTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}
	if a.ChainID < 0 {
		return fmt.Errorf("%w: negative chain id", ErrInvalidAdapterConfigs)
	}
	return nil
}
