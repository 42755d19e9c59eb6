package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid endpoint settings
	// (for example, missing RPC URL, malformed contract address or a zero
	// timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWalletConfigs indicates a conflicting wallet setup, such as
	// both a keystore and a mnemonic being configured.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidStorageConfigs indicates an empty journal DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid process-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero receipt interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
