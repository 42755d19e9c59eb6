// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source is merged.
const (
	DefaultContractAddress = "0x6ed6408147489500C5cC4a50DB1EBcad710450BE"
	DefaultIPFSURL         = "https://ipfs.infura.io:5001/api/v0/add"
	DefaultRPCURL          = "http://127.0.0.1:8545"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTxTimeout       = 3 * time.Minute
	DefaultReceiptInterval = 15 * time.Second
	DefaultJournalDSN      = "will-keeper.db"
	DefaultLogFile         = "will-keeper.log"
	DefaultJournalLimit    = 10
	DefaultAccountCount    = 1
)

// StructuredConfig is the top-level configuration container for the
// will-keeper client. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the endpoints of the external systems: the Ethereum
	// node, the inheritance contract and the IPFS gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Wallet selects and configures the wallet provider variant.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Storage holds the local transaction journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level client settings.
type App struct {
	// LogFile is where JSON logs are appended. The terminal UI owns stdout,
	// so logs never go there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// JournalLimit is how many recent journal records the view shows.
	// Env: APP_JOURNAL_LIMIT
	JournalLimit int `env:"JOURNAL_LIMIT"`

	// SealPassphrase, when set, seals every uploaded file with Argon2id and
	// AES-256-GCM before it reaches the gateway.
	// Env: APP_SEAL_PASSPHRASE
	SealPassphrase string `env:"SEAL_PASSPHRASE"`
}

// Adapter holds the addresses and timeouts of the remote systems.
type Adapter struct {
	// RPCURL is the Ethereum JSON-RPC endpoint (http, https, ws or ipc path).
	// Env: ADAPTER_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ContractAddress is the hex address of the inheritance contract.
	// Env: ADAPTER_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// ChainID pins the chain id used for signing. Zero means the id is
	// queried from the node for every action.
	// Env: ADAPTER_CHAIN_ID
	ChainID int64 `env:"CHAIN_ID"`

	// IPFSURL is the full URL of the gateway's add endpoint.
	// Env: ADAPTER_IPFS_URL
	IPFSURL string `env:"IPFS_URL"`

	// IPFSProjectID and IPFSProjectSecret are optional basic-auth
	// credentials for hosted gateways.
	// Env: ADAPTER_IPFS_PROJECT_ID, ADAPTER_IPFS_PROJECT_SECRET
	IPFSProjectID     string `env:"IPFS_PROJECT_ID"`
	IPFSProjectSecret string `env:"IPFS_PROJECT_SECRET"`

	// RequestTimeout bounds read calls and uploads (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TxTimeout bounds signing, broadcasting and waiting for a receipt.
	// Env: ADAPTER_TX_TIMEOUT
	TxTimeout time.Duration `env:"TX_TIMEOUT"`
}

// Wallet configures the wallet provider. At most one of KeystoreDir and
// Mnemonic may be set; with neither the client runs without a wallet and
// every signing action reports that no provider is available.
type Wallet struct {
	// KeystoreDir is a go-ethereum keystore directory.
	// Env: WALLET_KEYSTORE_DIR
	KeystoreDir string `env:"KEYSTORE_DIR"`

	// Passphrase unlocks the keystore account. When empty the client
	// prompts for it on the terminal.
	// Env: WALLET_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// Mnemonic is a BIP-39 phrase; accounts are derived on m/44'/60'/0'/0/i.
	// Env: WALLET_MNEMONIC
	Mnemonic string `env:"MNEMONIC"`

	// AccountCount is how many mnemonic accounts are derived.
	// Env: WALLET_ACCOUNT_COUNT
	AccountCount int `env:"ACCOUNT_COUNT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the sqlite journal.
type DB struct {
	// DSN is the sqlite file path of the transaction journal.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReceiptInterval is how often pending journal records are re-checked.
	// Env: WORKERS_RECEIPT_INTERVAL
	ReceiptInterval time.Duration `env:"RECEIPT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:      DefaultLogFile,
			JournalLimit: DefaultJournalLimit,
		},
		Adapter: Adapter{
			RPCURL:          DefaultRPCURL,
			ContractAddress: DefaultContractAddress,
			IPFSURL:         DefaultIPFSURL,
			RequestTimeout:  DefaultRequestTimeout,
			TxTimeout:       DefaultTxTimeout,
		},
		Wallet: Wallet{
			AccountCount: DefaultAccountCount,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultJournalDSN},
		},
		Workers: Workers{
			ReceiptInterval: DefaultReceiptInterval,
		},
	}
}
