package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the JSON log destination.
	LogFile string
	// JournalLimit is how many recent journal records the view shows.
	JournalLimit int
	// SealPassphrase enables sealing of uploads when non-empty.
	SealPassphrase string
}

// ClientAdapter holds the endpoints and timeouts used by the adapters.
type ClientAdapter struct {
	// RPCURL is the Ethereum JSON-RPC endpoint.
	RPCURL string
	// ContractAddress is the hex address of the inheritance contract.
	ContractAddress string
	// ChainID pins the signing chain id; zero means "ask the node".
	ChainID int64
	// IPFSURL is the gateway add endpoint.
	IPFSURL string
	// IPFSProjectID and IPFSProjectSecret are optional basic-auth credentials.
	IPFSProjectID     string
	IPFSProjectSecret string
	// RequestTimeout bounds reads and uploads.
	RequestTimeout time.Duration
	// TxTimeout bounds signing, broadcasting and receipt waits.
	TxTimeout time.Duration
}

// ClientWallet selects the wallet provider variant.
type ClientWallet struct {
	KeystoreDir  string
	Passphrase   string
	Mnemonic     string
	AccountCount int
}

// ClientDB contains the journal database settings.
type ClientDB struct {
	// DSN is the sqlite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds journal database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReceiptInterval defines how often pending transactions are re-checked.
	ReceiptInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Wallet  ClientWallet
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := toClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func toClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:        cfg.App.LogFile,
			JournalLimit:   cfg.App.JournalLimit,
			SealPassphrase: cfg.App.SealPassphrase,
		},
		Adapter: ClientAdapter{
			RPCURL:            cfg.Adapter.RPCURL,
			ContractAddress:   cfg.Adapter.ContractAddress,
			ChainID:           cfg.Adapter.ChainID,
			IPFSURL:           cfg.Adapter.IPFSURL,
			IPFSProjectID:     cfg.Adapter.IPFSProjectID,
			IPFSProjectSecret: cfg.Adapter.IPFSProjectSecret,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			TxTimeout:         cfg.Adapter.TxTimeout,
		},
		Wallet: ClientWallet{
			KeystoreDir:  cfg.Wallet.KeystoreDir,
			Passphrase:   cfg.Wallet.Passphrase,
			Mnemonic:     cfg.Wallet.Mnemonic,
			AccountCount: cfg.Wallet.AccountCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{ReceiptInterval: cfg.Workers.ReceiptInterval},
	}
}
