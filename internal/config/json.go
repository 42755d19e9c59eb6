package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		LogFile        string `json:"log_file"`
		JournalLimit   int    `json:"journal_limit"`
		SealPassphrase string `json:"seal_passphrase"`
	} `json:"app,omitempty"`

	Adapter struct {
		RPCURL            string   `json:"rpc_url"`
		ContractAddress   string   `json:"contract_address"`
		ChainID           int64    `json:"chain_id"`
		IPFSURL           string   `json:"ipfs_url"`
		IPFSProjectID     string   `json:"ipfs_project_id"`
		IPFSProjectSecret string   `json:"ipfs_project_secret"`
		RequestTimeout    Duration `json:"request_timeout"`
		TxTimeout         Duration `json:"tx_timeout"`
	} `json:"adapter,omitempty"`

	Wallet struct {
		KeystoreDir  string `json:"keystore_dir"`
		Passphrase   string `json:"passphrase"`
		Mnemonic     string `json:"mnemonic"`
		AccountCount int    `json:"account_count"`
	} `json:"wallet,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ReceiptInterval Duration `json:"receipt_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:        jsonCfg.App.LogFile,
			JournalLimit:   jsonCfg.App.JournalLimit,
			SealPassphrase: jsonCfg.App.SealPassphrase,
		},
		Adapter: Adapter{
			RPCURL:            jsonCfg.Adapter.RPCURL,
			ContractAddress:   jsonCfg.Adapter.ContractAddress,
			ChainID:           jsonCfg.Adapter.ChainID,
			IPFSURL:           jsonCfg.Adapter.IPFSURL,
			IPFSProjectID:     jsonCfg.Adapter.IPFSProjectID,
			IPFSProjectSecret: jsonCfg.Adapter.IPFSProjectSecret,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			TxTimeout:         time.Duration(jsonCfg.Adapter.TxTimeout),
		},
		Wallet: Wallet{
			KeystoreDir:  jsonCfg.Wallet.KeystoreDir,
			Passphrase:   jsonCfg.Wallet.Passphrase,
			Mnemonic:     jsonCfg.Wallet.Mnemonic,
			AccountCount: jsonCfg.Wallet.AccountCount,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			ReceiptInterval: time.Duration(jsonCfg.Workers.ReceiptInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
