package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client's command-line flags from args.
//
// Flags:
//
//	-rpc              Ethereum JSON-RPC endpoint
//	-contract         inheritance contract address
//	-chain-id         chain id used for signing (0 = ask the node)
//	-ipfs             IPFS gateway add endpoint
//	-request-timeout  timeout for reads and uploads (e.g. "30s")
//	-tx-timeout       timeout for signing and receipt waits (e.g. "3m")
//	-keystore         go-ethereum keystore directory
//	-accounts         number of mnemonic accounts to derive
//	-d                journal database file
//	-log              log file path
//	-journal-limit    recent journal records shown
//	-receipt-interval pending receipt re-check interval
//	-c/-config        json file path with configs
//
// Secrets (keystore passphrase, mnemonic, seal passphrase, gateway credentials) are only
// read from the environment or the JSON file.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		rpcURL          string
		contractAddress string
		chainID         int64
		ipfsURL         string
		requestTimeout  time.Duration
		txTimeout       time.Duration
		keystoreDir     string
		accountCount    int
		journalDSN      string
		logFile         string
		journalLimit    int
		receiptInterval time.Duration
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("will-keeper", flag.ContinueOnError)
	fs.StringVar(&rpcURL, "rpc", "", "Ethereum JSON-RPC endpoint")
	fs.StringVar(&contractAddress, "contract", "", "Inheritance contract address")
	fs.Int64Var(&chainID, "chain-id", 0, "Chain id used for signing (0 = ask the node)")
	fs.StringVar(&ipfsURL, "ipfs", "", "IPFS gateway add endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Read and upload timeout (e.g., 30s)")
	fs.DurationVar(&txTimeout, "tx-timeout", 0, "Transaction confirmation timeout (e.g., 3m)")
	fs.StringVar(&keystoreDir, "keystore", "", "Keystore directory")
	fs.IntVar(&accountCount, "accounts", 0, "Number of mnemonic accounts to derive")
	fs.StringVar(&journalDSN, "d", "", "Journal database file")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.IntVar(&journalLimit, "journal-limit", 0, "Recent journal records shown")
	fs.DurationVar(&receiptInterval, "receipt-interval", 0, "Pending receipt re-check interval (e.g., 15s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:      logFile,
			JournalLimit: journalLimit,
		},
		Adapter: Adapter{
			RPCURL:          rpcURL,
			ContractAddress: contractAddress,
			ChainID:         chainID,
			IPFSURL:         ipfsURL,
			RequestTimeout:  requestTimeout,
			TxTimeout:       txTimeout,
		},
		Wallet: Wallet{
			KeystoreDir:  keystoreDir,
			AccountCount: accountCount,
		},
		Storage: Storage{
			DB: DB{DSN: journalDSN},
		},
		Workers: Workers{
			ReceiptInterval: receiptInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
