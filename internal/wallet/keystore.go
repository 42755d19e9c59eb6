package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type keystoreProvider struct {
	ks         *keystore.KeyStore
	passphrase string

	logger *logger.Logger
}

// NewKeystoreProvider opens the go-ethereum keystore in dir. Keys are never
// left unlocked: every signature decrypts the key with passphrase and drops
// it again.
func NewKeystoreProvider(dir, passphrase string, log *logger.Logger) (Provider, error) {
	return newKeystoreProvider(dir, passphrase, keystore.StandardScryptN, keystore.StandardScryptP, log)
}

func newKeystoreProvider(dir, passphrase string, scryptN, scryptP int, log *logger.Logger) (*keystoreProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open keystore dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open keystore dir: %s is not a directory", dir)
	}

	return &keystoreProvider{
		ks:         keystore.NewKeyStore(dir, scryptN, scryptP),
		passphrase: passphrase,
		logger:     log,
	}, nil
}

func (p *keystoreProvider) Kind() models.ProviderKind {
	return models.ProviderKeystore
}

func (p *keystoreProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accs := p.ks.Accounts()
	if len(accs) == 0 {
		return nil, ErrNoAccounts
	}

	addrs := make([]common.Address, 0, len(accs))
	for _, acc := range accs {
		addrs = append(addrs, acc.Address)
	}

	return addrs, nil
}

func (p *keystoreProvider) Signer(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if chainID == nil {
		return nil, errors.New("keystore signer: chain id is required")
	}
	if !p.ks.HasAddress(account) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}

	acc := accounts.Account{Address: account}
	// fail fast on a wrong passphrase instead of at broadcast time
	if err := p.ks.Unlock(acc, p.passphrase); err != nil {
		return nil, p.mapKeystoreError(err)
	}
	if err := p.ks.Lock(account); err != nil {
		return nil, fmt.Errorf("lock keystore account: %w", err)
	}

	return &bind.TransactOpts{
		From:    account,
		Context: ctx,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if from != account {
				return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, from.Hex())
			}
			signed, err := p.ks.SignTxWithPassphrase(acc, p.passphrase, tx, chainID)
			if err != nil {
				return nil, p.mapKeystoreError(err)
			}
			return signed, nil
		},
	}, nil
}

func (p *keystoreProvider) mapKeystoreError(err error) error {
	if errors.Is(err, keystore.ErrDecrypt) || errors.Is(err, keystore.ErrLocked) {
		p.logger.Warn().Str("func", "keystoreProvider.Signer").Err(err).Msg("keystore refused to sign")
		return fmt.Errorf("%w: %v", ErrSignerRejected, err)
	}
	return fmt.Errorf("keystore: %w", err)
}
