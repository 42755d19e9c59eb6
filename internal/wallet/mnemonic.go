package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// Ethereum BIP-44 path prefix m/44'/60'/0'/0.
var ethereumPathPrefix = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
}

type mnemonicProvider struct {
	addrs []common.Address
	keys  map[common.Address]*ecdsa.PrivateKey

	logger *logger.Logger
}

// NewMnemonicProvider derives count accounts from mnemonic on
// m/44'/60'/0'/0/i. A count below one derives a single account.
func NewMnemonicProvider(mnemonic string, count int, log *logger.Logger) (Provider, error) {
	return newMnemonicProvider(mnemonic, count, log)
}

func newMnemonicProvider(mnemonic string, count int, log *logger.Logger) (*mnemonicProvider, error) {
	if count < 1 {
		count = 1
	}

	seed, err := bip39.NewSeedWithErrorChecking(normalizeMnemonic(mnemonic), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	account := master
	for _, index := range ethereumPathPrefix {
		account, err = account.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("derive account key: %w", err)
		}
	}

	p := &mnemonicProvider{
		addrs:  make([]common.Address, 0, count),
		keys:   make(map[common.Address]*ecdsa.PrivateKey, count),
		logger: log,
	}

	for i := 0; i < count; i++ {
		key, err := deriveKey(account, uint32(i))
		if err != nil {
			return nil, err
		}
		addr := crypto.PubkeyToAddress(key.PublicKey)
		p.addrs = append(p.addrs, addr)
		p.keys[addr] = key
	}

	return p, nil
}

func deriveKey(parent *hdkeychain.ExtendedKey, index uint32) (*ecdsa.PrivateKey, error) {
	child, err := parent.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("derive key %d: %w", index, err)
	}

	priv, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("get private key %d: %w", index, err)
	}

	key, err := crypto.ToECDSA(priv.Serialize())
	if err != nil {
		return nil, fmt.Errorf("convert private key %d: %w", index, err)
	}

	return key, nil
}

func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

func (p *mnemonicProvider) Kind() models.ProviderKind {
	return models.ProviderMnemonic
}

func (p *mnemonicProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	addrs := make([]common.Address, len(p.addrs))
	copy(addrs, p.addrs)

	return addrs, nil
}

func (p *mnemonicProvider) Signer(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, ok := p.keys[account]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx

	return opts, nil
}
