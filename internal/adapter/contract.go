package adapter

import (
	"context"
	_ "embed"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

//go:embed abi.json
var contractABI string

// Contract method names.
const (
	methodSetEncryptedWill    = "setEncryptedWill"
	methodGetEncryptedWill    = "getEncryptedWill"
	methodAddTokenBeneficiary = "addTokenBeneficiary"
	methodApproveIdentity     = "approveIdentity"
	methodConfirmDeceased     = "confirmDeceased"
	methodDistributeToken     = "distributeToken"
)

// boundContract is the subset of *bind.BoundContract the adapter uses.
type boundContract interface {
	Call(opts *bind.CallOpts, results *[]any, method string, params ...any) error
	Transact(opts *bind.TransactOpts, method string, params ...any) (*types.Transaction, error)
}

// chainBackend is the subset of *ethclient.Client the adapter uses outside
// of the bound contract.
type chainBackend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

type waitMinedFunc func(ctx context.Context, b bind.DeployBackend, tx *types.Transaction) (*types.Receipt, error)

type ethContractAdapter struct {
	backend   chainBackend
	contract  boundContract
	address   common.Address
	waitMined waitMinedFunc

	logger *logger.Logger
}

// ParseContractABI parses the embedded contract ABI.
func ParseContractABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse contract abi: %w", err)
	}
	return parsed, nil
}

// NewEthContractAdapter dials adapterCfg.RPCURL and binds the embedded ABI
// to adapterCfg.ContractAddress.
func NewEthContractAdapter(ctx context.Context, adapterCfg config.ClientAdapter, log *logger.Logger) (ContractAdapter, error) {
	if !common.IsHexAddress(adapterCfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", adapterCfg.ContractAddress)
	}

	parsed, err := ParseContractABI()
	if err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, adapterCfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum node: %w", err)
	}

	address := common.HexToAddress(adapterCfg.ContractAddress)
	contract := bind.NewBoundContract(address, parsed, client, client, client)

	log.Info().
		Str("func", "adapter.NewEthContractAdapter").
		Str("rpc", adapterCfg.RPCURL).
		Str("contract", address.Hex()).
		Msg("contract adapter ready")

	return newEthContractAdapter(client, contract, address, log), nil
}

func newEthContractAdapter(backend chainBackend, contract boundContract, address common.Address, log *logger.Logger) *ethContractAdapter {
	return &ethContractAdapter{
		backend:   backend,
		contract:  contract,
		address:   address,
		waitMined: bind.WaitMined,
		logger:    log,
	}
}

func (a *ethContractAdapter) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := a.backend.ChainID(ctx)
	if err != nil {
		return nil, mapRPCError("chain id", err)
	}
	return id, nil
}

func (a *ethContractAdapter) GetEncryptedWill(ctx context.Context, from common.Address) (string, error) {
	var out []any
	err := a.contract.Call(&bind.CallOpts{Context: ctx, From: from}, &out, methodGetEncryptedWill)
	if err != nil {
		return "", mapRPCError(methodGetEncryptedWill, err)
	}
	if len(out) != 1 {
		return "", fmt.Errorf("%s: %w: %d values", methodGetEncryptedWill, ErrUnexpectedOutput, len(out))
	}

	cid, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: %w: %T", methodGetEncryptedWill, ErrUnexpectedOutput, out[0])
	}

	a.logger.Debug().
		Str("func", "ethContractAdapter.GetEncryptedWill").
		Str("from", from.Hex()).
		Int("len", len(cid)).
		Msg("will reference read")

	return cid, nil
}

func (a *ethContractAdapter) SetEncryptedWill(ctx context.Context, opts *bind.TransactOpts, cid string) (*types.Transaction, error) {
	return a.transact(ctx, opts, methodSetEncryptedWill, cid)
}

func (a *ethContractAdapter) AddTokenBeneficiary(ctx context.Context, opts *bind.TransactOpts, recipient common.Address, share *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, opts, methodAddTokenBeneficiary, recipient, share)
}

func (a *ethContractAdapter) ApproveIdentity(ctx context.Context, opts *bind.TransactOpts, target common.Address) (*types.Transaction, error) {
	return a.transact(ctx, opts, methodApproveIdentity, target)
}

func (a *ethContractAdapter) ConfirmDeceased(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
	return a.transact(ctx, opts, methodConfirmDeceased)
}

func (a *ethContractAdapter) DistributeToken(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
	return a.transact(ctx, opts, methodDistributeToken)
}

func (a *ethContractAdapter) transact(ctx context.Context, opts *bind.TransactOpts, method string, params ...any) (*types.Transaction, error) {
	if opts == nil {
		return nil, fmt.Errorf("%s: nil transact opts", method)
	}

	// bind reads the context from opts; work on a copy so callers keep theirs
	withCtx := *opts
	withCtx.Context = ctx

	tx, err := a.contract.Transact(&withCtx, method, params...)
	if err != nil {
		a.logger.Err(err).
			Str("func", "ethContractAdapter.transact").
			Str("method", method).
			Str("from", opts.From.Hex()).
			Msg("transaction not sent")
		return nil, mapRPCError(method, err)
	}

	a.logger.Info().
		Str("func", "ethContractAdapter.transact").
		Str("method", method).
		Str("from", opts.From.Hex()).
		Str("tx", tx.Hash().Hex()).
		Msg("transaction sent")

	return tx, nil
}

func (a *ethContractAdapter) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := a.waitMined(ctx, a.backend, tx)
	if err != nil {
		return nil, mapRPCError("wait mined", err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, fmt.Errorf("%w: tx %s in block %v", ErrTransactionReverted, tx.Hash().Hex(), receipt.BlockNumber)
	}
	return receipt, nil
}

func (a *ethContractAdapter) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := a.backend.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, mapRPCError("transaction receipt", err)
	}
	return receipt, nil
}

func (a *ethContractAdapter) Close() {
	a.backend.Close()
}
