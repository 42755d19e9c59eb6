package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/validators"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type willService struct {
	wallet    WalletService
	contract  adapter.ContractAdapter
	submitter *txSubmitter
	validator validators.Validator
	logger    *logger.Logger
}

func newWillService(wallet WalletService, contract adapter.ContractAdapter, submitter *txSubmitter, validator validators.Validator, log *logger.Logger) WillService {
	return &willService{
		wallet:    wallet,
		contract:  contract,
		submitter: submitter,
		validator: validator,
		logger:    log,
	}
}

func (s *willService) Store(ctx context.Context, cid string) (models.TxRecord, error) {
	cid = strings.TrimSpace(cid)
	if err := s.validator.Validate(ctx, models.WillReference{CID: cid}); err != nil {
		return models.TxRecord{}, err
	}

	return s.submitter.submit(ctx, models.ActionSetEncryptedWill, func(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.SetEncryptedWill(ctx, opts, cid)
	})
}

// Fetch reads as the session account. Without a session the call is made
// from the zero address; the contract decides what that caller sees.
func (s *willService) Fetch(ctx context.Context) (models.WillReference, error) {
	var from common.Address
	if session, ok := s.wallet.Session(); ok {
		from = session.Account
	}

	cid, err := s.contract.GetEncryptedWill(ctx, from)
	if err != nil {
		s.logger.Err(err).Str("func", "willService.Fetch").Str("from", from.Hex()).Msg("read failed")
		return models.WillReference{}, mapAdapterError(err)
	}

	return models.WillReference{CID: cid}, nil
}
