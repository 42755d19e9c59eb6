package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/store"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// idGenerator issues journal record ids.
type idGenerator interface {
	NewID() string
}

// sendFunc broadcasts one contract call signed with opts.
type sendFunc func(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error)

// txSubmitter runs the sign, broadcast, wait, journal sequence shared by
// every state-changing action.
type txSubmitter struct {
	wallet   WalletService
	contract adapter.ContractAdapter
	journal  store.TxJournalRepository
	ids      idGenerator
	now      func() time.Time
	logger   *logger.Logger
}

func newTxSubmitter(wallet WalletService, contract adapter.ContractAdapter, journal store.TxJournalRepository, ids idGenerator, log *logger.Logger) *txSubmitter {
	return &txSubmitter{
		wallet:   wallet,
		contract: contract,
		journal:  journal,
		ids:      ids,
		now:      time.Now,
		logger:   log,
	}
}

// submit signs and broadcasts through send, journals the transaction as
// pending and waits for its receipt. A mined transaction is settled as
// confirmed or reverted. When the wait ends without a receipt the record
// stays pending for the receipt job and ErrConfirmationPending is returned.
func (s *txSubmitter) submit(ctx context.Context, action models.TxAction, send sendFunc) (models.TxRecord, error) {
	opts, err := s.wallet.ExecutionContext(ctx)
	if err != nil {
		return models.TxRecord{}, err
	}

	tx, err := send(ctx, opts)
	if err != nil {
		s.logger.Err(err).Str("func", "txSubmitter.submit").Str("action", string(action)).Msg("transaction was not sent")
		return models.TxRecord{}, mapAdapterError(err)
	}

	now := s.now()
	record := models.TxRecord{
		ID:        s.ids.NewID(),
		Action:    action,
		TxHash:    tx.Hash().Hex(),
		From:      opts.From.Hex(),
		Status:    models.TxPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	journaled := true
	if err = s.journal.Save(ctx, record); err != nil {
		journaled = false
		s.logger.Err(err).Str("func", "txSubmitter.submit").Str("tx", record.TxHash).Msg("journal save failed")
	}

	s.logger.Info().Str("func", "txSubmitter.submit").Str("action", string(action)).Str("tx", record.TxHash).Msg("transaction sent")

	receipt, waitErr := s.contract.WaitMined(ctx, tx)
	switch {
	case waitErr == nil:
		record.Status = models.TxConfirmed
	case errors.Is(waitErr, adapter.ErrTransactionReverted):
		record.Status = models.TxReverted
		record.Error = waitErr.Error()
	default:
		s.logger.Warn().Err(waitErr).Str("func", "txSubmitter.submit").Str("tx", record.TxHash).Msg("receipt not obtained, left pending")
		return record, fmt.Errorf("%w: %s: %w", ErrConfirmationPending, record.TxHash, waitErr)
	}

	if receipt != nil && receipt.BlockNumber != nil {
		record.BlockNumber = receipt.BlockNumber.Uint64()
	}
	record.UpdatedAt = s.now()

	if journaled {
		if err = s.journal.UpdateStatus(ctx, record); err != nil {
			s.logger.Err(err).Str("func", "txSubmitter.submit").Str("tx", record.TxHash).Msg("journal update failed")
		}
	}

	if record.Status == models.TxReverted {
		return record, mapAdapterError(waitErr)
	}

	return record, nil
}
