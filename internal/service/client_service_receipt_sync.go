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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	// reconcileBatch caps how many pending records one pass looks at.
	reconcileBatch = 50
	// pendingExpiry is how long a transaction may stay unmined before it is
	// considered dropped by the network.
	pendingExpiry = 24 * time.Hour
)

type receiptSyncService struct {
	contract adapter.ContractAdapter
	journal  store.TxJournalRepository
	now      func() time.Time
	logger   *logger.Logger
}

// NewReceiptSyncService creates a ReceiptSyncService.
func NewReceiptSyncService(contract adapter.ContractAdapter, journal store.TxJournalRepository, log *logger.Logger) ReceiptSyncService {
	return &receiptSyncService{
		contract: contract,
		journal:  journal,
		now:      time.Now,
		logger:   log,
	}
}

func (s *receiptSyncService) Reconcile(ctx context.Context) (int, error) {
	pending, err := s.journal.ListByStatus(ctx, models.TxPending, reconcileBatch)
	if err != nil {
		return 0, fmt.Errorf("list pending transactions: %w", err)
	}

	settled := 0
	var lookupErrs []error
	for _, record := range pending {
		receipt, err := s.contract.TransactionReceipt(ctx, common.HexToHash(record.TxHash))
		switch {
		case errors.Is(err, adapter.ErrReceiptNotFound):
			if s.now().Sub(record.CreatedAt) < pendingExpiry {
				// still pending; touching it moves it behind the unchecked records
				record.UpdatedAt = s.now()
				if err = s.journal.UpdateStatus(ctx, record); err != nil {
					return settled, fmt.Errorf("touch %s: %w", record.TxHash, err)
				}
				continue
			}
			record.Status = models.TxFailed
			record.Error = fmt.Sprintf("not mined within %s", pendingExpiry)
		case err != nil:
			s.logger.Err(err).Str("func", "receiptSyncService.Reconcile").Str("tx", record.TxHash).Msg("receipt lookup failed")
			if ctx.Err() != nil {
				return settled, mapAdapterError(err)
			}
			lookupErrs = append(lookupErrs, mapAdapterError(err))
			continue
		default:
			settleFromReceipt(&record, receipt)
		}

		record.UpdatedAt = s.now()
		if err = s.journal.UpdateStatus(ctx, record); err != nil {
			return settled, fmt.Errorf("update %s: %w", record.TxHash, err)
		}
		settled++

		s.logger.Info().Str("func", "receiptSyncService.Reconcile").Str("tx", record.TxHash).Str("status", string(record.Status)).Msg("transaction settled")
	}

	return settled, errors.Join(lookupErrs...)
}

func settleFromReceipt(record *models.TxRecord, receipt *types.Receipt) {
	if receipt.BlockNumber != nil {
		record.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		record.Status = models.TxConfirmed
		return
	}

	record.Status = models.TxReverted
	record.Error = adapter.ErrTransactionReverted.Error()
}
