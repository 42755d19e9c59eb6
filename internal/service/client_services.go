package service

import (
	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/crypto"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/store"
	"github.com/MKhiriev/go-will-keeper/internal/utils"
	"github.com/MKhiriev/go-will-keeper/internal/validators"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
)

type ClientServices struct {
	Wallet      WalletService
	Will        WillService
	Beneficiary BeneficiaryService
	Identity    IdentityService
	Estate      EstateService
	Upload      UploadService
	Journal     JournalService
	ReceiptJob  ReceiptSyncJob

	// Validator is shared with the view so input is rejected before any
	// command starts.
	Validator validators.Validator
}

func NewClientServices(
	cfg *config.ClientConfig,
	provider wallet.Provider,
	contract adapter.ContractAdapter,
	storage adapter.StorageAdapter,
	storages *store.ClientStorages,
	log *logger.Logger,
) *ClientServices {
	walletSvc := NewWalletService(provider, contract, cfg.Adapter.ChainID, log)
	submitter := newTxSubmitter(walletSvc, contract, storages.TxJournal, utils.NewIDGenerator(), log)
	receiptSvc := NewReceiptSyncService(contract, storages.TxJournal, log)
	validator := validators.NewContractInputValidator()

	return &ClientServices{
		Wallet:      walletSvc,
		Will:        newWillService(walletSvc, contract, submitter, validator, log),
		Beneficiary: newBeneficiaryService(contract, submitter, validator),
		Identity:    newIdentityService(contract, submitter, validator),
		Estate:      newEstateService(contract, submitter),
		Upload:      NewUploadService(storage, crypto.NewSealer(), cfg.App.SealPassphrase, log),
		Journal:     NewJournalService(storages.TxJournal),
		ReceiptJob:  NewReceiptSyncJob(receiptSvc, cfg.Workers.ReceiptInterval, log),
		Validator:   validator,
	}
}
