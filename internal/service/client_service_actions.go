package service

import (
	"context"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/validators"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

type beneficiaryService struct {
	contract  adapter.ContractAdapter
	submitter *txSubmitter
	validator validators.Validator
}

func newBeneficiaryService(contract adapter.ContractAdapter, submitter *txSubmitter, validator validators.Validator) BeneficiaryService {
	return &beneficiaryService{contract: contract, submitter: submitter, validator: validator}
}

func (s *beneficiaryService) Add(ctx context.Context, recipient, share string) (models.TxRecord, error) {
	input := models.BeneficiaryInput{Recipient: recipient, Share: share}
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.TxRecord{}, err
	}

	beneficiary, err := validators.ParseBeneficiary(input)
	if err != nil {
		return models.TxRecord{}, err
	}

	return s.submitter.submit(ctx, models.ActionAddTokenBeneficiary, func(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.AddTokenBeneficiary(ctx, opts, beneficiary.Recipient, beneficiary.Share)
	})
}

type identityService struct {
	contract  adapter.ContractAdapter
	submitter *txSubmitter
	validator validators.Validator
}

func newIdentityService(contract adapter.ContractAdapter, submitter *txSubmitter, validator validators.Validator) IdentityService {
	return &identityService{contract: contract, submitter: submitter, validator: validator}
}

func (s *identityService) Approve(ctx context.Context, target string) (models.TxRecord, error) {
	if err := s.validator.Validate(ctx, models.IdentityInput{Target: target}); err != nil {
		return models.TxRecord{}, err
	}

	address, err := validators.ParseAddress(target)
	if err != nil {
		return models.TxRecord{}, err
	}
	approval := models.IdentityApproval{Target: address}

	return s.submitter.submit(ctx, models.ActionApproveIdentity, func(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.ApproveIdentity(ctx, opts, approval.Target)
	})
}

type estateService struct {
	contract  adapter.ContractAdapter
	submitter *txSubmitter
}

func newEstateService(contract adapter.ContractAdapter, submitter *txSubmitter) EstateService {
	return &estateService{contract: contract, submitter: submitter}
}

func (s *estateService) ConfirmDeceased(ctx context.Context) (models.TxRecord, error) {
	return s.submitter.submit(ctx, models.ActionConfirmDeceased, s.contract.ConfirmDeceased)
}

func (s *estateService) Distribute(ctx context.Context) (models.TxRecord, error) {
	return s.submitter.submit(ctx, models.ActionDistributeToken, s.contract.DistributeToken)
}
