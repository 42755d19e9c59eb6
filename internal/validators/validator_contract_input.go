package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-will-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldRecipient targets the beneficiary address.
	FieldRecipient = "recipient"

	// FieldShare targets the beneficiary share.
	FieldShare = "share"

	// FieldTarget targets the address whose identity is approved.
	FieldTarget = "target"

	// FieldCID targets the will reference.
	FieldCID = "cid"
)

// ContractInputValidator implements [Validator] for everything the user can
// send to the inheritance contract: [models.BeneficiaryInput],
// [models.Beneficiary], [models.IdentityInput] and [models.WillReference].
// Value and pointer forms are both accepted.
type ContractInputValidator struct {
}

// NewContractInputValidator constructs a new ContractInputValidator and
// returns it as the Validator interface.
func NewContractInputValidator() Validator {
	return &ContractInputValidator{}
}

func (v *ContractInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BeneficiaryInput:
		return v.validateBeneficiaryInput(ctx, value, fields...)
	case *models.BeneficiaryInput:
		return v.validateBeneficiaryInput(ctx, *value, fields...)

	case models.Beneficiary:
		return v.validateBeneficiary(ctx, value, fields...)
	case *models.Beneficiary:
		return v.validateBeneficiary(ctx, *value, fields...)

	case models.IdentityInput:
		return v.validateIdentityInput(ctx, value, fields...)
	case *models.IdentityInput:
		return v.validateIdentityInput(ctx, *value, fields...)

	case models.WillReference:
		return v.validateWillReference(ctx, value, fields...)
	case *models.WillReference:
		return v.validateWillReference(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContractInputValidator) validateBeneficiaryInput(_ context.Context, input models.BeneficiaryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipient, FieldShare}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipient:
			if _, err := ParseAddress(input.Recipient); err != nil {
				return err
			}
		case FieldShare:
			if _, err := ParseShare(input.Share); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBeneficiary checks an already converted beneficiary. Any 20-byte
// recipient is well formed, so only the share has something to check.
func (v *ContractInputValidator) validateBeneficiary(_ context.Context, beneficiary models.Beneficiary, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShare}
	}

	for _, f := range fields {
		switch f {
		case FieldShare:
			share := beneficiary.Share
			if share == nil || share.Sign() < 0 || share.BitLen() > uint256Bits {
				return fmt.Errorf("%w: %v", ErrInvalidShare, share)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContractInputValidator) validateIdentityInput(_ context.Context, input models.IdentityInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTarget}
	}

	for _, f := range fields {
		switch f {
		case FieldTarget:
			if _, err := ParseAddress(input.Target); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContractInputValidator) validateWillReference(_ context.Context, ref models.WillReference, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCID}
	}

	for _, f := range fields {
		switch f {
		case FieldCID:
			if strings.TrimSpace(ref.CID) == "" {
				return ErrEmptyWillReference
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
