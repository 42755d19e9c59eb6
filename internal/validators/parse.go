package validators

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/common"
)

// sharePattern accepts whole decimal numbers with an optional all-zero
// fraction ("5", "5.", "5.00").
var sharePattern = regexp.MustCompile(`^\d+(\.0*)?$`)

const uint256Bits = 256

// ParseShare converts a beneficiary share typed by the user into the uint256
// amount sent to the contract. Negative, fractional, oversized and
// non-numeric values return ErrInvalidShare.
func ParseShare(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	if !sharePattern.MatchString(text) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShare, text)
	}

	whole, _, _ := strings.Cut(text, ".")
	share, ok := new(big.Int).SetString(whole, 10)
	if !ok || share.BitLen() > uint256Bits {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShare, text)
	}

	return share, nil
}

// ParseAddress validates a hex account address (with or without the 0x
// prefix) and returns it. Anything else returns ErrInvalidAddress.
func ParseAddress(text string) (common.Address, error) {
	text = strings.TrimSpace(text)
	if !common.IsHexAddress(text) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, text)
	}

	return common.HexToAddress(text), nil
}

// ParseBeneficiary converts both beneficiary inputs; the recipient is
// checked first.
func ParseBeneficiary(input models.BeneficiaryInput) (models.Beneficiary, error) {
	recipient, err := ParseAddress(input.Recipient)
	if err != nil {
		return models.Beneficiary{}, err
	}

	share, err := ParseShare(input.Share)
	if err != nil {
		return models.Beneficiary{}, err
	}

	return models.Beneficiary{Recipient: recipient, Share: share}, nil
}
