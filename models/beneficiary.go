// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Beneficiary is a token recipient with an integer share, submitted once to
// the contract via addTokenBeneficiary. The contract is the only source of
// truth after submission.
type Beneficiary struct {
	Recipient common.Address
	Share     *big.Int
}

// BeneficiaryInput is a beneficiary exactly as the user typed it.
type BeneficiaryInput struct {
	Recipient string
	Share     string
}

// IdentityApproval is a verifier's approval of a single beneficiary address.
type IdentityApproval struct {
	Target common.Address
}

// IdentityInput is an approval target exactly as the user typed it.
type IdentityInput struct {
	Target string
}
