// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TxAction names the contract procedure a journaled transaction invoked.
type TxAction string

const (
	ActionSetEncryptedWill    TxAction = "setEncryptedWill"
	ActionAddTokenBeneficiary TxAction = "addTokenBeneficiary"
	ActionApproveIdentity     TxAction = "approveIdentity"
	ActionConfirmDeceased     TxAction = "confirmDeceased"
	ActionDistributeToken     TxAction = "distributeToken"
)

// TxStatus is the lifecycle state of a journaled transaction.
type TxStatus string

const (
	// TxPending is a broadcast transaction without a receipt yet.
	TxPending TxStatus = "pending"
	// TxConfirmed is a mined transaction with a successful receipt.
	TxConfirmed TxStatus = "confirmed"
	// TxReverted is a mined transaction whose receipt status is failed.
	TxReverted TxStatus = "reverted"
	// TxFailed is a transaction whose confirmation could not be obtained
	// for reasons other than a revert.
	TxFailed TxStatus = "failed"
)

// TxRecord is one row of the local transaction journal. It records what
// this client submitted; it is not a cache of contract state.
type TxRecord struct {
	ID          string
	Action      TxAction
	TxHash      string
	From        string
	Status      TxStatus
	BlockNumber uint64
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Settled reports whether the record has reached a terminal status.
func (r TxRecord) Settled() bool {
	return r.Status != TxPending
}
