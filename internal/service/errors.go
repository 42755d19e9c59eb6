package service

import (
	"errors"

	"github.com/MKhiriev/go-will-keeper/internal/validators"
)

// Input errors.
var (
	ErrNotConnected       = errors.New("wallet is not connected")
	ErrInvalidShare       = validators.ErrInvalidShare
	ErrInvalidAddress     = validators.ErrInvalidAddress
	ErrEmptyWillReference = validators.ErrEmptyWillReference
	ErrNoFileSelected     = errors.New("no file selected")
)

// Wallet errors.
var (
	ErrNoProvider     = errors.New("no wallet provider available")
	ErrSignerRejected = errors.New("request rejected by the wallet")
	ErrNoAccounts     = errors.New("wallet returned no accounts")
)

// Contract errors.
var (
	ErrTransactionReverted = errors.New("transaction reverted by the contract")
	ErrContractNotDeployed = errors.New("contract is not deployed at the configured address")
	ErrNodeUnavailable     = errors.New("ethereum node unavailable")
	ErrConfirmationPending = errors.New("transaction sent, confirmation still pending")
)

// Storage errors.
var (
	ErrGatewayUnavailable = errors.New("storage gateway unavailable")
	ErrCIDNotFound        = errors.New("gateway response carries no content identifier")
	ErrSealFailed         = errors.New("could not seal the file")
)
