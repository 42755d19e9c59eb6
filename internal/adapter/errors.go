package adapter

import "errors"

// Contract errors.
var (
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrContractNotDeployed = errors.New("no contract code at the configured address")
	ErrReceiptNotFound     = errors.New("transaction receipt not found")
	ErrRPCTimeout          = errors.New("ethereum node did not answer in time")
	ErrUnexpectedOutput    = errors.New("unexpected contract output")
)

// Gateway errors.
var (
	ErrGatewayUnavailable = errors.New("storage gateway unavailable")
	ErrCIDNotFound        = errors.New("no content identifier in gateway response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("gateway unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
