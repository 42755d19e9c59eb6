// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
)

const revertMarker = "execution reverted"

// mapAdapterError translates wallet and adapter errors into service errors.
// The original error stays in the chain so the cause can still be logged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, wallet.ErrNoProvider):
		target = ErrNoProvider
	case errors.Is(err, wallet.ErrSignerRejected), errors.Is(err, wallet.ErrUnknownAccount):
		target = ErrSignerRejected
	case errors.Is(err, wallet.ErrNoAccounts):
		target = ErrNoAccounts

	case errors.Is(err, adapter.ErrTransactionReverted):
		target = ErrTransactionReverted
	case errors.Is(err, adapter.ErrContractNotDeployed):
		target = ErrContractNotDeployed
	case errors.Is(err, adapter.ErrRPCTimeout):
		target = ErrNodeUnavailable

	case errors.Is(err, adapter.ErrCIDNotFound):
		target = ErrCIDNotFound
	case errors.Is(err, adapter.ErrGatewayUnavailable):
		target = ErrGatewayUnavailable

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return err
	}

	if target == nil {
		return err
	}

	return fmt.Errorf("%w: %w", target, err)
}

// RevertReason extracts the contract's revert message from err, e.g.
// "Not the owner" out of "...: execution reverted: Not the owner". It returns
// an empty string when err carries no reason.
func RevertReason(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	idx := strings.LastIndex(msg, revertMarker)
	if idx == -1 {
		return ""
	}

	reason := strings.TrimPrefix(msg[idx+len(revertMarker):], ":")
	return strings.TrimSpace(reason)
}
