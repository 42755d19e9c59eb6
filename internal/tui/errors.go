// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/service"
)

// humanizeError turns a service error into the text of an error notice.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNoProvider):
		return "No wallet provider configured. Set a keystore directory or a mnemonic."
	case errors.Is(err, service.ErrNotConnected):
		return "Connect a wallet first (ctrl+o)."
	case errors.Is(err, service.ErrSignerRejected):
		return "The wallet rejected the request."
	case errors.Is(err, service.ErrNoAccounts):
		return "The wallet has no accounts."
	case errors.Is(err, service.ErrInvalidShare):
		return "Share must be a whole non-negative number."
	case errors.Is(err, service.ErrInvalidAddress):
		return "Enter a valid 0x address."
	case errors.Is(err, service.ErrEmptyWillReference):
		return "Enter a will hash first."
	case errors.Is(err, service.ErrNoFileSelected):
		return "Select a file to upload."
	case errors.Is(err, service.ErrTransactionReverted):
		if reason := service.RevertReason(err); reason != "" {
			return "Transaction reverted: " + reason
		}
		return "Transaction reverted by the contract."
	case errors.Is(err, service.ErrContractNotDeployed):
		return "No contract at the configured address."
	case errors.Is(err, service.ErrSealFailed):
		return "Upload failed: the file could not be sealed."
	case errors.Is(err, service.ErrCIDNotFound):
		return "Upload failed: the gateway response has no content identifier."
	case errors.Is(err, service.ErrGatewayUnavailable):
		return "Upload failed: " + humanizeUnavailableError(err, "storage gateway unavailable")
	case errors.Is(err, service.ErrNodeUnavailable):
		return humanizeUnavailableError(err, "Ethereum node unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return "Timed out, try again."
	}

	return humanizeUnavailableError(err, err.Error())
}

func humanizeUnavailableError(err error, fallback string) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network unavailable or remote host unreachable"
	}

	return fallback
}
