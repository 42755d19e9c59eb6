// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "no provider", in: wallet.ErrNoProvider, want: ErrNoProvider},
		{name: "signer rejected", in: fmt.Errorf("%w: could not decrypt key", wallet.ErrSignerRejected), want: ErrSignerRejected},
		{name: "unknown account", in: wallet.ErrUnknownAccount, want: ErrSignerRejected},
		{name: "no accounts", in: wallet.ErrNoAccounts, want: ErrNoAccounts},
		{name: "reverted", in: fmt.Errorf("setEncryptedWill: %w", adapter.ErrTransactionReverted), want: ErrTransactionReverted},
		{name: "not deployed", in: adapter.ErrContractNotDeployed, want: ErrContractNotDeployed},
		{name: "rpc timeout", in: adapter.ErrRPCTimeout, want: ErrNodeUnavailable},
		{name: "cid not found", in: adapter.ErrCIDNotFound, want: ErrCIDNotFound},
		{name: "gateway status", in: fmt.Errorf("%w: %w: body", adapter.ErrGatewayUnavailable, adapter.ErrUnauthorized), want: ErrGatewayUnavailable},
		{name: "deadline passes through", in: context.DeadlineExceeded, want: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in, "the cause stays in the chain")
		})
	}
}

func TestMapAdapterError_NilAndUnknown(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	unknown := errors.New("something else")
	assert.Same(t, unknown, mapAdapterError(unknown))
}

func TestRevertReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "no marker", err: errors.New("connection refused"), want: ""},
		{name: "bare revert", err: errors.New("execution reverted"), want: ""},
		{name: "with reason", err: errors.New("transaction reverted: execution reverted: Not the owner"), want: "Not the owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RevertReason(tt.err))
		})
	}
}
