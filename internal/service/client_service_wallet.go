// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

type walletService struct {
	provider wallet.Provider
	contract adapter.ContractAdapter
	chainID  *big.Int
	now      func() time.Time

	mu      sync.RWMutex
	session *models.WalletSession

	logger *logger.Logger
}

// NewWalletService creates a WalletService over provider. A positive
// chainID pins the signing chain; otherwise the id is asked from the node
// through contract on every ExecutionContext call.
func NewWalletService(provider wallet.Provider, contract adapter.ContractAdapter, chainID int64, log *logger.Logger) WalletService {
	s := &walletService{
		provider: provider,
		contract: contract,
		now:      time.Now,
		logger:   log,
	}
	if chainID > 0 {
		s.chainID = big.NewInt(chainID)
	}

	return s
}

func (s *walletService) Connect(ctx context.Context) (models.WalletSession, error) {
	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "walletService.Connect").Str("provider", string(s.provider.Kind())).Msg("request accounts failed")
		return models.WalletSession{}, mapAdapterError(err)
	}
	if len(accounts) == 0 {
		return models.WalletSession{}, ErrNoAccounts
	}

	session := models.WalletSession{
		Account:     accounts[0],
		Provider:    s.provider.Kind(),
		ConnectedAt: s.now(),
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	s.logger.Info().Str("func", "walletService.Connect").Str("account", session.Address()).Str("provider", string(session.Provider)).Msg("wallet connected")

	return session, nil
}

func (s *walletService) Session() (models.WalletSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.WalletSession{}, false
	}

	return *s.session, true
}

func (s *walletService) ExecutionContext(ctx context.Context) (*bind.TransactOpts, error) {
	session, ok := s.Session()
	if !ok {
		return nil, ErrNotConnected
	}

	chainID := s.chainID
	if chainID == nil {
		id, err := s.contract.ChainID(ctx)
		if err != nil {
			s.logger.Err(err).Str("func", "walletService.ExecutionContext").Msg("chain id lookup failed")
			return nil, fmt.Errorf("%w: %w", ErrNodeUnavailable, err)
		}
		chainID = id
	}

	opts, err := s.provider.Signer(ctx, session.Account, chainID)
	if err != nil {
		s.logger.Err(err).Str("func", "walletService.ExecutionContext").Str("account", session.Address()).Msg("signer unavailable")
		return nil, mapAdapterError(err)
	}

	return opts, nil
}
