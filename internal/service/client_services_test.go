package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/mock"
	"github.com/MKhiriev/go-will-keeper/internal/store"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_WiresEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "journal.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	cfg := &config.ClientConfig{}
	cfg.Adapter.ChainID = 31337

	services := NewClientServices(cfg, wallet.NewUnavailableProvider(),
		mock.NewMockContractAdapter(ctrl), mock.NewMockStorageAdapter(ctrl), storages, logger.Nop())

	require.NotNil(t, services)
	assert.NotNil(t, services.Wallet)
	assert.NotNil(t, services.Will)
	assert.NotNil(t, services.Beneficiary)
	assert.NotNil(t, services.Identity)
	assert.NotNil(t, services.Estate)
	assert.NotNil(t, services.Upload)
	assert.NotNil(t, services.Journal)
	assert.NotNil(t, services.ReceiptJob)

	// writes without a session fail before touching the contract
	_, err = services.Estate.Distribute(ctx)
	assert.ErrorIs(t, err, ErrNotConnected)

	records, err := services.Journal.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
