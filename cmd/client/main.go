package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/client"
	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/service"
	"github.com/MKhiriev/go-will-keeper/internal/store"
	"github.com/MKhiriev/go-will-keeper/internal/tui"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
	"github.com/MKhiriev/go-will-keeper/internal/workers"
	"github.com/MKhiriev/go-will-keeper/models"
)

const role = "will-keeper-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	bootLog := logger.New(os.Stderr, role)
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)

	if strings.TrimSpace(cfg.Wallet.KeystoreDir) != "" && cfg.Wallet.Passphrase == "" {
		cfg.Wallet.Passphrase, err = wallet.ReadPassphrase("Keystore passphrase: ", os.Stderr)
		if err != nil {
			bootLog.Fatal().Err(err).Msg("error reading keystore passphrase")
		}
	}

	provider, err := wallet.NewProvider(cfg.Wallet, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create wallet provider")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout)
	defer cancel()

	contract, err := adapter.NewEthContractAdapter(ctx, cfg.Adapter, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create contract adapter")
	}

	storage, err := adapter.NewIPFSStorageAdapter(cfg.Adapter, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create storage adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create journal storage")
	}

	services := service.NewClientServices(cfg, provider, contract, storage, storages, log)

	ui := tui.New(services, tui.Options{
		RequestTimeout: cfg.Adapter.RequestTimeout,
		TxTimeout:      cfg.Adapter.TxTimeout,
		JournalLimit:   cfg.App.JournalLimit,
		BuildInfo:      buildInfo,
	}, log)

	app, err := client.NewApp(ui, workers.NewWorkers(services.ReceiptJob), log,
		storages.Close,
		func() error {
			contract.Close()
			return nil
		},
	)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		bootLog.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
