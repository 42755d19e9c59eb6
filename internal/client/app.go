package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/workers"
)

type App struct {
	ui       UserInterface
	workers  *workers.Workers
	cleanups []Cleanup
	logger   *logger.Logger
}

func NewApp(ui UserInterface, ws *workers.Workers, log *logger.Logger, cleanups ...Cleanup) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app: user interface is nil")
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &App{
		ui:       ui,
		workers:  ws,
		cleanups: cleanups,
		logger:   log,
	}, nil
}

// Run starts the background workers, shows the user interface and tears
// everything down when it returns. SIGINT and SIGTERM cancel the run.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.workers.Start(ctx)
	a.logger.Info().Msg("client started")

	runErr := a.ui.Run(ctx)
	if runErr != nil && ctx.Err() != nil && errors.Is(runErr, context.Canceled) {
		a.logger.Info().Msg("client interrupted")
		runErr = nil
	}

	a.workers.Stop()
	closeErr := a.cleanup()

	a.logger.Info().Msg("client stopped")

	if runErr != nil {
		return fmt.Errorf("client run: %w", runErr)
	}
	return closeErr
}

// cleanup runs every cleanup in reverse order and joins their errors.
func (a *App) cleanup() error {
	var errs []error
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		if err := a.cleanups[i](); err != nil {
			a.logger.Err(err).Msg("cleanup failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
