// Package tui implements the will-keeper terminal page: one Bubble Tea model
// with inputs for every contract action, hotkeys for the rest, and a notice
// line that reports how the last settled action went.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/service"
	"github.com/MKhiriev/go-will-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options tune the page.
type Options struct {
	// RequestTimeout bounds reads, uploads and wallet connects.
	RequestTimeout time.Duration
	// TxTimeout bounds signing, broadcasting and waiting for a receipt.
	TxTimeout time.Duration
	// JournalLimit is how many recent transactions are listed.
	JournalLimit int
	// BuildInfo is shown in the about window.
	BuildInfo models.BuildInfo
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, log *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts, logger: log}
}

// Run shows the page until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newViewModel(ctx, t.services, t.opts)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err = programExitError(ctx, err); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	log := t.logger
	if log == nil {
		log = logger.FromContext(ctx)
	}
	if result, ok := finalModel.(viewModel); ok && result.account != "" {
		log.Info().Str("account", result.account).Msg("session closed")
	}

	return nil
}

// programExitError drops the errors Bubble Tea reports when the program was
// stopped by a signal or by cancelling ctx. Panics are always kept.
func programExitError(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	if errors.Is(err, tea.ErrProgramPanic) {
		return err
	}
	if ctx.Err() != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		return nil
	}
	return err
}
