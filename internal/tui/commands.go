package tui

import (
	"context"

	"github.com/MKhiriev/go-will-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Every command derives its own deadline from the page context. Reads,
// uploads and connects use RequestTimeout; writes use TxTimeout because
// they include waiting for the receipt.

func (m viewModel) cmdConnect() tea.Cmd {
	ctx, timeout := m.ctx, m.opts.RequestTimeout
	svc := m.services.Wallet

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		session, err := svc.Connect(ctx)
		return walletConnectedMsg{session: session, err: err}
	}
}

func (m viewModel) cmdFetch() tea.Cmd {
	ctx, timeout := m.ctx, m.opts.RequestTimeout
	svc := m.services.Will

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		ref, err := svc.Fetch(ctx)
		return willFetchedMsg{ref: ref, err: err}
	}
}

func (m viewModel) cmdUpload(path string) tea.Cmd {
	ctx, timeout := m.ctx, m.opts.RequestTimeout
	svc := m.services.Upload

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		result, err := svc.Upload(ctx, path)
		return uploadDoneMsg{result: result, err: err}
	}
}

func (m viewModel) cmdStoreWill(cid string) tea.Cmd {
	svc := m.services.Will
	return m.cmdTx(models.ActionSetEncryptedWill, cid, func(ctx context.Context) (models.TxRecord, error) {
		return svc.Store(ctx, cid)
	})
}

func (m viewModel) cmdAddBeneficiary(recipient, share string) tea.Cmd {
	svc := m.services.Beneficiary
	return m.cmdTx(models.ActionAddTokenBeneficiary, "", func(ctx context.Context) (models.TxRecord, error) {
		return svc.Add(ctx, recipient, share)
	})
}

func (m viewModel) cmdApprove(target string) tea.Cmd {
	svc := m.services.Identity
	return m.cmdTx(models.ActionApproveIdentity, "", func(ctx context.Context) (models.TxRecord, error) {
		return svc.Approve(ctx, target)
	})
}

func (m viewModel) cmdEstate(action models.TxAction) tea.Cmd {
	svc := m.services.Estate
	run := svc.ConfirmDeceased
	if action == models.ActionDistributeToken {
		run = svc.Distribute
	}

	return m.cmdTx(action, "", run)
}

func (m viewModel) cmdTx(action models.TxAction, cid string, run func(ctx context.Context) (models.TxRecord, error)) tea.Cmd {
	ctx, timeout := m.ctx, m.opts.TxTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		record, err := run(ctx)
		return txDoneMsg{action: action, cid: cid, record: record, err: err}
	}
}

func (m viewModel) cmdLoadJournal() tea.Cmd {
	ctx, timeout, limit := m.ctx, m.opts.RequestTimeout, m.opts.JournalLimit
	svc := m.services.Journal
	if svc == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		records, err := svc.Recent(ctx, limit)
		return journalLoadedMsg{records: records, err: err}
	}
}
