package tui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/service"
	"github.com/MKhiriev/go-will-keeper/internal/validators"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/common"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeWill struct {
	fetch    func(ctx context.Context) (models.WillReference, error)
	stored   atomic.Int64
	storeErr error
}

func (f *fakeWill) Store(_ context.Context, cid string) (models.TxRecord, error) {
	f.stored.Add(1)
	if f.storeErr != nil {
		return models.TxRecord{TxHash: "0xabc0000000000000000000000000000000000000000000000000000000000def"}, f.storeErr
	}
	return models.TxRecord{Action: models.ActionSetEncryptedWill, TxHash: "0xabc", Status: models.TxConfirmed, BlockNumber: 12}, nil
}

func (f *fakeWill) Fetch(ctx context.Context) (models.WillReference, error) {
	return f.fetch(ctx)
}

type fakeBeneficiary struct {
	calls atomic.Int64
}

func (f *fakeBeneficiary) Add(context.Context, string, string) (models.TxRecord, error) {
	f.calls.Add(1)
	return models.TxRecord{Status: models.TxConfirmed}, nil
}

type fakeIdentity struct {
	calls atomic.Int64
}

func (f *fakeIdentity) Approve(context.Context, string) (models.TxRecord, error) {
	f.calls.Add(1)
	return models.TxRecord{Status: models.TxConfirmed}, nil
}

type fakeEstate struct {
	deceased   atomic.Int64
	distribute atomic.Int64
}

func (f *fakeEstate) ConfirmDeceased(context.Context) (models.TxRecord, error) {
	f.deceased.Add(1)
	return models.TxRecord{Action: models.ActionConfirmDeceased, Status: models.TxConfirmed}, nil
}

func (f *fakeEstate) Distribute(context.Context) (models.TxRecord, error) {
	f.distribute.Add(1)
	return models.TxRecord{Action: models.ActionDistributeToken, Status: models.TxConfirmed}, nil
}

type fakeUpload struct {
	result  models.UploadResult
	err     error
	gotPath string
}

func (f *fakeUpload) Upload(_ context.Context, path string) (models.UploadResult, error) {
	f.gotPath = path
	return f.result, f.err
}

type fakeJournal struct {
	records []models.TxRecord
}

func (f *fakeJournal) Recent(context.Context, int) ([]models.TxRecord, error) {
	return f.records, nil
}

type fakeServices struct {
	will        *fakeWill
	beneficiary *fakeBeneficiary
	identity    *fakeIdentity
	estate      *fakeEstate
	upload      *fakeUpload
	journal     *fakeJournal
}

func newFakeServices() (*service.ClientServices, *fakeServices) {
	f := &fakeServices{
		will:        &fakeWill{fetch: func(context.Context) (models.WillReference, error) { return models.WillReference{}, nil }},
		beneficiary: &fakeBeneficiary{},
		identity:    &fakeIdentity{},
		estate:      &fakeEstate{},
		upload:      &fakeUpload{},
		journal:     &fakeJournal{},
	}

	return &service.ClientServices{
		Wallet:      service.NewWalletService(wallet.NewUnavailableProvider(), nil, 1, logger.Nop()),
		Will:        f.will,
		Beneficiary: f.beneficiary,
		Identity:    f.identity,
		Estate:      f.estate,
		Upload:      f.upload,
		Journal:     f.journal,
		Validator:   validators.NewContractInputValidator(),
	}, f
}

func newTestModel(services *service.ClientServices) viewModel {
	return newViewModel(context.Background(), services, Options{
		RequestTimeout: time.Second,
		TxTimeout:      time.Second,
		BuildInfo:      models.NewBuildInfo("v1.2.3", "", "abc123"),
	})
}

// ── helpers ──────────────────────────────────────────────────────────────────

func ctrlKey(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func update(t *testing.T, m viewModel, msg tea.Msg) (viewModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	vm, ok := next.(viewModel)
	require.True(t, ok)
	return vm, cmd
}

// press sends a key and, when the model answers with a command, runs it and
// feeds the result back, like the Bubble Tea runtime would.
func press(t *testing.T, m viewModel, msg tea.KeyMsg) viewModel {
	t.Helper()

	m, cmd := update(t, m, msg)
	if cmd == nil {
		return m
	}
	return settle(t, m, cmd)
}

func settle(t *testing.T, m viewModel, cmd tea.Cmd) viewModel {
	t.Helper()

	result := cmd()
	switch result.(type) {
	case nil, tea.QuitMsg:
		return m
	}

	m, next := update(t, m, result)
	if next != nil {
		if _, ok := next().(journalLoadedMsg); ok {
			m, _ = update(t, m, next())
		}
	}
	return m
}

func focusInput(m viewModel, idx int) viewModel {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[idx].Focus()
	return m
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestViewModel_Upload_PrefillsHashInput(t *testing.T) {
	services, fakes := newFakeServices()
	fakes.upload.result = models.UploadResult{CID: "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", FileName: "will.bin", Source: models.CIDFromLegacyPattern}

	m := newTestModel(services)
	m.inputs[inputFile].SetValue("/tmp/will.bin")

	m = press(t, m, enterKey)

	assert.Equal(t, "/tmp/will.bin", fakes.upload.gotPath)
	assert.Equal(t, "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", m.inputs[inputHash].Value())
	assert.Equal(t, models.NoticeSuccess, m.notice.Level)
	assert.Contains(t, m.notice.Text, "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
	assert.Zero(t, m.inFlight)
}

func TestViewModel_Upload_SealedNotice(t *testing.T) {
	services, fakes := newFakeServices()
	fakes.upload.result = models.UploadResult{CID: "QmSealed", FileName: "will.bin.sealed", Sealed: true}

	m := newTestModel(services)
	m.inputs[inputFile].SetValue("/tmp/will.bin")

	m = press(t, m, enterKey)

	assert.Equal(t, "QmSealed", m.inputs[inputHash].Value())
	assert.Contains(t, m.notice.Text, "(sealed)")
}

func TestViewModel_Upload_NoCIDLeavesHashInput(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "no content identifier", err: fmt.Errorf("%w: %w", service.ErrCIDNotFound, adapter.ErrCIDNotFound)},
		{name: "gateway down", err: fmt.Errorf("%w: dial tcp 127.0.0.1:5001: connection refused", service.ErrGatewayUnavailable)},
		{name: "sealing failed", err: fmt.Errorf("%w: /tmp/will.bin: too large", service.ErrSealFailed)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, fakes := newFakeServices()
			fakes.upload.err = tt.err

			m := newTestModel(services)
			m.inputs[inputFile].SetValue("/tmp/will.bin")
			m.inputs[inputHash].SetValue("QmPrevious")

			m = press(t, m, enterKey)

			assert.Equal(t, "QmPrevious", m.inputs[inputHash].Value())
			assert.Equal(t, models.NoticeError, m.notice.Level)
			assert.Contains(t, m.notice.Text, "Upload failed")
		})
	}
}

func TestViewModel_Upload_NoFileSelected(t *testing.T) {
	services, fakes := newFakeServices()
	m := newTestModel(services)

	m = press(t, m, enterKey)

	assert.Empty(t, fakes.upload.gotPath)
	assert.Equal(t, models.NoticeError, m.notice.Level)
	assert.Zero(t, m.inFlight)
}

// ── Beneficiary / identity ───────────────────────────────────────────────────

func TestViewModel_AddBeneficiary_InvalidShareMakesNoCall(t *testing.T) {
	for _, share := range []string{"-5", "1.5", "abc", ""} {
		t.Run(share, func(t *testing.T) {
			services, fakes := newFakeServices()
			m := focusInput(newTestModel(services), inputShare)
			m.inputs[inputRecipient].SetValue("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
			m.inputs[inputShare].SetValue(share)

			m = press(t, m, enterKey)

			assert.Zero(t, fakes.beneficiary.calls.Load())
			assert.Equal(t, models.NoticeError, m.notice.Level)
			assert.Equal(t, humanizeError(service.ErrInvalidShare), m.notice.Text)
		})
	}
}

func TestViewModel_AddBeneficiary_Valid(t *testing.T) {
	services, fakes := newFakeServices()
	m := focusInput(newTestModel(services), inputRecipient)
	m.inputs[inputRecipient].SetValue("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	m.inputs[inputShare].SetValue("50.0")

	m = press(t, m, enterKey)

	assert.Equal(t, int64(1), fakes.beneficiary.calls.Load())
	assert.Equal(t, models.NoticeSuccess, m.notice.Level)
}

func TestViewModel_Approve_InvalidAddress(t *testing.T) {
	services, fakes := newFakeServices()
	m := focusInput(newTestModel(services), inputVerify)
	m.inputs[inputVerify].SetValue("0x123")

	m = press(t, m, enterKey)

	assert.Zero(t, fakes.identity.calls.Load())
	assert.Equal(t, humanizeError(service.ErrInvalidAddress), m.notice.Text)
}

// ── Will reference ───────────────────────────────────────────────────────────

func TestViewModel_Fetch_ShowsReturnedValue(t *testing.T) {
	for _, want := range []string{"QmStoredWill", ""} {
		t.Run(fmt.Sprintf("%q", want), func(t *testing.T) {
			services, fakes := newFakeServices()
			fakes.will.fetch = func(context.Context) (models.WillReference, error) {
				return models.WillReference{CID: want}, nil
			}

			m := newTestModel(services)
			m.storedHash = "QmStale"

			m = press(t, m, ctrlKey(tea.KeyCtrlG))

			assert.True(t, m.fetched)
			assert.Equal(t, want, m.storedHash)
			if want == "" {
				assert.Contains(t, m.View(), "(empty)")
			} else {
				assert.Contains(t, m.View(), want)
			}
		})
	}
}

func TestViewModel_Fetch_OutOfOrderLastSettledWins(t *testing.T) {
	services, fakes := newFakeServices()

	gates := []chan struct{}{make(chan struct{}), make(chan struct{})}
	answers := []string{"QmFirst", "QmSecond"}
	var call atomic.Int64
	fakes.will.fetch = func(context.Context) (models.WillReference, error) {
		i := call.Add(1) - 1
		<-gates[i]
		return models.WillReference{CID: answers[i]}, nil
	}

	m := newTestModel(services)

	m, first := update(t, m, ctrlKey(tea.KeyCtrlG))
	m, second := update(t, m, ctrlKey(tea.KeyCtrlG))
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, 2, m.inFlight)

	results := make(chan tea.Msg, 2)
	go func() { results <- first() }()
	require.Eventually(t, func() bool { return call.Load() == 1 }, time.Second, time.Millisecond)
	go func() { results <- second() }()
	require.Eventually(t, func() bool { return call.Load() == 2 }, time.Second, time.Millisecond)

	// the second fetch settles first
	close(gates[1])
	m, _ = update(t, m, <-results)
	assert.Equal(t, "QmSecond", m.storedHash)

	close(gates[0])
	m, _ = update(t, m, <-results)

	assert.Equal(t, "QmFirst", m.storedHash, "the response delivered last is displayed")
	assert.Zero(t, m.inFlight)
}

func TestViewModel_StoreWill(t *testing.T) {
	services, fakes := newFakeServices()
	fakes.journal.records = []models.TxRecord{{Action: models.ActionSetEncryptedWill, Status: models.TxConfirmed, TxHash: "0xabc", BlockNumber: 12}}

	m := focusInput(newTestModel(services), inputHash)
	m.inputs[inputHash].SetValue("QmNewWill")

	m = press(t, m, enterKey)

	assert.Equal(t, int64(1), fakes.will.stored.Load())
	assert.Equal(t, "QmNewWill", m.storedHash)
	assert.Equal(t, models.NoticeSuccess, m.notice.Level)
	assert.Contains(t, m.notice.Text, "block 12")
	assert.Len(t, m.journal, 1)
	assert.Contains(t, m.View(), string(models.ActionSetEncryptedWill))
}

func TestViewModel_StoreWill_Empty(t *testing.T) {
	services, fakes := newFakeServices()
	m := focusInput(newTestModel(services), inputHash)

	m = press(t, m, enterKey)

	assert.Zero(t, fakes.will.stored.Load())
	assert.Equal(t, humanizeError(service.ErrEmptyWillReference), m.notice.Text)
}

func TestViewModel_StoreWill_Pending(t *testing.T) {
	services, fakes := newFakeServices()
	fakes.will.storeErr = fmt.Errorf("%w: timeout", service.ErrConfirmationPending)

	m := focusInput(newTestModel(services), inputHash)
	m.inputs[inputHash].SetValue("QmNewWill")

	m = press(t, m, enterKey)

	assert.Equal(t, models.NoticeInfo, m.notice.Level)
	assert.Contains(t, m.notice.Text, "waiting for confirmation")
	assert.False(t, m.fetched, "a pending write does not change the mirrored value")
}

func TestViewModel_StoreWill_Reverted(t *testing.T) {
	services, fakes := newFakeServices()
	fakes.will.storeErr = fmt.Errorf("%w: execution reverted: Not the owner", service.ErrTransactionReverted)

	m := focusInput(newTestModel(services), inputHash)
	m.inputs[inputHash].SetValue("QmNewWill")

	m = press(t, m, enterKey)

	assert.Equal(t, models.NoticeError, m.notice.Level)
	assert.Equal(t, "Transaction reverted: Not the owner", m.notice.Text)
}

// ── Wallet ───────────────────────────────────────────────────────────────────

func TestViewModel_Connect_UnavailableProvider(t *testing.T) {
	services, _ := newFakeServices()
	m := newTestModel(services)

	assert.NotPanics(t, func() {
		m = press(t, m, ctrlKey(tea.KeyCtrlO))
	})

	assert.Empty(t, m.account)
	assert.Equal(t, models.NoticeError, m.notice.Level)
	assert.Contains(t, m.notice.Text, "No wallet provider")
	assert.Contains(t, m.View(), "not connected")
}

func TestViewModel_Connect_Success(t *testing.T) {
	services, _ := newFakeServices()
	m := newTestModel(services)

	m, _ = update(t, m, ctrlKey(tea.KeyCtrlO))
	m, _ = update(t, m, walletConnectedMsg{session: models.WalletSession{
		Account:  common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		Provider: models.ProviderMnemonic,
	}})

	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", m.account)
	assert.Contains(t, m.View(), "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 (mnemonic)")
}

// ── Estate ───────────────────────────────────────────────────────────────────

func TestViewModel_ConfirmDeceased_RequiresConfirmation(t *testing.T) {
	services, fakes := newFakeServices()
	m := newTestModel(services)

	m = press(t, m, ctrlKey(tea.KeyCtrlX))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "confirmDeceased()")

	m = press(t, m, runeKey("n"))
	assert.Nil(t, m.confirm)
	assert.Zero(t, fakes.estate.deceased.Load())

	m = press(t, m, ctrlKey(tea.KeyCtrlX))
	m = press(t, m, runeKey("y"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, int64(1), fakes.estate.deceased.Load())
	assert.Zero(t, fakes.estate.distribute.Load())
}

func TestViewModel_Distribute_RequiresConfirmation(t *testing.T) {
	services, fakes := newFakeServices()
	m := newTestModel(services)

	m = press(t, m, ctrlKey(tea.KeyCtrlT))
	m = press(t, m, ctrlKey(tea.KeyEsc))
	assert.Zero(t, fakes.estate.distribute.Load())

	m = press(t, m, ctrlKey(tea.KeyCtrlT))
	m = press(t, m, runeKey("y"))
	assert.Equal(t, int64(1), fakes.estate.distribute.Load())
	assert.Equal(t, models.NoticeSuccess, m.notice.Level)
}

// ── Misc ─────────────────────────────────────────────────────────────────────

func TestViewModel_Copy(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = prev })

	services, _ := newFakeServices()
	m := newTestModel(services)

	m = press(t, m, ctrlKey(tea.KeyCtrlY))
	assert.Equal(t, "Nothing to copy", m.notice.Text)

	m.inputs[inputHash].SetValue("QmTyped")
	m = press(t, m, ctrlKey(tea.KeyCtrlY))
	assert.Equal(t, "QmTyped", copied)

	m.storedHash = "QmStored"
	m = press(t, m, ctrlKey(tea.KeyCtrlY))
	assert.Equal(t, "QmStored", copied)

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, ctrlKey(tea.KeyCtrlY))
	assert.Equal(t, models.NoticeError, m.notice.Level)
}

func TestViewModel_FocusCycles(t *testing.T) {
	services, _ := newFakeServices()
	m := newTestModel(services)

	for i := 1; i <= inputCount; i++ {
		m, _ = update(t, m, ctrlKey(tea.KeyTab))
		assert.Equal(t, i%inputCount, m.focus)
	}

	m, _ = update(t, m, ctrlKey(tea.KeyShiftTab))
	assert.Equal(t, inputCount-1, m.focus)
}

func TestViewModel_BuildInfo(t *testing.T) {
	services, _ := newFakeServices()
	m := newTestModel(services)

	m = press(t, m, ctrlKey(tea.KeyF1))
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "abc123")

	m = press(t, m, ctrlKey(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

func TestViewModel_Quit(t *testing.T) {
	services, _ := newFakeServices()
	m := newTestModel(services)

	_, cmd := update(t, m, ctrlKey(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewModel_Init_LoadsJournal(t *testing.T) {
	services, fakes := newFakeServices()
	fakes.journal.records = []models.TxRecord{{Action: models.ActionApproveIdentity, Status: models.TxPending, TxHash: "0x1"}}

	m := newTestModel(services)
	m, _ = update(t, m, m.cmdLoadJournal()())

	assert.Len(t, m.journal, 1)
	assert.Contains(t, m.View(), "pending")
}
