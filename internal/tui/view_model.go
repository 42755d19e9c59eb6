package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-will-keeper/internal/service"
	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputFile = iota
	inputHash
	inputRecipient
	inputShare
	inputVerify
	inputCount
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultTxTimeout      = 3 * time.Minute
	defaultJournalLimit   = 10
)

var clipboardWrite = clipboard.WriteAll

// viewModel is the whole contract page. Every action runs as its own
// tea.Cmd, so actions overlap freely; results are applied in the order
// their messages arrive and the last one delivered wins.
type viewModel struct {
	ctx      context.Context
	services *service.ClientServices
	opts     Options

	inputs []textinput.Model
	focus  int

	account    string
	provider   models.ProviderKind
	storedHash string
	fetched    bool
	notice     models.Notice
	inFlight   int
	journal    []models.TxRecord

	confirm       *confirmModel
	showBuildInfo bool
}

func newViewModel(ctx context.Context, services *service.ClientServices, opts Options) viewModel {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.TxTimeout <= 0 {
		opts.TxTimeout = defaultTxTimeout
	}
	if opts.JournalLimit <= 0 {
		opts.JournalLimit = defaultJournalLimit
	}

	return viewModel{
		ctx:      ctx,
		services: services,
		opts:     opts,
		inputs:   newInputs(),
	}
}

func newInputs() []textinput.Model {
	placeholders := [inputCount]string{
		inputFile:      "/path/to/encrypted-will.bin",
		inputHash:      "Qm… content identifier",
		inputRecipient: "0x beneficiary address",
		inputShare:     "whole number, e.g. 50",
		inputVerify:    "0x address to approve",
	}

	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = 48
		inputs[i] = in
	}
	inputs[inputFile].Focus()

	return inputs
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadJournal())
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case walletConnectedMsg:
		m.inFlight--
		if msg.err != nil {
			m.notice = errorNotice(msg.err)
			return m, nil
		}
		m.account = msg.session.Address()
		m.provider = msg.session.Provider
		m.notice = successNotice(fmt.Sprintf("Connected %s (%s)", m.account, m.provider))
		return m, nil

	case willFetchedMsg:
		m.inFlight--
		if msg.err != nil {
			m.notice = errorNotice(msg.err)
			return m, nil
		}
		m.storedHash = msg.ref.CID
		m.fetched = true
		m.notice = infoNotice("Stored will reference fetched")
		return m, nil

	case uploadDoneMsg:
		m.inFlight--
		if msg.err != nil {
			m.notice = errorNotice(msg.err)
			return m, nil
		}
		m.inputs[inputHash].SetValue(msg.result.CID)
		label := msg.result.FileName
		if msg.result.Sealed {
			label += " (sealed)"
		}
		m.notice = successNotice(fmt.Sprintf("Uploaded %s: %s", label, msg.result.CID))
		return m, nil

	case txDoneMsg:
		m.inFlight--
		return m.applyTxDone(msg)

	case journalLoadedMsg:
		if msg.err == nil {
			m.journal = msg.records
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.updateConfirm(keyMsg)
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab):
		return m.moveFocus(1)
	case key.Matches(keyMsg, keys.backtab):
		return m.moveFocus(-1)
	case key.Matches(keyMsg, keys.enter):
		return m.runFocused()
	case key.Matches(keyMsg, keys.connect):
		return m.start(m.cmdConnect())
	case key.Matches(keyMsg, keys.fetch):
		return m.start(m.cmdFetch())
	case key.Matches(keyMsg, keys.copy):
		return m.copyCurrent()
	case key.Matches(keyMsg, keys.deceased):
		m.confirm = &confirmModel{action: models.ActionConfirmDeceased}
		return m, nil
	case key.Matches(keyMsg, keys.distribute):
		m.confirm = &confirmModel{action: models.ActionDistributeToken}
		return m, nil
	case key.Matches(keyMsg, keys.journal):
		return m, m.cmdLoadJournal()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m viewModel) applyTxDone(msg txDoneMsg) (tea.Model, tea.Cmd) {
	journal := m.cmdLoadJournal()

	switch {
	case msg.err == nil:
		if msg.action == models.ActionSetEncryptedWill {
			m.storedHash = msg.cid
			m.fetched = true
		}
		m.notice = successNotice(fmt.Sprintf("%s confirmed in block %d (tx %s)", msg.action, msg.record.BlockNumber, shortHash(msg.record.TxHash)))
	case errors.Is(msg.err, service.ErrConfirmationPending):
		m.notice = infoNotice(fmt.Sprintf("%s sent, waiting for confirmation (tx %s)", msg.action, shortHash(msg.record.TxHash)))
	default:
		m.notice = errorNotice(msg.err)
		if msg.record.TxHash == "" {
			journal = nil
		}
	}

	return m, journal
}

func (m viewModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.confirm.action

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirm = nil
		return m.start(m.cmdEstate(action))
	case key.Matches(keyMsg, keys.no):
		m.confirm = nil
		m.notice = infoNotice(fmt.Sprintf("%s cancelled", action))
	}

	return m, nil
}

func (m viewModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + inputCount) % inputCount
	return m, m.inputs[m.focus].Focus()
}

// runFocused starts the action bound to the focused field. Inputs the
// service would reject are reported right away without starting a command.
func (m viewModel) runFocused() (tea.Model, tea.Cmd) {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	switch m.focus {
	case inputFile:
		if value(inputFile) == "" {
			m.notice = errorNotice(service.ErrNoFileSelected)
			return m, nil
		}
		return m.start(m.cmdUpload(value(inputFile)))

	case inputHash:
		if err := m.validate(models.WillReference{CID: value(inputHash)}); err != nil {
			m.notice = errorNotice(err)
			return m, nil
		}
		return m.start(m.cmdStoreWill(value(inputHash)))

	case inputRecipient, inputShare:
		input := models.BeneficiaryInput{Recipient: value(inputRecipient), Share: value(inputShare)}
		if err := m.validate(input); err != nil {
			m.notice = errorNotice(err)
			return m, nil
		}
		return m.start(m.cmdAddBeneficiary(input.Recipient, input.Share))

	case inputVerify:
		if err := m.validate(models.IdentityInput{Target: value(inputVerify)}); err != nil {
			m.notice = errorNotice(err)
			return m, nil
		}
		return m.start(m.cmdApprove(value(inputVerify)))
	}

	return m, nil
}

// validate runs the services' input validator. Without one the service
// reports the problem when the command runs.
func (m viewModel) validate(input any) error {
	if m.services.Validator == nil {
		return nil
	}
	return m.services.Validator.Validate(m.ctx, input)
}

// start counts cmd as in flight.
func (m viewModel) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.inFlight++
	return m, cmd
}

func (m viewModel) copyCurrent() (tea.Model, tea.Cmd) {
	text := m.storedHash
	if text == "" {
		text = strings.TrimSpace(m.inputs[inputHash].Value())
	}
	if text == "" {
		text = m.account
	}
	if text == "" {
		m.notice = infoNotice("Nothing to copy")
		return m, nil
	}

	if err := clipboardWrite(text); err != nil {
		m.notice = models.Notice{Level: models.NoticeError, Text: "Copy failed: " + err.Error()}
		return m, nil
	}

	m.notice = successNotice("Copied " + text)
	return m, nil
}

func errorNotice(err error) models.Notice {
	return models.Notice{Level: models.NoticeError, Text: humanizeError(err)}
}

func successNotice(text string) models.Notice {
	return models.Notice{Level: models.NoticeSuccess, Text: text}
}

func infoNotice(text string) models.Notice {
	return models.Notice{Level: models.NoticeInfo, Text: text}
}
