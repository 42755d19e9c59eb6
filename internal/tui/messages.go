package tui

import (
	"github.com/MKhiriev/go-will-keeper/models"
)

type walletConnectedMsg struct {
	session models.WalletSession
	err     error
}

type willFetchedMsg struct {
	ref models.WillReference
	err error
}

// txDoneMsg reports a settled state-changing action. cid is set for
// setEncryptedWill.
type txDoneMsg struct {
	action models.TxAction
	cid    string
	record models.TxRecord
	err    error
}

type uploadDoneMsg struct {
	result models.UploadResult
	err    error
}

type journalLoadedMsg struct {
	records []models.TxRecord
	err     error
}
