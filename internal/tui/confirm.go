package tui

import "github.com/MKhiriev/go-will-keeper/models"

// confirmModel asks before an irreversible estate action is sent.
type confirmModel struct {
	action models.TxAction
}

func (m confirmModel) View() string {
	content := "Send " + string(m.action) + "() to the contract?\n"
	content += "This cannot be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
