package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-will-keeper/models"
)

var inputLabels = [inputCount]string{
	inputFile:      "File      ",
	inputHash:      "Will hash ",
	inputRecipient: "Recipient ",
	inputShare:     "Share     ",
	inputVerify:    "Verify    ",
}

func (m viewModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.opts.BuildInfo)
	}

	var b strings.Builder

	b.WriteString("Account   : ")
	if m.account == "" {
		b.WriteString("not connected (ctrl+o)")
	} else {
		b.WriteString(fmt.Sprintf("%s (%s)", m.account, m.provider))
	}
	b.WriteString("\n")

	b.WriteString("Stored    : ")
	b.WriteString(m.storedHashLabel())
	b.WriteString("\n")

	if m.inFlight > 0 {
		b.WriteString(fmt.Sprintf("Working   : %d action(s) in flight\n", m.inFlight))
	}

	b.WriteString("\n")
	for i, in := range m.inputs {
		cursor := " "
		label := inputLabels[i]
		if i == m.focus {
			cursor = ">"
			label = focusStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %s: [ %s ]\n", cursor, label, in.View()))
	}

	if m.notice.Text != "" {
		b.WriteString("\n")
		b.WriteString(renderNotice(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderJournal(m.journal))

	page := renderPage("WILL KEEPER", strings.TrimRight(b.String(), "\n"), mainHotKeys)
	if m.confirm != nil {
		return page + "\n\n" + m.confirm.View()
	}

	return page
}

func (m viewModel) storedHashLabel() string {
	switch {
	case !m.fetched:
		return "- (ctrl+g to fetch)"
	case m.storedHash == "":
		return "(empty)"
	default:
		return m.storedHash
	}
}

func renderNotice(n models.Notice) string {
	switch n.Level {
	case models.NoticeError:
		return errorStyle.Render("Error: " + n.Text)
	case models.NoticeSuccess:
		return successStyle.Render(n.Text)
	default:
		return n.Text
	}
}

func renderJournal(records []models.TxRecord) string {
	if len(records) == 0 {
		return "No transactions yet"
	}

	out := "Action               │ Status    │ Block    │ Tx\n"
	out += "─────────────────────┼───────────┼──────────┼──────────────\n"
	for _, r := range records {
		block := "-"
		if r.BlockNumber > 0 {
			block = fmt.Sprintf("%d", r.BlockNumber)
		}
		out += fmt.Sprintf("%-20s │ %-9s │ %-8s │ %s\n",
			fitText(string(r.Action), 20),
			r.Status,
			block,
			valueOrDash(shortHash(r.TxHash)),
		)
	}

	return out
}
