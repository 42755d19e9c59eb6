package wallet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadPassphrase prints prompt to out and reads a passphrase from the
// terminal without echo. It fails when stdin is not a terminal.
func ReadPassphrase(prompt string, out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(out, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}

	return strings.TrimRight(string(raw), "\r\n"), nil
}
