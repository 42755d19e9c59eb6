package crypto

import (
	"fmt"
	"os"
)

// OpenFile reads a sealed will from src, opens it with passphrase and writes
// the plaintext to dst with owner-only permissions. dst is not created when
// opening fails.
func OpenFile(s Sealer, src, dst, passphrase string) error {
	sealed, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read sealed will: %w", err)
	}

	plaintext, err := s.Open(sealed, passphrase)
	if err != nil {
		return err
	}

	if err = os.WriteFile(dst, plaintext, 0o600); err != nil {
		return fmt.Errorf("write unsealed will: %w", err)
	}
	return nil
}
