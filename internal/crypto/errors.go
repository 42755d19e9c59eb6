package crypto

import "errors"

var (
	ErrEmptyPassphrase = errors.New("empty seal passphrase")
	ErrNotSealed       = errors.New("data is not a sealed will")
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted envelope")
)
