package wallet

import "errors"

var (
	// ErrNoProvider is returned by every call on the unavailable provider.
	ErrNoProvider = errors.New("no wallet provider configured")
	// ErrSignerRejected is returned when the key material refuses to sign,
	// e.g. a wrong keystore passphrase.
	ErrSignerRejected = errors.New("signer rejected the request")
	// ErrNoAccounts is returned when the provider holds no accounts.
	ErrNoAccounts = errors.New("wallet has no accounts")
	// ErrUnknownAccount is returned when a signer is requested for an
	// address the provider does not hold.
	ErrUnknownAccount = errors.New("account is not held by the wallet")
	// ErrInvalidMnemonic is returned for a phrase that fails BIP-39 checks.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)
