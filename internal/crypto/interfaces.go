// Package crypto seals will files with a passphrase before they are
// uploaded, so the gateway and the contract only ever see ciphertext.
package crypto

// Sealer turns a plaintext will into a self-describing envelope and back.
//
// Envelope layout:
//
//	magic (4) ‖ salt (16) ‖ nonce (12) ‖ AES-256-GCM ciphertext
//
// The key is derived from the passphrase and salt with Argon2id; the magic
// prefix is bound to the ciphertext as additional data.
type Sealer interface {
	// Seal encrypts plaintext under passphrase.
	Seal(plaintext []byte, passphrase string) ([]byte, error)

	// Open reverses Seal. A wrong passphrase or a tampered envelope both
	// fail with ErrWrongPassphrase.
	Open(sealed []byte, passphrase string) ([]byte, error)
}
