// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

var envelopeMagic = []byte("WKS1")

// argonSealer is the private implementation of [Sealer].
type argonSealer struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSealer() Sealer {
	return &argonSealer{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

func (s *argonSealer) Seal(plaintext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(envelopeMagic)+saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, envelopeMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)

	return gcm.Seal(out, nonce, plaintext, envelopeMagic), nil
}

func (s *argonSealer) Open(sealed []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if !IsSealed(sealed) {
		return nil, ErrNotSealed
	}

	rest := sealed[len(envelopeMagic):]
	if len(rest) < saltSize {
		return nil, ErrNotSealed
	}
	salt, rest := rest[:saltSize], rest[saltSize:]

	gcm, err := s.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return nil, ErrNotSealed
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, envelopeMagic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	return plaintext, nil
}

func (s *argonSealer) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, s.argonTime, s.argonMemory, s.argonThreads, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// IsSealed reports whether data starts with the envelope magic.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, envelopeMagic)
}
