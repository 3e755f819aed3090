// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/samber/oops"
)

// Codec symmetrically encrypts and decrypts the opaque session values
// embedded in client-held cookies. One fixed key serves both directions;
// it is loaded once at startup and never rotated at runtime.
type Codec interface {
	Encrypt(plaintext string) (string, error)

	// Decrypt recovers a value produced by Encrypt under the same key.
	// Any other input fails with ErrMalformedToken; callers treat that as
	// "not authenticated", never as a fault.
	Decrypt(ciphertext string) (string, error)
}

// AESCodec implements Codec with AES-256-GCM. The key is derived from a
// configured passphrase by a single SHA-256; ciphertexts are hex-encoded
// nonce||sealed bytes, so cookie values stay printable.
type AESCodec struct {
	aead cipher.AEAD
}

// NewAESCodec creates an AESCodec from the configured passphrase.
func NewAESCodec(passphrase string) (*AESCodec, error) {
	if passphrase == "" {
		return nil, oops.Code("AUTH_CODEC_KEY_EMPTY").Errorf("session encryption key cannot be empty")
	}

	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, oops.Code("AUTH_CODEC_INIT_FAILED").With("operation", "create cipher").Wrap(err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, oops.Code("AUTH_CODEC_INIT_FAILED").With("operation", "create GCM").Wrap(err)
	}

	return &AESCodec{aead: aead}, nil
}

// Encrypt seals the plaintext under a fresh random nonce.
func (c *AESCodec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", oops.Code("AUTH_ENCRYPT_FAILED").With("operation", "generate nonce").Wrap(err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt opens a hex-encoded nonce||ciphertext value. GCM authentication
// means a truncated, tampered, or foreign-key value is detected rather
// than decrypted into garbage.
func (c *AESCodec) Decrypt(ciphertext string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", oops.Code("AUTH_MALFORMED_TOKEN").With("reason", "not hex").Wrap(ErrMalformedToken)
	}
	if len(raw) < c.aead.NonceSize() {
		return "", oops.Code("AUTH_MALFORMED_TOKEN").With("reason", "too short").Wrap(ErrMalformedToken)
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", oops.Code("AUTH_MALFORMED_TOKEN").With("reason", "authentication failed").Wrap(ErrMalformedToken)
	}

	return string(plaintext), nil
}

// Compile-time interface check.
var _ Codec = (*AESCodec)(nil)
