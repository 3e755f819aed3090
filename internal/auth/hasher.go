// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import (
	"crypto/sha1" //nolint:gosec // G505: legacy digest kept for stored-credential compatibility, see Hasher docs.
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters (OWASP recommendation for PBKDF2-HMAC-SHA256).
const (
	pbkdf2Iterations = 210_000
	pbkdf2KeyLen     = 32
)

// Hasher turns a plaintext password into a comparable one-way digest.
//
// Implementations must be deterministic: the session model compares the
// digest carried in the token against the stored digest by equality, so a
// per-call random salt cannot be used here. Hash never fails and always
// returns fixed-length lowercase hex.
type Hasher interface {
	Hash(plaintext string) string
}

// SHA1Hasher is the legacy digest algorithm. It is fast and unsalted and
// should not be chosen for new deployments, but it is the only algorithm
// compatible with digests stored by earlier releases. Replacing it without
// a re-hash-on-next-login migration silently locks every account out.
type SHA1Hasher struct{}

// NewSHA1Hasher creates a new SHA1Hasher.
func NewSHA1Hasher() *SHA1Hasher {
	return &SHA1Hasher{}
}

// Hash returns the hex-encoded SHA-1 digest of the password.
func (h *SHA1Hasher) Hash(plaintext string) string {
	sum := sha1.Sum([]byte(plaintext)) //nolint:gosec // G401: see type docs.
	return hex.EncodeToString(sum[:])
}

// PBKDF2Hasher derives the digest with PBKDF2-HMAC-SHA256 and a
// deployment-wide pepper. The pepper comes from configuration, so the
// digest stays deterministic within one deployment while an offline
// attacker without the pepper cannot precompute tables. This is the
// supported upgrade path away from SHA1Hasher for fresh deployments.
type PBKDF2Hasher struct {
	pepper []byte
}

// NewPBKDF2Hasher creates a PBKDF2Hasher with the given pepper.
func NewPBKDF2Hasher(pepper string) *PBKDF2Hasher {
	return &PBKDF2Hasher{pepper: []byte(pepper)}
}

// Hash returns the hex-encoded PBKDF2-HMAC-SHA256 digest of the password.
func (h *PBKDF2Hasher) Hash(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), h.pepper, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// Compile-time interface checks.
var (
	_ Hasher = (*SHA1Hasher)(nil)
	_ Hasher = (*PBKDF2Hasher)(nil)
)
