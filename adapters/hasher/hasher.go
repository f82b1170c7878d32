// Package hasher provides admin credential hashing implementations.
package hasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/pbkdf2"

	"github.com/ahmedw/folio/ports"
)

// DefaultIterations is the PBKDF2 iteration count used in production.
const DefaultIterations = 210000

const keyLen = 32

// PBKDF2 derives deterministic, salted, one-way digests. The salt is a
// server-held secret from configuration, so the same password always maps
// to the same digest and the stored admin digest can be provisioned with
// the `folio hash` command.
type PBKDF2 struct {
	salt       []byte
	iterations int
}

// NewPBKDF2 creates a PBKDF2-SHA256 hasher. An empty salt is a
// configuration error: hashing against a missing salt would produce a
// predictable-but-wrong digest, so it is refused up front.
func NewPBKDF2(salt string, iterations int) (*PBKDF2, error) {
	if salt == "" {
		return nil, errors.New("password salt is required")
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &PBKDF2{salt: []byte(salt), iterations: iterations}, nil
}

// Hash derives the hex-encoded digest of plaintext.
func (h *PBKDF2) Hash(plaintext string) (string, error) {
	key := pbkdf2.Key([]byte(plaintext), h.salt, h.iterations, keyLen, sha256.New)
	return hex.EncodeToString(key), nil
}

// Compare checks if plaintext matches digest in constant time.
func (h *PBKDF2) Compare(digest, plaintext string) bool {
	candidate, err := h.Hash(plaintext)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(candidate), []byte(digest))
}

// Ensure interface compliance.
var _ ports.Hasher = (*PBKDF2)(nil)

// Fake provides a no-op hasher for testing (NOT FOR PRODUCTION).
type Fake struct{}

// Hash returns the plaintext unchanged (no actual hashing).
func (Fake) Hash(plaintext string) (string, error) {
	return plaintext, nil
}

// Compare does simple equality check.
func (Fake) Compare(digest, plaintext string) bool {
	return digest == plaintext
}

// Ensure interface compliance.
var _ ports.Hasher = Fake{}
