package random

import (
	"crypto/rand"
	"encoding/base64"
)

// Random provides identifier generation that can be mocked for testing
type Random interface {
	// ID generates a random URL-safe identifier with the given prefix
	ID(prefix string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// ID generates a 128-bit random identifier with the given prefix
func (r *CryptoRandom) ID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
