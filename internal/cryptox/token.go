package cryptox

import (
	"crypto/rand"
	"fmt"
)

// alphabet is the 64-symbol URL-safe set tokens are drawn from. With exactly
// 64 symbols, one random byte masked to its low 6 bits picks a character
// uniformly.
const alphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateToken returns an opaque random string of exactly length characters.
//
// Uniqueness is probabilistic only: the generator performs no bookkeeping,
// callers rely on the random space being large enough that collisions are
// negligible.
func GenerateToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	for i, c := range b {
		b[i] = alphabet[c&63]
	}
	return string(b), nil
}
