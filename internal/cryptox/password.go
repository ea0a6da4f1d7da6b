// Package cryptox implements the credential primitives of the accounts
// service: salted one-way password hashing and opaque random tokens.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// argon2i parameters. Changing them invalidates every stored digest, so
// they are fixed constants rather than configuration.
const (
	argonTime    = 3
	argonMemory  = 32 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// SaltLength is the length, in characters, of per-account password salts.
const SaltLength = 32

// HashPassword derives the argon2i digest of password under salt. The same
// (password, salt) pair always yields the same digest; an empty password is
// hashed like any other string.
func HashPassword(password, salt string) []byte {
	return argon2.Key([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
}

// GenerateSalt returns a new random salt of SaltLength characters. Salts are
// generated once per account at registration and never reused across
// accounts.
func GenerateSalt() (string, error) {
	return GenerateToken(SaltLength)
}

// VerifyPassword recomputes the digest for (password, salt) and compares it
// against expected in constant time.
func VerifyPassword(password, salt string, expected []byte) bool {
	digest := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(digest, expected) == 1
}
