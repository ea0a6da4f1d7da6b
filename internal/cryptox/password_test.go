package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	h1 := HashPassword("secret123", "salt-a")
	h2 := HashPassword("secret123", "salt-a")
	assert.Equal(t, h1, h2)
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	h1 := HashPassword("secret123", "salt-a")
	h2 := HashPassword("secret123", "salt-b")
	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_PasswordChangesDigest(t *testing.T) {
	h1 := HashPassword("secret123", "salt-a")
	h2 := HashPassword("secret124", "salt-a")
	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_EmptyPasswordAccepted(t *testing.T) {
	h := HashPassword("", "salt-a")
	assert.Len(t, h, argonKeyLen)
	assert.True(t, VerifyPassword("", "salt-a", h))
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	digest := HashPassword("secret123", salt)

	assert.True(t, VerifyPassword("secret123", salt, digest))
	assert.False(t, VerifyPassword("secret124", salt, digest))
	assert.False(t, VerifyPassword("secret123", salt+"x", digest))
}

func TestGenerateSalt_Length(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltLength)
}
