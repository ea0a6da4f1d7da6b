package firebase

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKey(t *testing.T) (string, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}

	path := filepath.Join(t.TempDir(), "firebase_key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0o600))

	return path, key
}

func TestNewTokenMinter_MissingFile(t *testing.T) {
	_, err := NewTokenMinter("svc@example.iam.gserviceaccount.com", "/nonexistent/key.pem")
	assert.Error(t, err)
}

func TestNewTokenMinter_InvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0o600))

	_, err := NewTokenMinter("svc@example.iam.gserviceaccount.com", path)
	assert.Error(t, err)
}

func TestMint_ClaimsAndSignature(t *testing.T) {
	path, key := writeTestKey(t)

	serviceAccount := "svc@example.iam.gserviceaccount.com"
	m, err := NewTokenMinter(serviceAccount, path)
	require.NoError(t, err)

	issuedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	signed, err := m.Mint("user-42")
	require.NoError(t, err)

	claims := &customClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithTimeFunc(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, serviceAccount, claims.Issuer)
	assert.Equal(t, serviceAccount, claims.Subject)
	assert.Equal(t, jwt.ClaimStrings{audience}, claims.Audience)
	assert.Equal(t, "user-42", claims.UID)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestDisabled_Mint(t *testing.T) {
	_, err := Disabled{}.Mint("user-42")
	assert.Error(t, err)
}
