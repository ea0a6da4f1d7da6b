// Package firebase mints Firebase custom tokens: signed assertions handed to
// the Identity Toolkit API attesting to a local account's identifier.
package firebase

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// audience is fixed by the Identity Toolkit API.
const audience = "https://identitytoolkit.googleapis.com/google.identity.identitytoolkit.v1.IdentityToolkit"

const tokenValidity = time.Hour

// Minter produces a signed identity assertion for a local account id.
type Minter interface {
	Mint(userID string) (string, error)
}

type customClaims struct {
	jwt.RegisteredClaims
	UID string `json:"uid"`
}

// TokenMinter signs Firebase custom tokens with a service-account RSA key.
type TokenMinter struct {
	serviceAccount string
	key            *rsa.PrivateKey
	now            func() time.Time
}

// NewTokenMinter loads the PEM-encoded RSA key at keyFile. Construction
// fails eagerly so a misconfigured key is caught before traffic arrives.
func NewTokenMinter(serviceAccount, keyFile string) (*TokenMinter, error) {
	raw, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("reading firebase key: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing firebase key: %w", err)
	}
	return &TokenMinter{serviceAccount: serviceAccount, key: key, now: time.Now}, nil
}

// Mint returns an RS256 custom token for userID, valid for one hour.
func (m *TokenMinter) Mint(userID string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, customClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.serviceAccount,
			Subject:   m.serviceAccount,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
		},
		UID: userID,
	})

	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("signing firebase token: %w", err)
	}

	return signed, nil
}

// Disabled is the Minter used when no service account is configured; every
// mint attempt fails.
type Disabled struct{}

func (Disabled) Mint(string) (string, error) {
	return "", errors.New("firebase minting not configured")
}
