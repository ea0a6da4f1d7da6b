// Package common defines shared sentinel errors used across the accounts
// service. Callers should use errors.Is to match these values.
package common

import "errors"

var (

	// repository specific errors
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("identity already exists")

	// login errors; ErrUnknownAccount and ErrWrongCredentials carry
	// distinct wire codes, ErrNotActivated shares the wrong-credentials
	// code on the wire but stays a separate value here
	ErrUnknownAccount   = errors.New("unknown account")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNotActivated     = errors.New("account not activated")

	// activation token errors
	ErrInvalidToken = errors.New("invalid activation token")
	ErrTokenExpired = errors.New("activation token expired")

	// bearer token errors
	ErrUnauthenticated = errors.New("unauthenticated")
)
