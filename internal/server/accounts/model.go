package accounts

import "time"

// Account is one registered user.
//
// PasswordHash and PasswordSalt are write-once at registration and never
// touched by login or activation. IsActivated only ever goes false to true.
// AccessToken is nil until the first successful login and stable afterwards.
type Account struct {
	ID                        string
	Username                  string
	PasswordHash              []byte
	PasswordSalt              string
	Email                     string
	AccessToken               *string
	IsActivated               bool
	ActivationToken           *string
	ActivationTokenValidUntil *time.Time
	ActivationRedirectionURL  *string
}
