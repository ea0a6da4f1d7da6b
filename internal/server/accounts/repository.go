package accounts

import (
	"context"
)

// Repository is the persistence contract for Account rows.
type Repository interface {
	// Create inserts a new account. A username collision yields
	// common.ErrDuplicateIdentity without mutating storage.
	Create(ctx context.Context, account *Account) error

	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByAccessToken(ctx context.Context, token string) (*Account, error)
	GetByActivationToken(ctx context.Context, token string) (*Account, error)

	// SetAccessTokenIfAbsent stores token on the account only when no access
	// token is present yet, and reports whether the write happened. Losing
	// the write means a concurrent login already issued a token.
	SetAccessTokenIfAbsent(ctx context.Context, id, token string) (bool, error)

	// MarkActivated flips is_activated and clears the activation token
	// material in a single statement.
	MarkActivated(ctx context.Context, id string) error
}
