package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lynlab/accounts/internal/common"
	"github.com/lynlab/accounts/internal/dbx"
)

// PostgresRepository stores accounts in the users table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, username, password_hash, password_salt, email,
	access_token, is_activated, activation_token,
	activation_token_valid_until, activation_redirection_url`

func (r *PostgresRepository) Create(ctx context.Context, account *Account) error {

	query :=
		`INSERT INTO users (` + accountColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Username, account.PasswordHash, account.PasswordSalt,
		account.Email, account.AccessToken, account.IsActivated,
		account.ActivationToken, account.ActivationTokenValidUntil,
		account.ActivationRedirectionURL)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return common.ErrDuplicateIdentity
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	return r.getBy(ctx, "username", username)
}

func (r *PostgresRepository) GetByAccessToken(ctx context.Context, token string) (*Account, error) {
	return r.getBy(ctx, "access_token", token)
}

func (r *PostgresRepository) GetByActivationToken(ctx context.Context, token string) (*Account, error) {
	return r.getBy(ctx, "activation_token", token)
}

func (r *PostgresRepository) getBy(ctx context.Context, column, value string) (*Account, error) {

	query := `SELECT ` + accountColumns + ` FROM users WHERE ` + column + ` = $1`

	account := &Account{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.PasswordSalt,
		&account.Email, &account.AccessToken, &account.IsActivated,
		&account.ActivationToken, &account.ActivationTokenValidUntil,
		&account.ActivationRedirectionURL)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// SetAccessTokenIfAbsent is a conditional single-statement update so that two
// concurrent first logins cannot overwrite each other's token.
func (r *PostgresRepository) SetAccessTokenIfAbsent(ctx context.Context, id, token string) (bool, error) {

	query :=
		`UPDATE users SET access_token = $2
		 WHERE id = $1 AND access_token IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id, token)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return affected == 1, nil
}

func (r *PostgresRepository) MarkActivated(ctx context.Context, id string) error {

	query :=
		`UPDATE users SET is_activated = TRUE,
			activation_token = NULL,
			activation_token_valid_until = NULL
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
