// Package db wires repositories over one shared connection pool and applies
// schema migrations at startup.
package db

import (
	"context"
	"database/sql"

	"github.com/lynlab/accounts/internal/server/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
	Close() error
}
