// Package db wires the remote PostgreSQL connection: opening it, running
// the embedded schema migrations and vending repositories bound to it.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/grandboard/internal/dbx"
	"github.com/dmitrijs2005/grandboard/internal/remote/entries"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Entries(db dbx.DBTX) entries.Repository
}
