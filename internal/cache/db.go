package cache

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/grandboard/internal/dbx"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// RunMigrations applies the embedded cache schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	return dbx.Migrate(ctx, db, sub, "sqlite3")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and
// brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	// single writer keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache migrations: %w", err)
	}
	return db, nil
}
