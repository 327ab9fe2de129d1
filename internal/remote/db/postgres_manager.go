package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/grandboard/internal/dbx"
	"github.com/dmitrijs2005/grandboard/internal/remote/db/migrations"
	"github.com/dmitrijs2005/grandboard/internal/remote/entries"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and
// exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Entries returns an entries.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewPostgresRepository(db)
}

// migrate is a seam for tests.
var migrate = func(ctx context.Context, db *sql.DB, fsys fs.FS, dialect string) error {
	return dbx.Migrate(ctx, db, fsys, dialect)
}

// RunMigrations applies the embedded schema to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, migrations.Migrations, "pgx")
}

// Options tune the connection pool.
type Options struct {
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to dsn through pgx and applies pool options. The
// connection is lazy: an unreachable server surfaces on first use.
func Open(dsn string, opts Options) (*sql.DB, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open remote db: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	return db, nil
}
