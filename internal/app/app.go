// Package app assembles grandboard's components from a Config: logger,
// local cache, remote store, state, taxonomy, reconciler, access gate and
// metrics.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/grandboard/internal/access"
	"github.com/dmitrijs2005/grandboard/internal/cache"
	"github.com/dmitrijs2005/grandboard/internal/config"
	"github.com/dmitrijs2005/grandboard/internal/filex"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/metrics"
	"github.com/dmitrijs2005/grandboard/internal/reconciler"
	"github.com/dmitrijs2005/grandboard/internal/remote"
	remotedb "github.com/dmitrijs2005/grandboard/internal/remote/db"
	"github.com/dmitrijs2005/grandboard/internal/remote/images"
	"github.com/dmitrijs2005/grandboard/internal/state"
	"github.com/dmitrijs2005/grandboard/internal/taxonomy"
)

type App struct {
	Config     *config.Config
	Logger     logging.Logger
	Reconciler *reconciler.Reconciler
	Taxonomy   *taxonomy.Manager
	Gate       *access.Gate
	Metrics    *metrics.SyncMetrics

	closers []func() error
}

// New wires the production components. A remote store that cannot be
// migrated is logged and kept; reads then fall back to the cache.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	closers := []func() error{closeLog}
	fail := func(err error) (*App, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
		return nil, err
	}

	var cacheRepo cache.Repository
	if cfg.CacheDSN == "" {
		cacheRepo = cache.NewMemoryRepository()
	} else {
		if err := filex.EnsureParentDir(filex.SQLitePath(cfg.CacheDSN)); err != nil {
			return fail(fmt.Errorf("cache init error: %w", err))
		}
		cacheDB, err := cache.InitDatabase(ctx, cfg.CacheDSN)
		if err != nil {
			return fail(fmt.Errorf("cache init error: %w", err))
		}
		closers = append(closers, cacheDB.Close)
		cacheRepo = cache.NewSQLiteRepository(cacheDB)
	}

	rs, db, err := openRemote(ctx, cfg, logger)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, db.Close)

	a, err := Assemble(ctx, cfg, logger, rs, cacheRepo)
	if err != nil {
		return fail(err)
	}
	a.closers = append(closers, a.closers...)
	return a, nil
}

func openRemote(ctx context.Context, cfg *config.Config, logger logging.Logger) (remote.Store, *sql.DB, error) {
	manager := remotedb.NewPostgresRepositoryManager()

	db, err := remotedb.Open(cfg.DatabaseDSN, remotedb.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	if err := manager.RunMigrations(ctx, db); err != nil {
		logger.Error(ctx, "remote migrations failed, continuing", "error", err)
	}

	storage, err := images.NewS3Storage(ctx, images.Config{
		RootUser:      cfg.S3RootUser,
		RootPassword:  cfg.S3RootPassword,
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		BaseEndpoint:  cfg.S3BaseEndpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("storage init error: %w", err)
	}

	return remote.NewAdapter(manager.Entries(db), storage), db, nil
}

// Assemble builds the domain components on top of an already opened
// remote store and cache repository.
func Assemble(ctx context.Context, cfg *config.Config, logger logging.Logger, rs remote.Store, cacheRepo cache.Repository, opts ...reconciler.Option) (*App, error) {
	m, err := metrics.NewSyncMetrics(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	st := state.New(ctx, cache.NewStore(cacheRepo, logger))
	tm := taxonomy.NewManager(st, logger)
	rec := reconciler.New(rs, st, tm, logger, append([]reconciler.Option{reconciler.WithMetrics(m)}, opts...)...)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Reconciler: rec,
		Taxonomy:   tm,
		Gate:       access.NewGate(cfg.AccessCode),
		Metrics:    m,
	}, nil
}

// Close writes the metrics file, if configured, and releases resources in
// reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	if a.Config.MetricsFile != "" {
		err := filex.EnsureParentDir(a.Config.MetricsFile)
		if err == nil {
			err = a.Metrics.WriteTextfile(a.Config.MetricsFile)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
