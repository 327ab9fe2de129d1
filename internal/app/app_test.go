package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/grandboard/internal/cache"
	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/config"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/remote/remotetest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.CacheDSN = ""
	return cfg
}

func TestAssemble_WiresComponents(t *testing.T) {
	ctx := context.Background()
	fake := remotetest.New()
	fake.SeedEntries(models.Entry{ID: "a", Title: "Dune", Category: "Livre", Month: 2, Year: 2024})

	a, err := Assemble(ctx, testConfig(t), logging.Discard(), fake, cache.NewMemoryRepository())
	require.NoError(t, err)
	defer a.Close()

	got := a.Reconciler.LoadAll(ctx)
	require.Len(t, got, 1)
	assert.Contains(t, a.Taxonomy.Years(), 2024)
	assert.NoError(t, a.Gate.Check("DC-Thales"))
	assert.ErrorIs(t, a.Gate.Check("nope"), common.ErrAccessDenied)
}

func TestClose_WritesMetricsFile(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.MetricsFile = filepath.Join(t.TempDir(), "metrics", "sync.prom")

	a, err := Assemble(ctx, cfg, logging.Discard(), remotetest.New(), cache.NewMemoryRepository())
	require.NoError(t, err)
	a.Reconciler.LoadAll(ctx)

	closed := false
	a.closers = append(a.closers, func() error { closed = true; return nil })
	require.NoError(t, a.Close())
	assert.True(t, closed)

	b, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "grandboard_sync_operations_total")
}

func TestAssemble_CacheSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	db, err := cache.InitDatabase(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer db.Close()
	repo := cache.NewSQLiteRepository(db)

	fake := remotetest.New()
	fake.SeedEntries(models.Entry{ID: "a", Title: "Dune", Category: "Livre", Month: 2, Year: 2024})
	a, err := Assemble(ctx, testConfig(t), logging.Discard(), fake, repo)
	require.NoError(t, err)
	a.Reconciler.LoadAll(ctx)

	offline := remotetest.New()
	offline.FailFetch = true
	b, err := Assemble(ctx, testConfig(t), logging.Discard(), offline, repo)
	require.NoError(t, err)

	got := b.Reconciler.LoadAll(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)
}
