package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_SetThenGet(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte(`[1,2]`)))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte(`[1,2]`), v)
}

func TestSQLiteRepository_GetMissingReturnsNilNil(t *testing.T) {
	r := setupRepo(t)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestInitDatabase_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(db).Set(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, err := NewSQLiteRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}
