package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
)

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingRepo) Set(context.Context, string, []byte) error   { return errors.New("disk gone") }

func TestStore_EmptyDefaults(t *testing.T) {
	s := NewStore(NewMemoryRepository(), logging.Discard())
	ctx := context.Background()

	assert.Equal(t, []models.Entry{}, s.LoadEntries(ctx))
	assert.Equal(t, []int{}, s.LoadYears(ctx))
	assert.Equal(t, []string{}, s.LoadExtraCategories(ctx))
	assert.Equal(t, []string{}, s.LoadPending(ctx))
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(NewMemoryRepository(), logging.Discard())
	ctx := context.Background()

	entries := []models.Entry{{ID: "a", Title: "Dune", Category: "Livre", Month: 3, Year: 2025}}
	require.NoError(t, s.SaveEntries(ctx, entries))
	require.NoError(t, s.SaveYears(ctx, []int{2024, 2025}))
	require.NoError(t, s.SaveExtraCategories(ctx, []string{"Jeu"}))
	require.NoError(t, s.SavePending(ctx, []string{"a"}))

	assert.Equal(t, entries, s.LoadEntries(ctx))
	assert.Equal(t, []int{2024, 2025}, s.LoadYears(ctx))
	assert.Equal(t, []string{"Jeu"}, s.LoadExtraCategories(ctx))
	assert.Equal(t, []string{"a"}, s.LoadPending(ctx))
}

func TestStore_NilSavedAsEmptyArray(t *testing.T) {
	repo := NewMemoryRepository()
	s := NewStore(repo, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.SaveEntries(ctx, nil))

	raw, err := repo.Get(ctx, common.EntriesCacheKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestStore_MalformedBlobLoadsDefault(t *testing.T) {
	repo := NewMemoryRepository()
	s := NewStore(repo, logging.Discard())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, common.EntriesCacheKey, []byte("{not json")))
	require.NoError(t, repo.Set(ctx, common.YearsCacheKey, []byte(`"2025"`)))

	assert.Empty(t, s.LoadEntries(ctx))
	assert.Empty(t, s.LoadYears(ctx))
}

func TestStore_ReadErrorLoadsDefault(t *testing.T) {
	s := NewStore(failingRepo{}, logging.Discard())

	assert.Empty(t, s.LoadExtraCategories(context.Background()))
	assert.Error(t, s.SaveYears(context.Background(), []int{2025}))
}

func TestStore_SQLiteBacked(t *testing.T) {
	s := NewStore(setupRepo(t), logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.SaveYears(ctx, []int{2023}))
	assert.Equal(t, []int{2023}, s.LoadYears(ctx))
}
