package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/grandboard/internal/cache"
	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/state"
)

func setup(t *testing.T, entries ...models.Entry) (*Manager, *state.Store, *cache.Store) {
	t.Helper()
	ctx := context.Background()
	c := cache.NewStore(cache.NewMemoryRepository(), logging.Discard())
	st := state.New(ctx, c)
	require.NoError(t, st.ReplaceEntries(ctx, entries))
	return NewManager(st, logging.Discard()), st, c
}

func TestYears_AddIsIdempotentAndSorted(t *testing.T) {
	m, _, c := setup(t)
	ctx := context.Background()

	require.NoError(t, m.AddYear(ctx, 2025))
	require.NoError(t, m.AddYear(ctx, 2023))
	require.NoError(t, m.AddYear(ctx, 2025))
	require.NoError(t, m.AddYear(ctx, 0))

	assert.Equal(t, []int{2023, 2025}, m.Years())
	assert.Equal(t, []int{2023, 2025}, c.LoadYears(ctx))
}

func TestRenameYear_Cascades(t *testing.T) {
	m, st, c := setup(t,
		models.Entry{ID: "a", Year: 2023},
		models.Entry{ID: "b", Year: 2024},
		models.Entry{ID: "c", Year: 2023},
	)
	ctx := context.Background()
	require.NoError(t, m.AddYear(ctx, 2023))
	require.NoError(t, m.AddYear(ctx, 2024))

	require.NoError(t, m.RenameYear(ctx, 2023, 2022))

	assert.Equal(t, []int{2022, 2024}, m.Years())
	for _, e := range st.Entries() {
		assert.NotEqual(t, 2023, e.Year, "entry %s still on old year", e.ID)
	}
	cached := c.LoadEntries(ctx)
	assert.Equal(t, 2022, cached[0].Year)
	assert.Equal(t, 2024, cached[1].Year)
	assert.Equal(t, 2022, cached[2].Year)
}

func TestRenameYear_BlankIsNoop(t *testing.T) {
	m, _, _ := setup(t, models.Entry{ID: "a", Year: 2023})
	ctx := context.Background()
	require.NoError(t, m.AddYear(ctx, 2023))

	require.NoError(t, m.RenameYear(ctx, 2023, 0))
	require.NoError(t, m.RenameYear(ctx, 0, 2020))

	assert.Equal(t, []int{2023}, m.Years())
}

func TestRenameYear_ToExistingKeepsDuplicate(t *testing.T) {
	m, _, _ := setup(t)
	ctx := context.Background()
	require.NoError(t, m.AddYear(ctx, 2023))
	require.NoError(t, m.AddYear(ctx, 2024))

	require.NoError(t, m.RenameYear(ctx, 2023, 2024))
	assert.Equal(t, []int{2024, 2024}, m.Years())
}

func TestDeleteYear_GuardedByUsage(t *testing.T) {
	m, st, _ := setup(t, models.Entry{ID: "a", Year: 2023})
	ctx := context.Background()
	require.NoError(t, m.AddYear(ctx, 2023))
	require.NoError(t, m.AddYear(ctx, 2021))

	err := m.DeleteYear(ctx, 2023)
	require.ErrorIs(t, err, common.ErrVocabularyInUse)
	assert.Equal(t, []int{2021, 2023}, m.Years())
	assert.Equal(t, 2023, st.Entries()[0].Year)

	require.NoError(t, m.DeleteYear(ctx, 2021))
	assert.Equal(t, []int{2023}, m.Years())
}

func TestCategories_UniverseIsDerived(t *testing.T) {
	m, _, _ := setup(t, models.Entry{ID: "a", Category: "Atelier"})
	ctx := context.Background()
	require.NoError(t, m.AddCategory(ctx, "  Jeu  "))

	cats := m.Categories()
	assert.Contains(t, cats, "Podcast")
	assert.Contains(t, cats, "Jeu")
	assert.Contains(t, cats, "Atelier")
	assert.Len(t, cats, len(common.BaseCategories)+2)
	assert.Equal(t, "Adresse", cats[0])
	assert.Equal(t, "Vidéo", cats[len(cats)-1])

	assert.True(t, m.IsCategory("Atelier"))
	assert.True(t, m.IsCategory("Film"))
	assert.False(t, m.IsCategory("Inconnu"))
	assert.False(t, m.IsCategory(""))

	assert.Equal(t, []string{"Atelier", "Jeu"}, m.Deletable())
}

func TestAddCategory_NoopForBaseAndExisting(t *testing.T) {
	m, st, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, m.AddCategory(ctx, "Film"))
	require.NoError(t, m.AddCategory(ctx, "Jeu"))
	require.NoError(t, m.AddCategory(ctx, "Jeu"))
	require.NoError(t, m.AddCategory(ctx, "   "))

	assert.Equal(t, []string{"Jeu"}, st.ExtraCategories())
}

func TestRenameCategory_Cascades(t *testing.T) {
	m, st, _ := setup(t,
		models.Entry{ID: "a", Category: "Jeu"},
		models.Entry{ID: "b", Category: "Film"},
		models.Entry{ID: "c", Category: "Jeu"},
	)
	ctx := context.Background()
	require.NoError(t, m.AddCategory(ctx, "Jeu"))

	require.NoError(t, m.RenameCategory(ctx, "Jeu", "Jeu vidéo"))

	assert.Equal(t, []string{"Jeu vidéo"}, st.ExtraCategories())
	got := map[string]string{}
	for _, e := range st.Entries() {
		got[e.ID] = e.Category
	}
	assert.Equal(t, map[string]string{"a": "Jeu vidéo", "b": "Film", "c": "Jeu vidéo"}, got)
	assert.False(t, m.IsCategory("Jeu"))
}

func TestRenameCategory_UnusedAndInUseOnly(t *testing.T) {
	m, st, _ := setup(t, models.Entry{ID: "a", Category: "Atelier"})
	ctx := context.Background()

	require.NoError(t, m.RenameCategory(ctx, "Personne", "Quelqu'un"))
	require.NoError(t, m.RenameCategory(ctx, "Atelier", "Stage"))

	assert.Empty(t, st.ExtraCategories())
	assert.Equal(t, "Stage", st.Entries()[0].Category)
}

func TestRenameCategory_BaseRefused(t *testing.T) {
	m, st, _ := setup(t, models.Entry{ID: "a", Category: "Film"})

	err := m.RenameCategory(context.Background(), "Film", "Cinéma")
	require.ErrorIs(t, err, common.ErrBaseCategory)
	assert.Equal(t, "Film", st.Entries()[0].Category)
}

func TestDeleteCategory(t *testing.T) {
	m, st, _ := setup(t, models.Entry{ID: "a", Category: "Jeu"})
	ctx := context.Background()
	require.NoError(t, m.AddCategory(ctx, "Jeu"))
	require.NoError(t, m.AddCategory(ctx, "Atelier"))

	require.ErrorIs(t, m.DeleteCategory(ctx, "Jeu"), common.ErrVocabularyInUse)
	require.ErrorIs(t, m.DeleteCategory(ctx, "Livre"), common.ErrBaseCategory)
	require.NoError(t, m.DeleteCategory(ctx, "Atelier"))

	assert.Equal(t, []string{"Jeu"}, st.ExtraCategories())
	assert.Equal(t, "Jeu", st.Entries()[0].Category)
}

func TestEnsureYearsFrom(t *testing.T) {
	m, _, c := setup(t)
	ctx := context.Background()
	require.NoError(t, m.AddYear(ctx, 2020))

	entries := []models.Entry{{Year: 2019}, {Year: 2026}, {Year: 0}}
	require.NoError(t, m.EnsureYearsFrom(ctx, 2026, entries))

	assert.Equal(t, []int{2019, 2020, 2026}, m.Years())
	assert.Equal(t, []int{2019, 2020, 2026}, c.LoadYears(ctx))
}
