package entries

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/grandboard/internal/models"
)

var columns = []string{"id", "title", "category", "theme1", "theme2", "description", "link", "month", "year", "image_url", "image_path"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestFetchAll_ScansRowsAndNulls(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, category, .* FROM entries`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("e1", "Dune", "Livre", "SF", "", "desc", "https://x", int64(3), int64(2025), "https://img", "entries/e1-1.jpg").
			AddRow("e2", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	rows, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Title)
	assert.Equal(t, "Dune", *rows[0].Title)
	require.NotNil(t, rows[0].Month)
	assert.Equal(t, 3, *rows[0].Month)
	assert.Equal(t, 2025, *rows[0].Year)
	assert.Equal(t, "entries/e1-1.jpg", *rows[0].ImagePath)

	assert.Equal(t, "e2", rows[1].ID)
	assert.Nil(t, rows[1].Title)
	assert.Nil(t, rows[1].Month)
	assert.Nil(t, rows[1].Year)
	assert.Nil(t, rows[1].ImageURL)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchAll_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM entries`).WillReturnRows(sqlmock.NewRows(columns))

	rows, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFetchAll_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM entries`).WillReturnError(errors.New("conn refused"))

	_, err := repo.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conn refused")
}

func TestFetchAll_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM entries`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("e1", "t", "Film", "", "", "", "", int64(1), int64(2024), "", "").
			RowError(0, errors.New("broken row")))

	_, err := repo.FetchAll(context.Background())
	require.Error(t, err)
}

func TestUpsert_WritesEveryColumn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	e := models.Entry{
		ID: "e1", Title: "Dune", Category: "Livre", Theme1: "SF", Theme2: "",
		Description: "d", Link: "l", Month: 4, Year: 2025,
		ImageURL: "https://img", ImagePath: "entries/e1-1.png",
	}

	mock.ExpectExec(`INSERT INTO entries .* ON CONFLICT \(id\)\s+DO UPDATE SET .*image_path = EXCLUDED\.image_path`).
		WithArgs("e1", "Dune", "Livre", "SF", "", "d", "l", 4, 2025, "https://img", "entries/e1-1.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), e))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO entries`).WillReturnError(errors.New("boom"))

	err := repo.Upsert(context.Background(), models.Entry{ID: "e1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM entries WHERE id = \$1`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM entries WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM entries`).
		WithArgs("e2").
		WillReturnError(errors.New("timeout"))

	ctx := context.Background()
	require.NoError(t, repo.Delete(ctx, "e1"))
	require.NoError(t, repo.Delete(ctx, "missing"))
	require.Error(t, repo.Delete(ctx, "e2"))
	require.NoError(t, mock.ExpectationsWereMet())
}
