package entries

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/grandboard/internal/dbx"
	"github.com/dmitrijs2005/grandboard/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FetchAll returns every row in storage order.
func (r *PostgresRepository) FetchAll(ctx context.Context) ([]Row, error) {
	query := `SELECT id, title, category, theme1, theme2, description, link, month, year, image_url, image_path
		FROM entries`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []Row{}
	for rows.Next() {
		var item Row
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Category, &item.Theme1, &item.Theme2,
			&item.Description, &item.Link, &item.Month, &item.Year,
			&item.ImageURL, &item.ImagePath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert writes every column of e, keyed by id.
func (r *PostgresRepository) Upsert(ctx context.Context, e models.Entry) error {
	query := `
		INSERT INTO entries (id, title, category, theme1, theme2, description, link, month, year, image_url, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			theme1 = EXCLUDED.theme1,
			theme2 = EXCLUDED.theme2,
			description = EXCLUDED.description,
			link = EXCLUDED.link,
			month = EXCLUDED.month,
			year = EXCLUDED.year,
			image_url = EXCLUDED.image_url,
			image_path = EXCLUDED.image_path
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Category, e.Theme1, e.Theme2, e.Description, e.Link,
		e.Month, e.Year, e.ImageURL, e.ImagePath)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, err)
	}
	return nil
}
