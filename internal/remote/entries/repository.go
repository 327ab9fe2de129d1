// Package entries provides the PostgreSQL-backed store for catalog rows.
package entries

import (
	"context"

	"github.com/dmitrijs2005/grandboard/internal/models"
)

// Row is one entries row as read back. Columns may be NULL in rows
// written by other clients; defaults are applied by the caller.
type Row struct {
	ID          string
	Title       *string
	Category    *string
	Theme1      *string
	Theme2      *string
	Description *string
	Link        *string
	Month       *int
	Year        *int
	ImageURL    *string
	ImagePath   *string
}

type Repository interface {
	FetchAll(ctx context.Context) ([]Row, error)
	// Upsert replaces the row with the same id (no field merge) or inserts it.
	Upsert(ctx context.Context, e models.Entry) error
	// Delete removes the row; a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
