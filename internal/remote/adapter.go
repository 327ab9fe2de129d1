// Package remote combines the rows repository and the image storage into
// the single backend the reconciler talks to.
package remote

import (
	"context"
	"io"

	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/remote/entries"
	"github.com/dmitrijs2005/grandboard/internal/remote/images"
)

// Store is the full remote surface: row CRUD plus object storage.
type Store interface {
	FetchAll(ctx context.Context) ([]entries.Row, error)
	Upsert(ctx context.Context, e models.Entry) error
	Delete(ctx context.Context, id string) error
	Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, path string) error
}

// Adapter implements Store over separate row and object backends.
type Adapter struct {
	rows   entries.Repository
	images images.Storage
}

func NewAdapter(rows entries.Repository, imgs images.Storage) *Adapter {
	return &Adapter{rows: rows, images: imgs}
}

func (a *Adapter) FetchAll(ctx context.Context) ([]entries.Row, error) {
	return a.rows.FetchAll(ctx)
}

func (a *Adapter) Upsert(ctx context.Context, e models.Entry) error {
	return a.rows.Upsert(ctx, e)
}

func (a *Adapter) Delete(ctx context.Context, id string) error {
	return a.rows.Delete(ctx, id)
}

func (a *Adapter) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	return a.images.Upload(ctx, path, body, contentType)
}

func (a *Adapter) Remove(ctx context.Context, path string) error {
	return a.images.Remove(ctx, path)
}
