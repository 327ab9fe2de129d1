// Package remotetest provides an in-memory remote.Store with failure
// injection for tests.
package remotetest

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/remote/entries"
)

// ErrInjected is returned by operations switched to fail.
var ErrInjected = errors.New("injected failure")

// Fake keeps rows and objects in memory. Rows keep insertion order.
type Fake struct {
	mu sync.Mutex

	rows    []entries.Row
	objects map[string][]byte

	// Failure switches.
	FailFetch  bool
	FailUpsert bool
	FailDelete bool
	FailUpload bool
	FailRemove bool

	// Base is the public URL prefix returned by Upload.
	Base string

	Calls []string
}

func New() *Fake {
	return &Fake{objects: make(map[string][]byte), Base: "https://objects.test/images"}
}

func (f *Fake) record(op string) {
	f.Calls = append(f.Calls, op)
}

// SeedRows replaces the remote table.
func (f *Fake) SeedRows(rows ...entries.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append([]entries.Row(nil), rows...)
}

// SeedEntries replaces the remote table with fully populated rows.
func (f *Fake) SeedEntries(es ...models.Entry) {
	rows := make([]entries.Row, 0, len(es))
	for _, e := range es {
		rows = append(rows, RowOf(e))
	}
	f.SeedRows(rows...)
}

func (f *Fake) FetchAll(_ context.Context) ([]entries.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("fetch")
	if f.FailFetch {
		return nil, ErrInjected
	}
	return append([]entries.Row{}, f.rows...), nil
}

func (f *Fake) Upsert(_ context.Context, e models.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("upsert")
	if f.FailUpsert {
		return ErrInjected
	}
	row := RowOf(e)
	for i := range f.rows {
		if f.rows[i].ID == e.ID {
			f.rows[i] = row
			return nil
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *Fake) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")
	if f.FailDelete {
		return ErrInjected
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *Fake) Upload(_ context.Context, path string, body io.Reader, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("upload")
	if f.FailUpload {
		return "", ErrInjected
	}
	if _, ok := f.objects[path]; ok {
		return "", common.ErrObjectExists
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[path] = b
	return f.Base + "/" + path, nil
}

func (f *Fake) Remove(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("remove")
	if f.FailRemove {
		return ErrInjected
	}
	delete(f.objects, path)
	return nil
}

// Object returns the stored bytes for path.
func (f *Fake) Object(path string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.objects[path]
	return b, ok
}

// Objects returns the number of stored objects.
func (f *Fake) Objects() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// Rows returns a copy of the remote table.
func (f *Fake) Rows() []entries.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entries.Row{}, f.rows...)
}

// RowOf converts an entry into a row with every column set.
func RowOf(e models.Entry) entries.Row {
	s := func(v string) *string { return &v }
	i := func(v int) *int { return &v }
	return entries.Row{
		ID:          e.ID,
		Title:       s(e.Title),
		Category:    s(e.Category),
		Theme1:      s(e.Theme1),
		Theme2:      s(e.Theme2),
		Description: s(e.Description),
		Link:        s(e.Link),
		Month:       i(e.Month),
		Year:        i(e.Year),
		ImageURL:    s(e.ImageURL),
		ImagePath:   s(e.ImagePath),
	}
}
