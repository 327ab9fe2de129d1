// Package state holds the process-wide catalog state: the entry
// collection, the year set, the extra categories and the ids of local
// changes the remote store has not confirmed. Every mutation is persisted
// to the local cache before it returns, so pending marks survive restarts.
package state

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/grandboard/internal/cache"
	"github.com/dmitrijs2005/grandboard/internal/models"
)

// Store guards each read and each mutate-and-persist individually; there
// is no lock spanning several calls.
type Store struct {
	mu sync.Mutex

	cache *cache.Store

	entries []models.Entry
	years   []int
	extras  []string
	pending map[string]struct{}
}

// New loads every collection from c.
func New(ctx context.Context, c *cache.Store) *Store {
	s := &Store{
		cache:   c,
		entries: c.LoadEntries(ctx),
		years:   c.LoadYears(ctx),
		extras:  c.LoadExtraCategories(ctx),
		pending: make(map[string]struct{}),
	}
	for _, id := range c.LoadPending(ctx) {
		s.pending[id] = struct{}{}
	}
	return s
}

// Entries returns a copy of the entry collection.
func (s *Store) Entries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Clone(s.entries)
}

// Entry returns the entry with id.
func (s *Store) Entry(id string) (models.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := models.ByID(s.entries, id); i >= 0 {
		return s.entries[i], true
	}
	return models.Entry{}, false
}

func (s *Store) Years() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.years)
}

func (s *Store) ExtraCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.extras)
}

// ReplaceEntries installs an authoritative collection and clears all
// pending marks.
func (s *Store) ReplaceEntries(ctx context.Context, entries []models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = models.Clone(entries)
	clear(s.pending)
	return s.persistEntries(ctx)
}

// UpsertEntry inserts or replaces e by id and marks it pending.
func (s *Store) UpsertEntry(ctx context.Context, e models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = models.Upsert(s.entries, e)
	s.pending[e.ID] = struct{}{}
	return s.persistEntries(ctx)
}

// RemoveEntry drops the entry with id, marks it pending and returns it.
func (s *Store) RemoveEntry(ctx context.Context, id string) (models.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := models.ByID(s.entries, id)
	if i < 0 {
		return models.Entry{}, false, nil
	}
	removed := s.entries[i]
	s.entries, _ = models.Remove(s.entries, id)
	s.pending[id] = struct{}{}
	return removed, true, s.persistEntries(ctx)
}

// MutateEntries applies fn to every entry and persists the result. fn
// reports whether it changed the entry; changed entries are marked pending.
func (s *Store) MutateEntries(ctx context.Context, fn func(*models.Entry) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.entries {
		if fn(&s.entries[i]) {
			s.pending[s.entries[i].ID] = struct{}{}
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return n, s.persistEntries(ctx)
}

func (s *Store) SetYears(ctx context.Context, years []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.years = slices.Clone(years)
	if err := s.cache.SaveYears(ctx, s.years); err != nil {
		return fmt.Errorf("persist years: %w", err)
	}
	return nil
}

func (s *Store) SetExtraCategories(ctx context.Context, categories []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extras = slices.Clone(categories)
	if err := s.cache.SaveExtraCategories(ctx, s.extras); err != nil {
		return fmt.Errorf("persist categories: %w", err)
	}
	return nil
}

// Pending returns the sorted ids whose local change has not yet been
// confirmed by a successful reload.
func (s *Store) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingIDs()
}

func (s *Store) pendingIDs() []string {
	out := make([]string, 0, len(s.pending))
	for id := range s.pending {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// persistEntries writes the entries and the pending marks together.
func (s *Store) persistEntries(ctx context.Context) error {
	if err := s.cache.SaveEntries(ctx, s.entries); err != nil {
		return fmt.Errorf("persist entries: %w", err)
	}
	if err := s.cache.SavePending(ctx, s.pendingIDs()); err != nil {
		return fmt.Errorf("persist pending: %w", err)
	}
	return nil
}
