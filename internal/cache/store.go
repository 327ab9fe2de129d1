package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
)

// Store reads and writes the typed cache blobs.
type Store struct {
	repo   Repository
	logger logging.Logger
}

func NewStore(repo Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// LoadEntries returns the cached entry collection, or an empty one.
func (s *Store) LoadEntries(ctx context.Context) []models.Entry {
	return load(ctx, s, common.EntriesCacheKey, []models.Entry{})
}

func (s *Store) SaveEntries(ctx context.Context, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	return s.save(ctx, common.EntriesCacheKey, entries)
}

// LoadYears returns the cached year set, or an empty one.
func (s *Store) LoadYears(ctx context.Context) []int {
	return load(ctx, s, common.YearsCacheKey, []int{})
}

func (s *Store) SaveYears(ctx context.Context, years []int) error {
	if years == nil {
		years = []int{}
	}
	return s.save(ctx, common.YearsCacheKey, years)
}

// LoadExtraCategories returns the cached user-added categories, or an empty set.
func (s *Store) LoadExtraCategories(ctx context.Context) []string {
	return load(ctx, s, common.ExtraCategoriesCacheKey, []string{})
}

func (s *Store) SaveExtraCategories(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	return s.save(ctx, common.ExtraCategoriesCacheKey, categories)
}

// LoadPending returns the ids of local changes not yet confirmed remotely.
func (s *Store) LoadPending(ctx context.Context) []string {
	return load(ctx, s, common.PendingCacheKey, []string{})
}

func (s *Store) SavePending(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.save(ctx, common.PendingCacheKey, ids)
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, b)
}

// load treats unreadable and malformed blobs as absent.
func load[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "cache read failed, using default", "key", key, "error", err)
		return fallback
	}
	if len(raw) == 0 {
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn(ctx, "malformed cache blob, using default", "key", key, "error", err)
		return fallback
	}
	return v
}
