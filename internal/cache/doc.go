// Package cache is the local fallback persistence for the catalog.
//
// # Overview
//
// Independent JSON blobs are kept under fixed keys (see internal/common):
// the entry collection, the year set, the extra category set and the ids
// of unconfirmed local changes. They are read at startup and rewritten after every local
// mutation. The cache is never authoritative while the remote store is
// reachable; the reconciler only serves it back in degraded mode.
//
// # Layers
//
//   - Repository: raw key/value access (SQLite or in-memory)
//   - Store: typed load/save of the blobs; a blob that is
//     absent or fails to parse loads as its empty default
//
// Typical Usage
//
//	db, _ := cache.InitDatabase(ctx, "grandboard.db")
//	store := cache.NewStore(cache.NewSQLiteRepository(db), logger)
//	entries := store.LoadEntries(ctx)
//	_ = store.SaveYears(ctx, []int{2024, 2025})
package cache
