// Package reconciler keeps the local catalog and the remote store in step.
//
// Reads go to the remote store and fall back to the local cache when it is
// unreachable. Writes are optimistic: the local state changes first and is
// visible to the caller (through the OnLocalChange hook) before the remote
// commit, and a failed commit is reported but never rolled back. Every
// successful write ends with a full reload, so the remote store wins.
//
// Save runs as a fixed sequence of stages; the first failing stage stops
// the sequence:
//
//	validate → identify → build → ensureYear → upload → applyLocal → commit → resync
//
// An upload failure therefore leaves entries untouched both locally and
// remotely.
//
// Year and category renames cascade to entries locally and then upsert
// each moved entry, so the rename outlives the next reload.
package reconciler
