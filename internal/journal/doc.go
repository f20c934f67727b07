// Package journal records switch activity for the gallery's event pane.
//
// # Overview
//
// Every commit, veto, and external override lands here as an Entry. The
// store is a fixed-capacity ring: once full, the oldest entry is evicted, so
// memory stays O(capacity) no matter how long the gallery runs.
//
// # Concurrency
//
// The UI appends from its update loop, but confirmation collaborators run in
// their own goroutines and may append from there, so the store is guarded by
// an RWMutex. Snapshot returns an independent copy in chronological order;
// callers can hold it without blocking writers.
package journal
