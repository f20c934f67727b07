package journal

import (
	"sync"
	"time"
)

// Event kinds recorded by the gallery.
const (
	KindCommit   = "commit"
	KindVeto     = "veto"
	KindOverride = "override"
)

const defaultCapacity = 100

// Entry is one recorded switch event.
type Entry struct {
	Time   time.Time
	Switch string
	Kind   string
	Value  bool
}

// Store keeps the most recent entries in a fixed-capacity ring and
// coordinates concurrent appends: confirmation collaborators run off the
// update loop, so writers and the UI reader may race.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	filled  bool
}

// NewStore returns a store keeping at most capacity entries; capacity <= 0
// uses the default.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Store{entries: make([]Entry, capacity)}
}

// Append records an entry, evicting the oldest once the ring is full. A zero
// Time is stamped with the current time.
func (s *Store) Append(e Entry) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = e
	s.next++
	if s.next == len(s.entries) {
		s.next = 0
		s.filled = true
	}
}

// Snapshot returns the recorded entries in chronological order. The returned
// slice is independent of the store.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.filled {
		if s.next == 0 {
			return nil
		}
		out := make([]Entry, s.next)
		copy(out, s.entries[:s.next])
		return out
	}
	out := make([]Entry, 0, len(s.entries))
	out = append(out, s.entries[s.next:]...)
	out = append(out, s.entries[:s.next]...)
	return out
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filled {
		return len(s.entries)
	}
	return s.next
}
