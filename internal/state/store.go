package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/dexter/internal/catalog"
)

// Snapshot is a copy of the store at one point in time.
type Snapshot struct {
	Entities  []catalog.Entity
	Loading   bool
	LoadedAt  time.Time
	LastError error
}

// Ready reports whether the canonical list is available.
func (s Snapshot) Ready() bool {
	return !s.Loading
}

// Store owns the canonical list. It starts in the loading state, accepts
// exactly one successful Publish, and is read-only afterwards.
type Store struct {
	mu        sync.RWMutex
	entities  []catalog.Entity
	published bool
	loadedAt  time.Time
	lastError error
}

// Publish installs the canonical list and leaves the loading state. It
// reports false if a list was already published; the first list wins.
func (s *Store) Publish(entities []catalog.Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.published {
		return false
	}
	s.entities = catalog.CloneList(entities)
	if s.entities == nil {
		s.entities = []catalog.Entity{}
	}
	s.published = true
	s.loadedAt = time.Now()
	s.lastError = nil
	return true
}

// Fail records a load failure. The store stays in the loading state.
func (s *Store) Fail(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.published {
		return
	}
	s.lastError = err
}

// Snapshot returns a copy safe to read without holding the lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Entities: catalog.CloneList(s.entities),
		Loading:  !s.published,
		LoadedAt: s.loadedAt,
	}
	if s.lastError != nil {
		snap.LastError = fmt.Errorf("%w", s.lastError)
	}
	return snap
}
