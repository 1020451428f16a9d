package brain

import (
	"sync"
	"sync/atomic"

	"github.com/pran-droid/brain/internal/reaction"
)

type storedDefinition struct {
	definition reaction.Definition
	count      atomic.Uint32
}

// DefinitionStore owns the authoritative current reaction definitions in
// memory. Every field but the usage counter is immutable once loaded; the
// counter is mutated through an atomic so increments are linearizable
// without holding a lock across the rest of dispatch.
type DefinitionStore struct {
	mu      sync.RWMutex
	entries map[reaction.DefinitionID]*storedDefinition
}

// NewDefinitionStore builds a store from a loaded catalog snapshot. Each
// definition's initial Count seeds its atomic counter.
func NewDefinitionStore(definitions []reaction.Definition) *DefinitionStore {
	entries := make(map[reaction.DefinitionID]*storedDefinition, len(definitions))
	for _, def := range definitions {
		entry := &storedDefinition{definition: def}
		entry.count.Store(def.Count)
		entries[def.ID] = entry
	}
	return &DefinitionStore{entries: entries}
}

// Get returns the definition for id with its current usage count filled in.
func (s *DefinitionStore) Get(id reaction.DefinitionID) (reaction.Definition, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return reaction.Definition{}, false
	}
	def := entry.definition
	def.Count = entry.count.Load()
	return def, true
}

// IncrementCount atomically increments id's usage counter and returns the
// post-increment value.
func (s *DefinitionStore) IncrementCount(id reaction.DefinitionID) (uint32, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	return entry.count.Add(1), true
}
