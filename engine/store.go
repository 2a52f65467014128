package engine

import "github.com/lixenwraith/neon-drive/components"

// EntityStore is index-addressable storage for road entities
// Removal is by identity: Retire marks an entity, Compact drops all marked entities in one stable pass,
// so iteration during a tick never skips or double-processes an element
type EntityStore struct {
	entities []components.Entity
	index    map[components.EntityID]int
	retired  map[components.EntityID]struct{}
	nextID   *components.EntityID
}

// NewEntityStore creates a store drawing IDs from the shared counter
// Stores of one game share the counter so IDs are unique across collections
func NewEntityStore(ids *components.EntityID, capacity int) *EntityStore {
	return &EntityStore{
		entities: make([]components.Entity, 0, capacity),
		index:    make(map[components.EntityID]int, capacity),
		retired:  make(map[components.EntityID]struct{}),
		nextID:   ids,
	}
}

// Spawn appends an entity, assigning and returning its ID
func (s *EntityStore) Spawn(e components.Entity) components.EntityID {
	*s.nextID++
	e.ID = *s.nextID
	s.index[e.ID] = len(s.entities)
	s.entities = append(s.entities, e)
	return e.ID
}

// Len returns the number of stored entities, including ones retired this pass
func (s *EntityStore) Len() int {
	return len(s.entities)
}

// At returns the entity at index i for in-place mutation
func (s *EntityStore) At(i int) *components.Entity {
	return &s.entities[i]
}

// Get looks up a live entity by ID
func (s *EntityStore) Get(id components.EntityID) (*components.Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	if _, dead := s.retired[id]; dead {
		return nil, false
	}
	return &s.entities[i], true
}

// Retire marks an entity for removal at the next Compact
func (s *EntityStore) Retire(id components.EntityID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	s.retired[id] = struct{}{}
	return true
}

// Compact removes all retired entities, preserving the order of survivors, and returns the count removed
func (s *EntityStore) Compact() int {
	if len(s.retired) == 0 {
		return 0
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if _, dead := s.retired[e.ID]; dead {
			delete(s.index, e.ID)
			continue
		}
		s.index[e.ID] = len(kept)
		kept = append(kept, e)
	}

	removed := len(s.entities) - len(kept)
	// Zero the tail so the backing array holds no stale entities
	clear(s.entities[len(kept):])
	s.entities = kept
	clear(s.retired)
	return removed
}

// Clear removes every entity; the ID counter keeps running
func (s *EntityStore) Clear() {
	clear(s.entities)
	s.entities = s.entities[:0]
	clear(s.index)
	clear(s.retired)
}

// Snapshot returns a copy of the live entities
func (s *EntityStore) Snapshot() []components.Entity {
	out := make([]components.Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if _, dead := s.retired[e.ID]; dead {
			continue
		}
		out = append(out, e)
	}
	return out
}
