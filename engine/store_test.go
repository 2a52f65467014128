package engine

import (
	"testing"

	"github.com/lixenwraith/neon-drive/components"
)

func newTestStore() *EntityStore {
	var ids components.EntityID
	return NewEntityStore(&ids, 4)
}

func TestEntityStoreSpawnAssignsUniqueIDs(t *testing.T) {
	var ids components.EntityID
	a := NewEntityStore(&ids, 4)
	b := NewEntityStore(&ids, 4)

	seen := make(map[components.EntityID]bool)
	for i := 0; i < 5; i++ {
		for _, id := range []components.EntityID{
			a.Spawn(components.Entity{Kind: components.KindObstacle}),
			b.Spawn(components.Entity{Kind: components.KindTree}),
		} {
			if seen[id] {
				t.Fatalf("ID %d assigned twice", id)
			}
			seen[id] = true
		}
	}

	if a.Len() != 5 || b.Len() != 5 {
		t.Errorf("Expected 5 entities per store, got %d and %d", a.Len(), b.Len())
	}
}

func TestEntityStoreRetireDuringIteration(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 6; i++ {
		s.Spawn(components.Entity{RoadAnchor: components.RoadAnchor{Depth: float64(i * 4)}})
	}

	// Retire every entity past depth 10 while walking the store, then compact
	visited := 0
	for i := 0; i < s.Len(); i++ {
		e := s.At(i)
		visited++
		if e.Depth > 10 {
			s.Retire(e.ID)
		}
	}
	if visited != 6 {
		t.Errorf("Expected to visit all 6 entities, visited %d", visited)
	}

	if removed := s.Compact(); removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 survivors, got %d", s.Len())
	}
	for i, want := range []float64{0, 4, 8} {
		if got := s.At(i).Depth; got != want {
			t.Errorf("Survivor %d: expected depth %.0f, got %.0f", i, want, got)
		}
	}
}

func TestEntityStoreGetAfterCompact(t *testing.T) {
	s := newTestStore()
	first := s.Spawn(components.Entity{})
	second := s.Spawn(components.Entity{Variant: 2})

	s.Retire(first)
	if _, ok := s.Get(first); ok {
		t.Error("Expected retired entity to be hidden from Get")
	}
	if got := len(s.Snapshot()); got != 1 {
		t.Errorf("Expected snapshot to skip retired entity, got %d entries", got)
	}

	s.Compact()
	e, ok := s.Get(second)
	if !ok {
		t.Fatal("Expected survivor to be found after compact")
	}
	if e.Variant != 2 {
		t.Errorf("Expected survivor variant 2, got %d", e.Variant)
	}
}

func TestEntityStoreRetireUnknown(t *testing.T) {
	s := newTestStore()
	if s.Retire(42) {
		t.Error("Expected Retire of unknown ID to fail")
	}
	if removed := s.Compact(); removed != 0 {
		t.Errorf("Expected nothing removed, got %d", removed)
	}
}

func TestEntityStoreClear(t *testing.T) {
	s := newTestStore()
	id := s.Spawn(components.Entity{})
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d", s.Len())
	}
	if _, ok := s.Get(id); ok {
		t.Error("Expected cleared entity to be gone")
	}
	if next := s.Spawn(components.Entity{}); next <= id {
		t.Errorf("Expected IDs to keep increasing after Clear, got %d after %d", next, id)
	}
}

func TestEntityStoreSnapshotIsCopy(t *testing.T) {
	s := newTestStore()
	s.Spawn(components.Entity{RoadAnchor: components.RoadAnchor{Depth: -300}})

	snap := s.Snapshot()
	snap[0].Depth = 0

	if s.At(0).Depth != -300 {
		t.Error("Expected snapshot mutation not to reach the store")
	}
}
