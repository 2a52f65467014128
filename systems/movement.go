package systems

import (
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// MovementSystem scrolls every road-anchored entity toward the player by the current speed,
// reapplies the curvature transform and retires entities past the near plane
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update advances obstacles, scenery and lane markers
func (s *MovementSystem) Update(g *engine.Game) {
	speed := g.Player.Speed

	advance(g.Obstacles, speed)
	advance(g.Scenery, speed)
	wrapMarkers(g.LaneMarkers, speed)
}

// advance moves a collection and retires what passed the near plane; returns the count retired
func advance(store *engine.EntityStore, speed float64) int {
	for i := 0; i < store.Len(); i++ {
		e := store.At(i)
		e.Depth += speed
		e.Height = engine.Curvature(e.Depth, e.Baseline)
		if e.Depth > constants.RetireDepth {
			store.Retire(e.ID)
		}
	}
	return store.Compact()
}

// wrapMarkers recycles dashes to the far end of the road instead of retiring them
func wrapMarkers(store *engine.EntityStore, speed float64) {
	for i := 0; i < store.Len(); i++ {
		e := store.At(i)
		e.Depth += speed
		if e.Depth > constants.RetireDepth {
			e.Depth -= constants.RoadLength
		}
		e.Height = engine.Curvature(e.Depth, e.Baseline)
	}
}
