package systems

import (
	"math"

	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// CollisionSystem ends the session when an obstacle overlaps the player
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update signals at most one collision per tick
func (s *CollisionSystem) Update(g *engine.Game) {
	for i := 0; i < g.Obstacles.Len(); i++ {
		if Hits(g.Player, g.Obstacles.At(i)) {
			g.OnCollision()
			return
		}
	}
}

// Hits reports whether an obstacle is inside the depth band and lateral reach of the player
func Hits(p components.PlayerComponent, e *components.Entity) bool {
	if e.Depth <= constants.CollisionBandNear || e.Depth >= constants.CollisionBandFar {
		return false
	}
	return math.Abs(e.LateralOffset-p.PositionX) < constants.CollisionThreshold
}
