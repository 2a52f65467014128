package systems

import (
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// ScoreSystem accumulates distance as score and drives the decorative ground scroll
type ScoreSystem struct{}

// NewScoreSystem creates a new score system
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// Priority returns the system's priority (runs last)
func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

// Update adds this tick's distance
// Game.Tick runs it for every tick that began in Playing, including the collision tick
func (s *ScoreSystem) Update(g *engine.Game) {
	g.Score += g.Player.Speed
	g.GridScroll += g.Player.Speed / constants.GridScrollDivisor
}
