package components

import "github.com/lixenwraith/neon-drive/constants"

// PlayerComponent is the player car's kinematic state
// Mutated only by the kinematics system, once per tick
type PlayerComponent struct {
	Lane      int     // Target lane, always within [MinLane, MaxLane]
	PositionX float64 // Eased toward TargetX
	Speed     float64 // Road units per tick, clamped to [MinSpeed, MaxSpeed]
	RotationZ float64 // Cosmetic roll from lateral error
}

// TargetX returns the lateral center of the target lane
func (p PlayerComponent) TargetX() float64 {
	return float64(p.Lane) * constants.LaneWidth
}
