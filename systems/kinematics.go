package systems

import (
	"math"

	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// KinematicsSystem owns the player car: steering requests, the speed curve and lane easing
type KinematicsSystem struct{}

// NewKinematicsSystem creates a new kinematics system
func NewKinematicsSystem() *KinematicsSystem {
	return &KinematicsSystem{}
}

// Priority returns the system's priority
func (s *KinematicsSystem) Priority() int {
	return constants.PriorityKinematics
}

// Update applies queued lane changes, then speed, then lateral easing
func (s *KinematicsSystem) Update(g *engine.Game) {
	p := &g.Player

	for _, dir := range g.Input.LaneChanges {
		p.Lane = ChangeLane(p.Lane, dir)
	}

	p.Speed = NextSpeed(p.Speed, g.Input.Accelerate, g.Input.Brake)

	target := p.TargetX()
	p.PositionX += (target - p.PositionX) * constants.LaneEaseFactor
	p.RotationZ = (p.PositionX - target) * constants.TiltFactor
}

// ChangeLane returns the lane after a steering request; requests leaving the road are ignored
func ChangeLane(lane, dir int) int {
	next := lane + dir
	if next < constants.MinLane || next > constants.MaxLane {
		return lane
	}
	return next
}

// NextSpeed advances speed by one tick
// Acceleration tapers as speed nears the maximum; braking and coasting are flat rates
func NextSpeed(speed float64, accelerate, brake bool) float64 {
	switch {
	case accelerate:
		factor := math.Max(constants.AccelerationFloor, 1-speed/constants.MaxSpeed)
		speed += constants.Acceleration * factor
	case brake:
		speed -= constants.Deceleration
	default:
		speed -= constants.Friction
	}

	return math.Min(math.Max(speed, constants.MinSpeed), constants.MaxSpeed)
}
