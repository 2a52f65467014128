package constants

import "time"

// Speed Model
const (
	MinSpeed     = 0.1
	MaxSpeed     = 1.5
	Acceleration = 0.005
	Deceleration = 0.03
	Friction     = 0.002

	// AccelerationFloor keeps gains from vanishing near MaxSpeed
	AccelerationFloor = 0.1
)

// Lane Handling
const (
	// LaneEaseFactor is the per-tick fraction of lateral error closed
	LaneEaseFactor = 0.15

	// TiltFactor converts lateral error into body roll (cosmetic)
	TiltFactor = 0.1
)

// Obstacle Spawning
const (
	// ObstacleSpawnCooldown is the minimum game time between obstacle spawns
	ObstacleSpawnCooldown = 800 * time.Millisecond

	// ObstacleBaseRate is the per-tick spawn probability at zero score
	ObstacleBaseRate = 0.02

	// ObstacleScoreDivisor ramps the spawn probability with score, uncapped
	ObstacleScoreDivisor = 10000.0

	// ObstacleVariants is the number of obstacle paint colours
	ObstacleVariants = 4
)

// Scenery Spawning
const (
	// ScenerySpawnRate is the per-tick spawn probability
	ScenerySpawnRate = 0.1

	// SceneryMinOffset and SceneryOffsetRange place scenery 15–45 units off the road center
	SceneryMinOffset   = 15.0
	SceneryOffsetRange = 30.0

	// BuildingMinHeight and BuildingHeightRange size buildings 10–30 units tall
	BuildingMinHeight   = 10.0
	BuildingHeightRange = 20.0

	// WindowPalettes is the number of building window colours
	WindowPalettes = 4
)

// Collision
const (
	// CollisionBandNear and CollisionBandFar bound the open depth band around the player
	CollisionBandNear = -2.0
	CollisionBandFar  = 2.0

	// CollisionThreshold is the lateral distance under which an obstacle hits the player
	CollisionThreshold = 1.2
)

// Score Display
const (
	ScoreDisplayDivisor = 10.0
	SpeedDisplayFactor  = 200.0
)
