package systems

import (
	"time"

	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// SpawnSystem rolls the two independent spawn channels each tick
// Obstacles are rate limited by a game-time cooldown and ramp with score; scenery is a flat chance
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update spawns at most one obstacle and one scenery item
func (s *SpawnSystem) Update(g *engine.Game) {
	if g.State != engine.StatePlaying || g.Player.Speed <= 0 {
		return
	}

	s.trySpawnObstacle(g)
	s.trySpawnScenery(g)
}

// ObstacleSpawnEligible reports whether the cooldown since the last obstacle has elapsed
func ObstacleSpawnEligible(last, now time.Time) bool {
	return now.Sub(last) >= constants.ObstacleSpawnCooldown
}

// ObstacleSpawnChance is the per-tick obstacle probability at a given score, deliberately uncapped
func ObstacleSpawnChance(score float64) float64 {
	return constants.ObstacleBaseRate + score/constants.ObstacleScoreDivisor
}

func (s *SpawnSystem) trySpawnObstacle(g *engine.Game) bool {
	now := g.Now()
	if !ObstacleSpawnEligible(g.LastObstacleSpawn, now) {
		return false
	}

	rng := g.Rand()
	if rng.Float64() >= ObstacleSpawnChance(g.Score) {
		return false
	}

	lane := rng.Intn(constants.LaneCount) + constants.MinLane
	SpawnObstacle(g, lane, rng.Intn(constants.ObstacleVariants))
	g.LastObstacleSpawn = now
	return true
}

func (s *SpawnSystem) trySpawnScenery(g *engine.Game) bool {
	rng := g.Rand()
	if rng.Float64() >= constants.ScenerySpawnRate {
		return false
	}

	side := -1.0
	if rng.Float64() > 0.5 {
		side = 1.0
	}
	offset := side * (constants.SceneryMinOffset + rng.Float64()*constants.SceneryOffsetRange)

	if rng.Float64() > 0.5 {
		spawnRoadEntity(g.Scenery, components.Entity{Kind: components.KindTree}, offset, 0)
		return true
	}

	height := constants.BuildingMinHeight + rng.Float64()*constants.BuildingHeightRange
	spawnRoadEntity(g.Scenery, components.Entity{
		Kind:    components.KindBuilding,
		Variant: rng.Intn(constants.WindowPalettes),
		Size:    height,
	}, offset, height/2)
	return true
}

// SpawnObstacle places an obstacle in a lane at the spawn depth
func SpawnObstacle(g *engine.Game, lane, variant int) components.EntityID {
	return spawnRoadEntity(g.Obstacles, components.Entity{
		Kind:    components.KindObstacle,
		Variant: variant,
	}, float64(lane)*constants.LaneWidth, 0)
}

func spawnRoadEntity(store *engine.EntityStore, e components.Entity, offset, baseline float64) components.EntityID {
	e.RoadAnchor = components.RoadAnchor{
		LateralOffset: offset,
		Depth:         constants.SpawnDepth,
		Baseline:      baseline,
		Height:        engine.Curvature(constants.SpawnDepth, baseline),
	}
	return store.Spawn(e)
}
