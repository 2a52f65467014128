package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// newPlayingGame returns a started game with the full pipeline on a mock clock
func newPlayingGame(t *testing.T) (*engine.Game, *engine.MockTimeProvider) {
	t.Helper()
	source := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g := engine.NewGame(source, 7)
	Install(g)
	if !g.Start() {
		t.Fatal("Expected Start to succeed from NotStarted")
	}
	return g, source
}

// placeObstacle puts an obstacle in a lane at an explicit depth
func placeObstacle(g *engine.Game, lane int, depth float64) components.EntityID {
	return g.Obstacles.Spawn(components.Entity{
		Kind: components.KindObstacle,
		RoadAnchor: components.RoadAnchor{
			LateralOffset: float64(lane) * constants.LaneWidth,
			Depth:         depth,
			Height:        engine.Curvature(depth, 0),
		},
	})
}
