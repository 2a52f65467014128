package systems

import "github.com/lixenwraith/neon-drive/engine"

// Default returns the full tick pipeline
func Default() []engine.System {
	return []engine.System{
		NewKinematicsSystem(),
		NewSpawnSystem(),
		NewMovementSystem(),
		NewCollisionSystem(),
		NewScoreSystem(),
	}
}

// Install registers the full tick pipeline on a game
func Install(g *engine.Game) {
	for _, s := range Default() {
		g.AddSystem(s)
	}
}
