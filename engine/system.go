package engine

// System is one stage of the tick pipeline
type System interface {
	// Priority orders systems within a tick, lower runs first
	Priority() int

	// Update advances the system by one tick
	Update(g *Game)
}
