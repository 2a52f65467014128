package engine

// Input is the immutable command snapshot consumed by one tick
// Producers never touch game state directly; they fill an Input between ticks
type Input struct {
	Accelerate bool // Held; checked before Brake
	Brake      bool // Held

	// LaneChanges are queued steering requests, each -1 or +1, applied in order
	LaneChanges []int

	Start       bool // Starts from NotStarted, restarts from GameOver, ignored while Playing
	Wake        bool // Any key press; starts from NotStarted only
	Restart     bool // Resets and plays from any state
	TogglePause bool
}
