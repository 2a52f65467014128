package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering and simulation interval (~60 FPS), one tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long accelerate/brake stay held after the last key press or auto-repeat
	// Terminals report presses only, never releases
	KeyHoldWindow = 300 * time.Millisecond
)
