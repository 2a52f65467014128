package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+Q, Ctrl+C
	IntentToggleMute  // m
	IntentTogglePause // p, Esc

	// Driving
	IntentAccelerate // Up, w
	IntentBrake      // Down, s
	IntentSteerLeft  // Left, a
	IntentSteerRight // Right, d

	// Session
	IntentStart   // Space, Enter
	IntentRestart // r
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentToggleMute:  "toggle_mute",
	IntentTogglePause: "toggle_pause",
	IntentAccelerate:  "accelerate",
	IntentBrake:       "brake",
	IntentSteerLeft:   "steer_left",
	IntentSteerRight:  "steer_right",
	IntentStart:       "start",
	IntentRestart:     "restart",
}

// String returns the intent name used in logs and key config dumps
func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// IsSystem reports whether the intent acts on the application rather than the session
// System intents never wake a session that has not started
func (i IntentType) IsSystem() bool {
	return i == IntentQuit || i == IntentToggleMute || i == IntentTogglePause
}
