package constants

import "time"

// Camera (presentation only, matches the original scene setup)
const (
	CameraFOVDegrees = 75.0
	CameraHeight     = 5.0
	CameraDistance   = 8.0
	CameraLookAtZ    = -10.0
	CameraNear       = 0.1
	CameraFar        = 2000.0
)

// HUD Layout
const (
	// HUDRows is the number of terminal rows reserved for the status bar
	HUDRows = 1

	// HorizonFraction places the horizon row as a fraction of the view height
	HorizonFraction = 0.35

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Overlay Text
const (
	TitleText    = "N E O N   D R I V E"
	StartHint    = "press any key to start"
	GameOverText = "G A M E   O V E R"
	RestartHint  = "press space to restart"
	PausedText   = "P A U S E D"
	ResumeHint   = "press p to resume"
	FinalScore   = "FINAL SCORE %d"
	ControlsHint = "←/→ a/d steer  ↑/w gas  ↓/s brake  p pause  m mute  q quit"
)

// Stream
const (
	// StreamPath is the websocket endpoint for snapshot spectators
	StreamPath = "/ws"

	// StreamSendBuffer is the per-client frame queue; full queues drop frames
	StreamSendBuffer = 8

	// StreamWriteTimeout bounds a single websocket write
	StreamWriteTimeout = 2 * time.Second

	// StreamReadLimit caps inbound spectator messages; spectators only send control frames
	StreamReadLimit = 512
)
