package stream

import "github.com/lixenwraith/neon-drive/engine"

// Message types
const (
	TypeHello = "hello"
	TypeFrame = "frame"
)

// Message is the envelope for everything sent to spectators
type Message struct {
	Type     string           `json:"type"`
	ClientID string           `json:"clientId,omitempty"`
	Format   Format           `json:"format,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
}
