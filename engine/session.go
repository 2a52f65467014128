package engine

// SessionState is the play-through lifecycle
type SessionState uint8

const (
	StateNotStarted SessionState = iota
	StatePlaying
	StateGameOver
)

// String returns the wire name of the state
func (s SessionState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name for snapshot consumers
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
