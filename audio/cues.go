package audio

import "github.com/lixenwraith/neon-drive/engine"

// CueTracker turns consecutive snapshots into one-shot cues
type CueTracker struct {
	last engine.Snapshot
	seen bool
}

// Next compares a snapshot with the previous one and returns the cues it implies
func (t *CueTracker) Next(snap engine.Snapshot) []CueType {
	prev, seen := t.last, t.seen
	t.last, t.seen = snap, true
	if !seen {
		return nil
	}

	var cues []CueType
	switch {
	case snap.State == engine.StatePlaying && (prev.State != engine.StatePlaying || snap.SessionID != prev.SessionID):
		cues = append(cues, CueStart)
	case snap.State == engine.StateGameOver && prev.State == engine.StatePlaying:
		cues = append(cues, CueCrash)
	case snap.State == engine.StatePlaying && snap.Lane != prev.Lane:
		cues = append(cues, CueLane)
	}
	return cues
}

// Running reports whether the loops should be audible for a snapshot
func Running(snap engine.Snapshot) bool {
	return snap.State == engine.StatePlaying && !snap.Paused
}
