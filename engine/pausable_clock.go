package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// The spawn cooldown is measured on this clock, so pausing never lets a cooldown lapse
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	paused          bool
	pauseStartTime  time.Time     // Source time when the current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock over the given source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		// Frozen at the pause point
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
