package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// Controls latches commands between ticks
// Writers are the event goroutine; the frame loop is the single reader through Drain
// Terminals report no key release, so accelerate and brake stay held for KeyHoldWindow after the last press
type Controls struct {
	mu sync.Mutex

	lastAccelerate time.Time
	lastBrake      time.Time

	laneChanges []int
	start       bool
	wake        bool
	restart     bool
	togglePause bool
}

// NewControls creates an empty latch
func NewControls() *Controls {
	return &Controls{
		laneChanges: make([]int, 0, 4),
	}
}

// PressAccelerate marks accelerate held; it releases brake
func (c *Controls) PressAccelerate(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastAccelerate = now
	c.lastBrake = time.Time{}
}

// PressBrake marks brake held; it releases accelerate
func (c *Controls) PressBrake(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastBrake = now
	c.lastAccelerate = time.Time{}
}

// QueueLane queues one steering request (-1 left, +1 right)
func (c *Controls) QueueLane(dir int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.laneChanges = append(c.laneChanges, dir)
}

// RequestStart asks to start, or restart after game over
func (c *Controls) RequestStart() {
	c.mu.Lock()
	c.start = true
	c.mu.Unlock()
}

// RequestWake records a key press that only starts a session from the title screen
func (c *Controls) RequestWake() {
	c.mu.Lock()
	c.wake = true
	c.mu.Unlock()
}

// RequestRestart asks for a fresh session regardless of state
func (c *Controls) RequestRestart() {
	c.mu.Lock()
	c.restart = true
	c.mu.Unlock()
}

// TogglePause flips a pending pause request; two presses between ticks cancel out
func (c *Controls) TogglePause() {
	c.mu.Lock()
	c.togglePause = !c.togglePause
	c.mu.Unlock()
}

// Drain returns the commands for one tick and clears the one-shot ones
func (c *Controls) Drain(now time.Time) engine.Input {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := engine.Input{
		Accelerate:  held(c.lastAccelerate, now),
		Brake:       held(c.lastBrake, now),
		Start:       c.start,
		Wake:        c.wake,
		Restart:     c.restart,
		TogglePause: c.togglePause,
	}
	if len(c.laneChanges) > 0 {
		in.LaneChanges = make([]int, len(c.laneChanges))
		copy(in.LaneChanges, c.laneChanges)
		c.laneChanges = c.laneChanges[:0]
	}

	c.start = false
	c.wake = false
	c.restart = false
	c.togglePause = false

	return in
}

// Release drops any held keys, used when the terminal loses focus
func (c *Controls) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastAccelerate = time.Time{}
	c.lastBrake = time.Time{}
}

func held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < constants.KeyHoldWindow
}
