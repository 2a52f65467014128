package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-drive/engine"
)

// Handler translates terminal events into Controls commands
type Handler struct {
	table    *KeyTable
	controls *Controls
	clock    engine.TimeProvider

	// Event goroutine only
	width   int
	buttons tcell.ButtonMask

	// OnMute is called for the mute key; nil ignores it
	OnMute func()
	// OnResize is called when the terminal size changes; nil ignores it
	OnResize func()
}

// NewHandler creates a handler with the default key table
func NewHandler(controls *Controls, clock engine.TimeProvider) *Handler {
	return &Handler{
		table:    DefaultKeyTable(),
		controls: controls,
		clock:    clock,
	}
}

// HandleEvent processes one event; returns false when the user asked to quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		h.width, _ = ev.Size()
		if h.OnResize != nil {
			h.OnResize()
		}
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.controls.Release()
		}
	}
	return true
}

// handleMouse steers on a primary click: left half of the screen moves left, right half moves right
// Only the press counts; releases and held drags are ignored
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.ButtonPrimary != 0 && h.buttons&tcell.ButtonPrimary == 0
	h.buttons = buttons
	if !pressed || h.width <= 0 {
		return
	}

	x, _ := ev.Position()
	if x < h.width/2 {
		h.controls.QueueLane(-1)
	} else {
		h.controls.QueueLane(1)
	}
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	intent := h.table.Lookup(ev)
	if intent == IntentQuit {
		log.Printf("quit requested")
		return false
	}

	// Any other key wakes the title screen
	if !intent.IsSystem() {
		h.controls.RequestWake()
	}

	h.dispatch(intent)
	return true
}

func (h *Handler) dispatch(intent IntentType) {
	switch intent {
	case IntentAccelerate:
		h.controls.PressAccelerate(h.clock.Now())
	case IntentBrake:
		h.controls.PressBrake(h.clock.Now())
	case IntentSteerLeft:
		h.controls.QueueLane(-1)
	case IntentSteerRight:
		h.controls.QueueLane(1)
	case IntentStart:
		h.controls.RequestStart()
	case IntentRestart:
		h.controls.RequestRestart()
	case IntentTogglePause:
		h.controls.TogglePause()
	case IntentToggleMute:
		if h.OnMute != nil {
			h.OnMute()
		}
	}
}

// Run polls the screen until quit or the screen is finalized, then calls done
func (h *Handler) Run(screen tcell.Screen, done func()) {
	defer done()
	h.width, _ = screen.Size()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.HandleEvent(ev) {
			return
		}
	}
}
