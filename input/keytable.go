package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentTogglePause,
			tcell.KeyUp:     IntentAccelerate,
			tcell.KeyDown:   IntentBrake,
			tcell.KeyLeft:   IntentSteerLeft,
			tcell.KeyRight:  IntentSteerRight,
			tcell.KeyEnter:  IntentStart,
		},

		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'p': IntentTogglePause,
			'w': IntentAccelerate,
			's': IntentBrake,
			'a': IntentSteerLeft,
			'd': IntentSteerRight,
			' ': IntentStart,
			'r': IntentRestart,
		},
	}
}

// Lookup resolves a key event to an intent; unbound keys return IntentNone
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[unicode.ToLower(ev.Rune())]
	}
	return t.SpecialKeys[ev.Key()]
}
