package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to pad buttons
type KeyTable struct {
	// Special keys (arrows, enter, space is a rune)
	SpecialKeys map[tcell.Key]Buttons

	// Rune bindings, matched case-insensitively
	Runes map[rune]Buttons

	// Keys that end the session
	QuitKeys  map[tcell.Key]bool
	QuitRunes map[rune]bool
}

// DefaultKeyTable returns arrows + vi-style hjkl for directions, jump on
// space/z/x/c, enter as start
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Buttons{
			tcell.KeyUp:    ButtonUp,
			tcell.KeyDown:  ButtonDown,
			tcell.KeyLeft:  ButtonLeft,
			tcell.KeyRight: ButtonRight,
			tcell.KeyEnter: ButtonStart,
		},
		Runes: map[rune]Buttons{
			'h': ButtonLeft,
			'j': ButtonDown,
			'k': ButtonUp,
			'l': ButtonRight,
			' ': ButtonA,
			'z': ButtonA,
			'x': ButtonB,
			'c': ButtonC,
			'a': ButtonX,
			's': ButtonY,
			'd': ButtonZ,
			'm': ButtonMode,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyCtrlC:  true,
			tcell.KeyCtrlQ:  true,
			tcell.KeyEscape: true,
		},
		QuitRunes: map[rune]bool{
			'q': true,
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (b Buttons, quit bool) {
	if kt.QuitKeys[ev.Key()] {
		return 0, true
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if kt.QuitRunes[r] {
			return 0, true
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r], false
	}
	return kt.SpecialKeys[ev.Key()], false
}
