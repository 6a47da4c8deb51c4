// Package input decodes controller state into the button bitmask the
// motion core reads.
package input

import "strings"

// Buttons is a bitmask of pad buttons
type Buttons uint16

// Bit values follow the 6-button pad report layout
const (
	ButtonUp    Buttons = 0x0001
	ButtonDown  Buttons = 0x0002
	ButtonLeft  Buttons = 0x0004
	ButtonRight Buttons = 0x0008
	ButtonB     Buttons = 0x0010
	ButtonC     Buttons = 0x0020
	ButtonA     Buttons = 0x0040
	ButtonStart Buttons = 0x0080
	ButtonZ     Buttons = 0x0100
	ButtonY     Buttons = 0x0200
	ButtonX     Buttons = 0x0400
	ButtonMode  Buttons = 0x0800

	ButtonDir    = ButtonUp | ButtonDown | ButtonLeft | ButtonRight
	ButtonAction = ButtonA | ButtonB | ButtonC | ButtonX | ButtonY | ButtonZ
	ButtonAll    Buttons = 0x0FFF
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonUp, "UP"},
	{ButtonDown, "DOWN"},
	{ButtonLeft, "LEFT"},
	{ButtonRight, "RIGHT"},
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonC, "C"},
	{ButtonX, "X"},
	{ButtonY, "Y"},
	{ButtonZ, "Z"},
	{ButtonStart, "START"},
	{ButtonMode, "MODE"},
}

// Has reports whether any bit of mask is set
func (b Buttons) Has(mask Buttons) bool { return b&mask != 0 }

func (b Buttons) String() string {
	if b == 0 {
		return "-"
	}
	var parts []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Joypad turns a per-frame held mask into held/changed pairs
type Joypad struct {
	prev Buttons
}

// Latch records this frame's held buttons
// changed has a bit set for every button that went up or down since the last Latch
func (j *Joypad) Latch(held Buttons) (state, changed Buttons) {
	held &= ButtonAll
	changed = held ^ j.prev
	j.prev = held
	return held, changed
}

// Pressed filters a changed mask down to buttons that just went down
func Pressed(state, changed Buttons) Buttons {
	return state & changed
}
