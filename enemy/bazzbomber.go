// Package enemy holds the scripted, non-colliding actors
package enemy

import (
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/sprite"
	"github.com/lixenwraith/hillside/vmath"
)

// Bazzbomber drifts left at a constant speed, ignoring terrain and the player
type Bazzbomber struct {
	PosX, PosY vmath.Fix32
	Speed      vmath.Fix32

	sprite sprite.Handle
}

// New spawns a Bazzbomber at a pixel position
func New(handle sprite.Handle, x, y int) *Bazzbomber {
	return &Bazzbomber{
		PosX:   vmath.FromInt(x),
		PosY:   vmath.FromInt(y),
		Speed:  parameter.BazzbomberSpeed,
		sprite: handle,
	}
}

// Update moves the enemy one frame to the left
// There is no despawn; PosX keeps decreasing off the left edge
func (b *Bazzbomber) Update() {
	b.PosX -= b.Speed
}

// Sprite returns the visual handle
func (b *Bazzbomber) Sprite() sprite.Handle { return b.sprite }
