// Package camera implements a dead-zone follow camera over a bounded map
// with a near layer locked to the camera and a slower far layer.
package camera

import (
	"math"

	"github.com/lixenwraith/hillside/parameter"
)

// Camera tracks a target's top-left in map pixels
// All coordinates are s16 like the plane scroll registers they feed
type Camera struct {
	camX, camY int16
	nearX      int16
	nearY      int16
	farX       int16
	farY       int16

	maxX, maxY int16
}

// New creates a camera at the map origin
// mapW/mapH and screenW/screenH are in pixels; a map smaller than the screen pins the camera at 0
// Limits beyond the s16 range saturate at math.MaxInt16
func New(mapW, mapH, screenW, screenH int) *Camera {
	return &Camera{
		maxX: int16(min(max(mapW-screenW, 0), math.MaxInt16)),
		maxY: int16(min(max(mapH-screenH, 0), math.MaxInt16)),
	}
}

// CenterOn moves the camera so the target stays inside the dead zone
// Returns whether the camera moved
func (c *Camera) CenterOn(x, y int16) bool {
	scrX := x - c.camX
	scrY := y - c.camY

	nx, ny := c.camX, c.camY

	if scrX > parameter.CameraDeadZoneRight {
		nx = x - parameter.CameraDeadZoneRight
	} else if scrX < parameter.CameraDeadZoneLeft {
		nx = x - parameter.CameraDeadZoneLeft
	}
	if scrY > parameter.CameraDeadZoneBottom {
		ny = y - parameter.CameraDeadZoneBottom
	} else if scrY < parameter.CameraDeadZoneTop {
		ny = y - parameter.CameraDeadZoneTop
	}

	if nx < 0 {
		nx = 0
	} else if nx > c.maxX {
		nx = c.maxX
	}
	if ny < 0 {
		ny = 0
	} else if ny > c.maxY {
		ny = c.maxY
	}

	return c.SetPosition(nx, ny)
}

// SetPosition places the camera and derives both layer offsets
// No-op when the position is unchanged
func (c *Camera) SetPosition(x, y int16) bool {
	if x == c.camX && y == c.camY {
		return false
	}
	c.camX, c.camY = x, y

	c.nearX, c.nearY = x, y

	// Per-axis shifts differ on purpose
	c.farX = x >> parameter.CameraFarShiftX
	c.farY = y >> parameter.CameraFarShiftY
	return true
}

// Position returns the camera top-left in map pixels
func (c *Camera) Position() (x, y int16) { return c.camX, c.camY }

// NearLayer returns the near plane scroll offset
func (c *Camera) NearLayer() (x, y int16) { return c.nearX, c.nearY }

// FarLayer returns the far plane scroll offset
func (c *Camera) FarLayer() (x, y int16) { return c.farX, c.farY }

// Bounds returns the largest camera position on each axis
func (c *Camera) Bounds() (maxX, maxY int16) { return c.maxX, c.maxY }

// ToScreen converts a map pixel position to screen space
func (c *Camera) ToScreen(x, y int) (int, int) {
	return x - int(c.camX), y - int(c.camY)
}
