// Package sprite defines the capability the motion core uses to drive an
// actor's visual, plus an animated sprite model renderers can embed.
package sprite

import "github.com/lixenwraith/hillside/constant"

// Handle is what an actor may do to its visual
// The core only writes through it and never reads back
type Handle interface {
	SetPosition(x, y int)
	SetHFlip(flip bool)
	SetAnimation(anim constant.Anim)
}

// Sheet describes an animation set
type Sheet struct {
	// FrameCount holds the number of frames per animation index
	FrameCount []int
	// FrameWidth and FrameHeight are the frame size in pixels
	FrameWidth, FrameHeight int
	// FrameTicks is how many frames each animation frame is shown
	FrameTicks int
}

// Sprite is a positioned, animated instance of a Sheet
type Sprite struct {
	sheet *Sheet

	X, Y  int
	HFlip bool

	anim      constant.Anim
	frame     int
	frameTime int
}

// New creates a sprite at animation 0, frame 0
func New(sheet *Sheet) *Sprite {
	return &Sprite{
		sheet:     sheet,
		frameTime: sheet.FrameTicks,
	}
}

func (s *Sprite) SetPosition(x, y int) {
	s.X = x
	s.Y = y
}

func (s *Sprite) SetHFlip(flip bool) {
	s.HFlip = flip
}

// SetAnimation switches animation and rewinds it
// Setting the current animation again keeps the frame running
func (s *Sprite) SetAnimation(anim constant.Anim) {
	if s.anim == anim {
		return
	}
	s.anim = anim
	s.frame = 0
	s.frameTime = s.sheet.FrameTicks
}

// Tick advances the frame timer by one display frame
func (s *Sprite) Tick() {
	if s.frameTime == 0 {
		count := s.frameCount()
		s.frame = (s.frame + 1) % count
		s.frameTime = s.sheet.FrameTicks
	}
	if s.frameTime > 0 {
		s.frameTime--
	}
}

func (s *Sprite) frameCount() int {
	if int(s.anim) < len(s.sheet.FrameCount) && s.sheet.FrameCount[s.anim] > 0 {
		return s.sheet.FrameCount[s.anim]
	}
	return 1
}

// Animation returns the current animation index
func (s *Sprite) Animation() constant.Anim { return s.anim }

// Frame returns the current frame within the animation
func (s *Sprite) Frame() int { return s.frame }

// Size returns the frame size in pixels
func (s *Sprite) Size() (w, h int) { return s.sheet.FrameWidth, s.sheet.FrameHeight }
