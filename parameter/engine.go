package parameter

import "time"

// Frame timing
const (
	// FrameRate matches the NTSC vertical refresh the physics constants assume
	FrameRate = 60

	FrameInterval = time.Second / FrameRate

	// KeyHoldFrames keeps a terminal key pressed for this many frames after its last repeat
	// Terminals report presses only; auto-repeat refreshes the hold
	KeyHoldFrames = 8
)

// SpriteFrameTicks is how many frames each animation frame stays on screen
const SpriteFrameTicks = 5
