package constant

// Anim indexes the animation table of an actor sprite
type Anim uint8

// Player animation indices, ordered as in the player sprite sheet
const (
	AnimStand Anim = iota
	AnimWait
	AnimWalk
	AnimRun
	AnimBrake
	AnimUp
	AnimCrouch
	AnimRoll

	AnimCount
)

var animNames = [AnimCount]string{
	AnimStand:  "stand",
	AnimWait:   "wait",
	AnimWalk:   "walk",
	AnimRun:    "run",
	AnimBrake:  "brake",
	AnimUp:     "up",
	AnimCrouch: "crouch",
	AnimRoll:   "roll",
}

func (a Anim) String() string {
	if a < AnimCount {
		return animNames[a]
	}
	return "unknown"
}
