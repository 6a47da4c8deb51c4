package engine

import (
	"github.com/lixenwraith/hillside/constant"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/sprite"
)

// PlayerSheet lists frames per animation of the player sprite
var PlayerSheet = sprite.Sheet{
	FrameCount: []int{
		constant.AnimStand:  1,
		constant.AnimWait:   2,
		constant.AnimWalk:   6,
		constant.AnimRun:    4,
		constant.AnimBrake:  1,
		constant.AnimUp:     1,
		constant.AnimCrouch: 1,
		constant.AnimRoll:   5,
	},
	FrameWidth:  parameter.PlayerWidth,
	FrameHeight: parameter.PlayerHeight,
	FrameTicks:  parameter.SpriteFrameTicks,
}

var BazzbomberSheet = sprite.Sheet{
	FrameCount:  []int{2},
	FrameWidth:  parameter.BazzbomberWidth,
	FrameHeight: parameter.BazzbomberHeight,
	FrameTicks:  parameter.SpriteFrameTicks,
}
