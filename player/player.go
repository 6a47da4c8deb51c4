// Package player implements the player-controlled actor: input to velocity,
// velocity to position, slope-aware ground collision and animation state.
package player

import (
	"github.com/lixenwraith/hillside/constant"
	"github.com/lixenwraith/hillside/input"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/sprite"
	"github.com/lixenwraith/hillside/vmath"
)

// TileSource answers tile queries against the collision layer
// Coordinates outside the map must read as tile 0
type TileSource interface {
	Tile(tx, ty int) (id uint16, hflip bool)
}

// HeightSource returns a tile's ground height at a pixel column, 0..8
type HeightSource interface {
	Height(tileID uint16, col int) uint8
}

// Cue is a discrete event raised during Update or DoJoyAction
type Cue uint8

const (
	CueJump Cue = iota
	CueBrake
	CueRespawn
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueBrake:
		return "brake"
	case CueRespawn:
		return "respawn"
	}
	return "unknown"
}

// CueListener receives cues synchronously, it must not call back into the Player
type CueListener interface {
	OnCue(c Cue)
}

// Config holds construction-time tunables and level extents
type Config struct {
	// MapWidth and MapHeight are the collision layer size in pixels
	MapWidth, MapHeight int

	StartX    vmath.Fix32
	MaxSpeed  vmath.Fix32
	JumpSpeed vmath.Fix32
	Gravity   vmath.Fix32
}

// DefaultConfig returns the stock tunables for a map of the given pixel size
func DefaultConfig(mapWidth, mapHeight int) Config {
	return Config{
		MapWidth:  mapWidth,
		MapHeight: mapHeight,
		StartX:    vmath.FromInt(parameter.PlayerStartX),
		MaxSpeed:  parameter.PlayerMaxSpeed,
		JumpSpeed: parameter.PlayerJumpSpeed,
		Gravity:   parameter.PlayerGravity,
	}
}

// Player is the controllable actor
// PosX/PosY are the sprite top-left in map pixels
type Player struct {
	XOrder, YOrder int
	MovX, MovY     vmath.Fix32
	PosX, PosY     vmath.Fix32
	HFlip          bool

	MaxSpeed  vmath.Fix32
	JumpSpeed vmath.Fix32
	Gravity   vmath.Fix32

	anim constant.Anim

	minPosX, maxPosX vmath.Fix32
	maxPosY          vmath.Fix32
	fallLimit        vmath.Fix32

	sprite  sprite.Handle
	tiles   TileSource
	heights HeightSource
	cues    CueListener
}

// New places a player at the configured start column, resting height MaxPosY
// Nil tiles or heights read as empty map: the player falls until respawned
func New(handle sprite.Handle, tiles TileSource, heights HeightSource, cfg Config) *Player {
	p := &Player{
		MaxSpeed:  cfg.MaxSpeed,
		JumpSpeed: cfg.JumpSpeed,
		Gravity:   cfg.Gravity,
		anim:      constant.AnimStand,
		minPosX:   vmath.FromInt(parameter.PlayerMinPosX),
		maxPosX:   vmath.FromInt(cfg.MapWidth - parameter.PlayerMaxPosXMargin),
		maxPosY:   vmath.FromInt(cfg.MapHeight - parameter.PlayerMaxPosYMargin),
		fallLimit: vmath.FromInt(cfg.MapHeight),
		sprite:    handle,
		tiles:     tiles,
		heights:   heights,
	}
	p.PosX = cfg.StartX
	p.PosY = p.maxPosY
	return p
}

// SetCueListener attaches a cue receiver, nil detaches
func (p *Player) SetCueListener(l CueListener) {
	p.cues = l
}

// Animation returns the animation selected by the last Update
func (p *Player) Animation() constant.Anim { return p.anim }

// MaxPosY is the spawn height; respawns land 100 px above it
func (p *Player) MaxPosY() vmath.Fix32 { return p.maxPosY }

// Grounded reports whether vertical speed is zero, the jump precondition
func (p *Player) Grounded() bool { return p.MovY == 0 }

// HandleInput derives movement orders from held buttons
// Up beats down and left beats right when both are held
func (p *Player) HandleInput(held input.Buttons) {
	if held.Has(input.ButtonUp) {
		p.YOrder = -1
	} else if held.Has(input.ButtonDown) {
		p.YOrder = +1
	} else {
		p.YOrder = 0
	}

	if held.Has(input.ButtonLeft) {
		p.XOrder = -1
	} else if held.Has(input.ButtonRight) {
		p.XOrder = +1
	} else {
		p.XOrder = 0
	}
}

// DoJoyAction handles a pad event: a fresh press of any action button jumps
// when grounded; presses while airborne are ignored
func (p *Player) DoJoyAction(changed, state input.Buttons) {
	if !input.Pressed(state, changed).Has(input.ButtonAction) {
		return
	}
	if p.MovY == 0 {
		p.MovY = -p.JumpSpeed
		p.emit(CueJump)
	}
}

// Update advances the player by one frame
// Must run after HandleInput and before the camera reads the position
func (p *Player) Update() {
	p.accelerate()

	p.PosX += p.MovX
	p.PosY += p.MovY

	p.recoverFall()
	p.collideGround()
	p.clipX()
	p.selectAnimation()
	p.updateFacing()
}

func (p *Player) accelerate() {
	accel := parameter.PlayerAccel

	switch {
	case p.XOrder > 0:
		p.MovX += accel
		// Reversing: brake twice as hard
		if p.MovX < 0 {
			p.MovX += accel
		}
		if p.MovX >= p.MaxSpeed {
			p.MovX = p.MaxSpeed
		}
	case p.XOrder < 0:
		p.MovX -= accel
		if p.MovX > 0 {
			p.MovX -= accel
		}
		if p.MovX <= -p.MaxSpeed {
			p.MovX = -p.MaxSpeed
		}
	default:
		p.MovX = friction(p.MovX)
	}
}

// friction decays coasting speed without division
func friction(v vmath.Fix32) vmath.Fix32 {
	switch {
	case v < parameter.FrictionStopBand && v > -parameter.FrictionStopBand:
		return 0
	case v < parameter.FrictionNearBand && v > -parameter.FrictionNearBand:
		return v - v>>parameter.FrictionNearShift
	case v < parameter.FrictionLowBand && v > -parameter.FrictionLowBand:
		return v - v>>parameter.FrictionLowShift
	default:
		return v - v>>parameter.FrictionHighShift
	}
}

// recoverFall puts a player who dropped below the map back up and behind
func (p *Player) recoverFall() {
	if p.PosY <= p.fallLimit {
		return
	}
	p.PosY = p.maxPosY - vmath.FromInt(parameter.PlayerRespawnRise)
	p.PosX -= vmath.FromInt(parameter.PlayerRespawnBackoff)
	p.MovX = 0
	p.MovY = 0
	p.emit(CueRespawn)
}

// collideGround samples the tile under the foot sensor and rests the player on it
// Rising players pass through, so platforms can be jumped onto from below
func (p *Player) collideGround() {
	footY := p.PosY.Int() + parameter.PlayerFootOffsetY
	footX := p.PosX.Int() + parameter.PlayerFootOffsetX
	tileY := footY >> constant.TileShift
	tileX := footX >> constant.TileShift
	col := footX - tileX<<constant.TileShift

	id, hflip := p.tileAt(tileX, tileY)
	height := p.sampleHeight(id, hflip, col)

	if id != 0 && height != 0 && p.MovY >= 0 {
		// Full column: the slope may continue into the tile above
		if height == constant.HeightFull {
			if aboveID, aboveFlip := p.tileAt(tileX, tileY-1); aboveID != 0 {
				height = p.sampleHeight(aboveID, aboveFlip, col)
				tileY--
			}
		}

		offsetY := (tileY+1)<<constant.TileShift - int(height) - footY
		p.PosY += vmath.FromInt(offsetY)
		p.MovY = 0
		return
	}

	p.MovY += p.Gravity
}

// tileAt reads the collision layer; without one every query is tile 0
func (p *Player) tileAt(tx, ty int) (uint16, bool) {
	if p.tiles == nil {
		return 0, false
	}
	return p.tiles.Tile(tx, ty)
}

func (p *Player) sampleHeight(id uint16, hflip bool, col int) uint8 {
	if id == 0 || p.heights == nil {
		return 0
	}
	if hflip {
		col = constant.TileMask - col
	}
	return p.heights.Height(id, col)
}

func (p *Player) clipX() {
	if p.PosX >= p.maxPosX {
		p.PosX = p.maxPosX
		p.MovX = 0
	} else if p.PosX <= p.minPosX {
		p.PosX = p.minPosX
		p.MovX = 0
	}
}

// selectAnimation picks the first matching state: roll, brake, run, walk, idle
func (p *Player) selectAnimation() {
	if p.MovY != 0 {
		p.setAnim(constant.AnimRoll)
		return
	}

	braking := (p.MovX >= parameter.PlayerBrakeSpeed && p.XOrder < 0) ||
		(p.MovX <= -parameter.PlayerBrakeSpeed && p.XOrder > 0)

	switch {
	case braking:
		// Cue only on entering the brake
		if p.anim != constant.AnimBrake {
			p.setAnim(constant.AnimBrake)
			p.emit(CueBrake)
		}
	case p.MovX >= parameter.PlayerRunSpeed || p.MovX <= -parameter.PlayerRunSpeed:
		p.setAnim(constant.AnimRun)
	case p.MovX != 0:
		p.setAnim(constant.AnimWalk)
	case p.YOrder < 0:
		p.setAnim(constant.AnimUp)
	case p.YOrder > 0:
		p.setAnim(constant.AnimCrouch)
	default:
		p.setAnim(constant.AnimStand)
	}
}

func (p *Player) setAnim(a constant.Anim) {
	p.anim = a
	if p.sprite != nil {
		p.sprite.SetAnimation(a)
	}
}

// updateFacing keeps the last direction while standing still
func (p *Player) updateFacing() {
	if p.MovX > 0 {
		p.HFlip = false
	} else if p.MovX < 0 {
		p.HFlip = true
	}
}

func (p *Player) emit(c Cue) {
	if p.cues != nil {
		p.cues.OnCue(c)
	}
}

// Sprite returns the visual handle
func (p *Player) Sprite() sprite.Handle { return p.sprite }
