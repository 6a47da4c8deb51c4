// Package engine owns the per-frame sequencing of the actors, the camera and
// the scroll planes, and drives it at a fixed rate.
package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hillside/camera"
	"github.com/lixenwraith/hillside/enemy"
	"github.com/lixenwraith/hillside/input"
	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/player"
	"github.com/lixenwraith/hillside/sprite"
	"github.com/lixenwraith/hillside/vmath"
)

// Config holds the actor tunables; map extents come from the level
type Config struct {
	ScreenWidth, ScreenHeight int

	PlayerStartX int
	MaxSpeed     vmath.Fix32
	JumpSpeed    vmath.Fix32
	Gravity      vmath.Fix32

	EnemyX, EnemyY int
}

// DefaultConfig returns the stock tunables
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  parameter.ScreenWidth,
		ScreenHeight: parameter.ScreenHeight,
		PlayerStartX: parameter.PlayerStartX,
		MaxSpeed:     parameter.PlayerMaxSpeed,
		JumpSpeed:    parameter.PlayerJumpSpeed,
		Gravity:      parameter.PlayerGravity,
		EnemyX:       parameter.BazzbomberSpawnX,
		EnemyY:       parameter.BazzbomberSpawnY,
	}
}

// World is one running stage
// Not safe for concurrent use; the scheduler goroutine is its only writer
type World struct {
	Level  *level.Level
	Player *player.Player
	Enemy  *enemy.Bazzbomber
	Camera *camera.Camera

	playerSprite *sprite.Sprite
	enemySprite  *sprite.Sprite

	pad   input.Joypad
	frame uint64

	// scrollCommits counts frames that pushed new offsets to the planes
	scrollCommits uint64

	cues *CueFanout
	log  zerolog.Logger
}

// NewWorld places the actors on a generated level
func NewWorld(lvl *level.Level, cfg Config, log zerolog.Logger) *World {
	w := &World{
		Level:        lvl,
		playerSprite: sprite.New(&PlayerSheet),
		enemySprite:  sprite.New(&BazzbomberSheet),
		log:          log,
	}

	mapW, mapH := lvl.PixelSize()
	pcfg := player.DefaultConfig(mapW, mapH)
	pcfg.StartX = vmath.FromInt(cfg.PlayerStartX)
	pcfg.MaxSpeed = cfg.MaxSpeed
	pcfg.JumpSpeed = cfg.JumpSpeed
	pcfg.Gravity = cfg.Gravity

	w.Player = player.New(w.playerSprite, lvl.Near, lvl.Heights, pcfg)
	w.Enemy = enemy.New(w.enemySprite, cfg.EnemyX, cfg.EnemyY)
	w.Camera = camera.New(mapW, mapH, cfg.ScreenWidth, cfg.ScreenHeight)

	w.cues = NewCueFanout(NewCueLog(log, w.Frame))
	w.Player.SetCueListener(w.cues)

	log.Info().
		Int("mapWidth", mapW).
		Int("mapHeight", mapH).
		Int("spawnRow", lvl.SpawnRow).
		Msg("world created")
	return w
}

// AddCueListener subscribes l to player cues in addition to the log
func (w *World) AddCueListener(l player.CueListener) {
	w.cues.Add(l)
}

// Step runs one frame with the given held buttons
// Order matters: the camera must see this frame's player position
func (w *World) Step(held input.Buttons) {
	// 1. Pad latch and event dispatch
	state, changed := w.pad.Latch(held)
	if changed != 0 {
		w.Player.DoJoyAction(changed, state)
	}

	// 2. Actors
	w.Player.HandleInput(state)
	w.Player.Update()
	w.Enemy.Update()

	// 3. Camera
	moved := w.Camera.CenterOn(int16(w.Player.PosX.Int()), int16(w.Player.PosY.Int()))

	// 4. Screen space
	x, y := w.Camera.ToScreen(w.Player.PosX.Int(), w.Player.PosY.Int())
	w.playerSprite.SetPosition(x, y)
	w.playerSprite.SetHFlip(w.Player.HFlip)
	x, y = w.Camera.ToScreen(w.Enemy.PosX.Int(), w.Enemy.PosY.Int())
	w.enemySprite.SetPosition(x, y)

	w.playerSprite.Tick()
	w.enemySprite.Tick()

	// 5. Scroll commit
	if moved || w.frame == 0 {
		nx, ny := w.Camera.NearLayer()
		fx, fy := w.Camera.FarLayer()
		w.Level.Near.ScrollTo(int(nx), int(ny))
		w.Level.Far.ScrollTo(int(fx), int(fy))
		w.scrollCommits++
	}

	w.frame++

	if e := w.log.Trace(); e.Enabled() {
		e.Uint64("frame", w.frame).
			Stringer("held", held).
			Int32("posX", int32(w.Player.PosX)).
			Int32("posY", int32(w.Player.PosY)).
			Int32("movX", int32(w.Player.MovX)).
			Int32("movY", int32(w.Player.MovY)).
			Stringer("anim", w.Player.Animation()).
			Msg("frame")
	}
}

// Run steps n frames from src without pacing
// Stops early when src reports it is done
func (w *World) Run(src InputSource, n int) {
	for i := 0; i < n; i++ {
		if sourceDone(src) {
			return
		}
		w.Step(src.Buttons())
	}
}

// Frame is the number of completed steps
func (w *World) Frame() uint64 { return w.frame }

// ScrollCommits is the number of frames that updated plane offsets
func (w *World) ScrollCommits() uint64 { return w.scrollCommits }

// PlayerSprite returns the player's animated sprite for renderers
func (w *World) PlayerSprite() *sprite.Sprite { return w.playerSprite }

// EnemySprite returns the enemy's animated sprite for renderers
func (w *World) EnemySprite() *sprite.Sprite { return w.enemySprite }

// Checksum hashes the simulation state
// Equal input sequences on equal levels give equal checksums
func (w *World) Checksum() uint64 {
	var buf [64]byte
	b := buf[:0]

	b = binary.LittleEndian.AppendUint64(b, w.frame)
	for _, v := range []vmath.Fix32{
		w.Player.PosX, w.Player.PosY, w.Player.MovX, w.Player.MovY,
		w.Enemy.PosX, w.Enemy.PosY,
	} {
		b = binary.LittleEndian.AppendUint32(b, uint32(v))
	}
	cx, cy := w.Camera.Position()
	fx, fy := w.Camera.FarLayer()
	for _, v := range []int16{cx, cy, fx, fy} {
		b = binary.LittleEndian.AppendUint16(b, uint16(v))
	}
	flip := byte(0)
	if w.Player.HFlip {
		flip = 1
	}
	b = append(b, byte(w.Player.Animation()), flip)

	return xxhash.Sum64(b)
}
