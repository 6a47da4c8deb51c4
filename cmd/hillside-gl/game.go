package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/hillside/constant"
	"github.com/lixenwraith/hillside/engine"
	"github.com/lixenwraith/hillside/input"
	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/render"
)

// keyButtons maps held window keys to pad buttons
var keyButtons = []struct {
	key ebiten.Key
	b   input.Buttons
}{
	{ebiten.KeyArrowUp, input.ButtonUp},
	{ebiten.KeyArrowDown, input.ButtonDown},
	{ebiten.KeyArrowLeft, input.ButtonLeft},
	{ebiten.KeyArrowRight, input.ButtonRight},
	{ebiten.KeyK, input.ButtonUp},
	{ebiten.KeyJ, input.ButtonDown},
	{ebiten.KeyH, input.ButtonLeft},
	{ebiten.KeyL, input.ButtonRight},
	{ebiten.KeySpace, input.ButtonA},
	{ebiten.KeyZ, input.ButtonA},
	{ebiten.KeyX, input.ButtonB},
	{ebiten.KeyC, input.ButtonC},
	{ebiten.KeyA, input.ButtonX},
	{ebiten.KeyS, input.ButtonY},
	{ebiten.KeyD, input.ButtonZ},
	{ebiten.KeyEnter, input.ButtonStart},
	{ebiten.KeyM, input.ButtonMode},
}

var (
	colSky       = rgba(render.RgbSky)
	colCloud     = rgba(render.RgbCloud)
	colRidge     = rgba(render.RgbRidge)
	colRidgeDark = rgba(render.RgbRidgeDark)
	colGrass     = rgba(render.RgbGrass)
	colDirt      = rgba(render.RgbDirt)
	colPlatform  = rgba(render.RgbPlatform)
	colFlower    = rgba(render.RgbFlower)
	colPlayer    = rgba(render.RgbPlayer)
	colRoll      = rgba(render.RgbPlayerRoll)
	colEnemy     = rgba(render.RgbEnemy)
)

func rgba(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
}

// game adapts a World to ebiten's update/draw loop
// ebiten calls Update at the configured TPS, one world step per call
type game struct {
	world         *engine.World
	width, height int
	showStatus    bool
}

func newGame(w *engine.World, width, height int) *game {
	return &game{world: w, width: width, height: height, showStatus: true}
}

func heldButtons() input.Buttons {
	var held input.Buttons
	for _, kb := range keyButtons {
		if ebiten.IsKeyPressed(kb.key) {
			held |= kb.b
		}
	}
	return held
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showStatus = !g.showStatus
	}
	g.world.Step(heldButtons())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colSky)
	g.drawFar(screen)
	g.drawNear(screen)

	e := g.world.EnemySprite()
	w, h := e.Size()
	vector.FillRect(screen, float32(e.X), float32(e.Y), float32(w), float32(h), colEnemy, false)

	p := g.world.PlayerSprite()
	body := colPlayer
	if p.Animation() == constant.AnimRoll {
		body = colRoll
	}
	vector.FillRect(screen, float32(p.X+16), float32(p.Y+8), 16, 32, body, false)

	if g.showStatus {
		pl := g.world.Player
		ebitenutil.DebugPrint(screen, fmt.Sprintf("x:%6.1f y:%6.1f vx:%5.2f %s",
			pl.PosX.Float(), pl.PosY.Float(), pl.MovX.Float(), pl.Animation()))
	}
}

// drawFar draws the wrapping background plane at its committed scroll
func (g *game) drawFar(screen *ebiten.Image) {
	m := g.world.Level.Far
	if m.Width() == 0 {
		return
	}
	sx, sy := m.Scroll()
	ts := constant.TileSize
	for ty := sy >> constant.TileShift; ty <= (sy+g.height)>>constant.TileShift; ty++ {
		for tx := sx >> constant.TileShift; tx <= (sx+g.width)>>constant.TileShift; tx++ {
			wx := ((tx % m.Width()) + m.Width()) % m.Width()
			id, _ := m.Tile(wx, ty)
			var c color.RGBA
			switch id {
			case level.FarCloud:
				c = colCloud
			case level.FarRidgeTop:
				c = colRidge
			case level.FarRidge:
				c = colRidgeDark
			default:
				continue
			}
			vector.FillRect(screen, float32(tx*ts-sx), float32(ty*ts-sy), float32(ts), float32(ts), c, false)
		}
	}
}

// drawNear draws each solid tile column up to its collision height
func (g *game) drawNear(screen *ebiten.Image) {
	m := g.world.Level.Near
	heights := g.world.Level.Heights
	sx, sy := m.Scroll()
	ts := constant.TileSize

	for ty := sy >> constant.TileShift; ty <= (sy+g.height)>>constant.TileShift; ty++ {
		for tx := sx >> constant.TileShift; tx <= (sx+g.width)>>constant.TileShift; tx++ {
			id, hflip := m.Tile(tx, ty)
			x0, y0 := float32(tx*ts-sx), float32(ty*ts-sy)

			switch id {
			case level.TileEmpty:
				continue
			case level.TileFill:
				vector.FillRect(screen, x0, y0, float32(ts), float32(ts), colDirt, false)
				continue
			case level.TileFlower:
				vector.FillRect(screen, x0+3, y0+4, 2, 4, colFlower, false)
				continue
			}

			c := colGrass
			if id == level.TilePlatform {
				c = colPlatform
			}
			for col := 0; col < ts; col++ {
				hc := col
				if hflip {
					hc = constant.TileMask - col
				}
				h := float32(heights.Height(id, hc))
				if h == 0 {
					continue
				}
				vector.FillRect(screen, x0+float32(col), y0+float32(ts)-h, 1, h, c, false)
			}
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
