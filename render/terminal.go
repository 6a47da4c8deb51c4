// Package render draws a World into a terminal through tcell.
//
// One terminal cell covers CellWidth x CellHeight map pixels, so an 8 px tile
// spans two columns and one row. Ground cells use block elements sized from
// the tile's height profile, which keeps slopes readable.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hillside/constant"
	"github.com/lixenwraith/hillside/engine"
	"github.com/lixenwraith/hillside/heightmap"
	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/sprite"
	"github.com/lixenwraith/hillside/tilemap"
)

// Cell size in map pixels
const (
	CellWidth  = 4
	CellHeight = 8
)

// Visible body of the player inside its 48x48 frame
const (
	playerBodyX = 16
	playerBodyY = 8
	playerBodyW = 16
	playerBodyH = 32
)

// blocks indexes lower block elements by eighths
var blocks = []rune(" ▁▂▃▄▅▆▇█")

// TerminalRenderer draws the playfield and a status line
type TerminalRenderer struct {
	screen tcell.Screen

	// Screen size in map pixels; terminal cells beyond it stay blank
	viewWidth, viewHeight int

	showStatus bool
}

// NewTerminalRenderer creates a renderer for a view of the given pixel size
func NewTerminalRenderer(screen tcell.Screen, viewWidth, viewHeight int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:     screen,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
		showStatus: true,
	}
}

// SetStatus toggles the status line
func (r *TerminalRenderer) SetStatus(on bool) { r.showStatus = on }

// Cells returns the playfield size in terminal cells
func (r *TerminalRenderer) Cells() (cols, rows int) {
	return r.viewWidth / CellWidth, r.viewHeight / CellHeight
}

// Draw renders one frame and shows it
func (r *TerminalRenderer) Draw(w *engine.World) {
	r.screen.Clear()

	cols, rows := r.Cells()
	sw, sh := r.screen.Size()
	cols = min(cols, sw)
	rows = min(rows, sh-1)

	nx, ny := w.Level.Near.Scroll()
	fx, fy := w.Level.Far.Scroll()

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			px, py := cx*CellWidth, cy*CellHeight
			ch, style, ok := r.nearCell(w.Level.Near, w.Level.Heights, nx+px, ny+py)
			if !ok {
				ch, style = r.farCell(w.Level.Far, fx+px, fy+py)
			}
			r.screen.SetContent(cx, cy, ch, nil, style)
		}
	}

	r.drawEnemy(w.EnemySprite(), cols, rows)
	r.drawPlayer(w.PlayerSprite(), cols, rows)

	if r.showStatus && sh > 0 {
		r.drawStatus(w, sw, sh-1)
	}

	r.screen.Show()
}

// nearCell returns the glyph of the near plane for the cell whose top-left is map pixel (x, y)
// ok is false where the near plane is empty and the far plane shows through
func (r *TerminalRenderer) nearCell(m *tilemap.Map, heights *heightmap.Table, x, y int) (rune, tcell.Style, bool) {
	solid := 0
	surface := level.TileEmpty
	flower := false
	for dy := 0; dy < CellHeight; dy++ {
		for dx := 0; dx < CellWidth; dx++ {
			id, ok := solidAt(m, heights, x+dx, y+dy)
			if id == level.TileFlower {
				flower = true
			}
			if !ok {
				continue
			}
			if surface == level.TileEmpty {
				surface = id
			}
			solid++
		}
	}

	if solid == 0 {
		if flower {
			return '✿', tcell.StyleDefault.Foreground(RgbFlower).Background(RgbSky), true
		}
		return 0, tcell.StyleDefault, false
	}

	fg := RgbGrass
	switch surface {
	case level.TileFill:
		fg = RgbDirt
	case level.TilePlatform:
		fg = RgbPlatform
	}
	eighths := (solid + CellWidth/2) / CellWidth
	return blocks[max(eighths, 1)], tcell.StyleDefault.Foreground(fg).Background(RgbSky), true
}

// solidAt reports whether map pixel (x, y) is inside ground, and the tile there
func solidAt(m *tilemap.Map, heights *heightmap.Table, x, y int) (uint16, bool) {
	id, hflip := m.Tile(x>>constant.TileShift, y>>constant.TileShift)
	if id == level.TileEmpty {
		return id, false
	}
	col := x & constant.TileMask
	if hflip {
		col = constant.TileMask - col
	}
	h := int(heights.Height(id, col))
	return id, y&constant.TileMask >= constant.TileSize-h
}

// farCell returns the far plane glyph; the plane wraps horizontally
func (r *TerminalRenderer) farCell(m *tilemap.Map, x, y int) (rune, tcell.Style) {
	sky := tcell.StyleDefault.Background(RgbSky)
	if m.Width() == 0 {
		return ' ', sky
	}
	tx := (x >> constant.TileShift) % m.Width()
	if tx < 0 {
		tx += m.Width()
	}
	id, _ := m.Tile(tx, y>>constant.TileShift)
	switch id {
	case level.FarCloud:
		return '░', sky.Foreground(RgbCloud)
	case level.FarRidgeTop:
		return '▲', sky.Foreground(RgbRidge)
	case level.FarRidge:
		return '█', sky.Foreground(RgbRidgeDark)
	}
	return ' ', sky
}

func (r *TerminalRenderer) drawPlayer(s *sprite.Sprite, cols, rows int) {
	ch := playerGlyph(s)
	style := tcell.StyleDefault.Foreground(RgbPlayer).Background(RgbSky)
	if s.Animation() == constant.AnimRoll {
		style = style.Foreground(RgbPlayerRoll)
	}
	r.fillPixels(s.X+playerBodyX, s.Y+playerBodyY, playerBodyW, playerBodyH, ch, style, cols, rows)
}

func (r *TerminalRenderer) drawEnemy(s *sprite.Sprite, cols, rows int) {
	w, h := s.Size()
	ch := '≈'
	if s.Frame()%2 == 1 {
		ch = '~'
	}
	r.fillPixels(s.X, s.Y, w, h, ch, tcell.StyleDefault.Foreground(RgbEnemy).Background(RgbSky), cols, rows)
}

// fillPixels paints every cell overlapping the pixel rectangle
func (r *TerminalRenderer) fillPixels(x, y, w, h int, ch rune, style tcell.Style, cols, rows int) {
	x0, y0 := floorDiv(x, CellWidth), floorDiv(y, CellHeight)
	x1, y1 := floorDiv(x+w-1, CellWidth), floorDiv(y+h-1, CellHeight)
	for cy := max(y0, 0); cy <= min(y1, rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, cols-1); cx++ {
			r.screen.SetContent(cx, cy, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatus(w *engine.World, width, row int) {
	p := w.Player
	cx, cy := w.Camera.Position()
	text := fmt.Sprintf(" x:%6.1f y:%6.1f vx:%5.2f vy:%5.2f %-6s cam:%d,%d frame:%d",
		p.PosX.Float(), p.PosY.Float(), p.MovX.Float(), p.MovY.Float(),
		p.Animation(), cx, cy, w.Frame())

	style := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	i := 0
	for _, ch := range text {
		if i >= width {
			break
		}
		r.screen.SetContent(i, row, ch, nil, style)
		i++
	}
	for ; i < width; i++ {
		r.screen.SetContent(i, row, ' ', nil, style)
	}
}

func playerGlyph(s *sprite.Sprite) rune {
	switch s.Animation() {
	case constant.AnimRoll:
		return 'O'
	case constant.AnimBrake:
		return '!'
	case constant.AnimCrouch:
		return 'v'
	case constant.AnimUp:
		return '^'
	case constant.AnimWalk, constant.AnimRun:
		if s.HFlip {
			return '<'
		}
		return '>'
	}
	return '@'
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
