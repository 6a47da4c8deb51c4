package level

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/hillside/constant"
	"github.com/lixenwraith/hillside/heightmap"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/tilemap"
	"github.com/lixenwraith/hillside/vmath"
)

var (
	ErrTooSmall = errors.New("level: map too small")
	ErrTooLarge = errors.New("level: map too large")
)

// Near plane size limits in tiles
// The upper bound keeps every pixel coordinate inside the s16 camera range
const (
	MinWidthTiles  = 64
	MinHeightTiles = 32
	MaxWidthTiles  = 4095
	MaxHeightTiles = 4095
)

// Generation shape, in tiles
const (
	spawnRun     = 40 // Flat ground under the spawn point
	finishRun    = 24 // Flat ground before the right edge
	maxPitWidth  = 6
	surfaceAbove = 24 // How far the surface may climb above the spawn row
	surfaceBelow = 12 // How far it may sink below
)

type Config struct {
	WidthTiles, HeightTiles       int
	FarWidthTiles, FarHeightTiles int

	// Seed drives every random choice; equal seeds give equal levels
	Seed uint64
}

// DefaultConfig returns the stock level size
func DefaultConfig() Config {
	return Config{
		WidthTiles:     parameter.LevelWidthTiles,
		HeightTiles:    parameter.LevelHeightTiles,
		FarWidthTiles:  parameter.FarLayerWidthTiles,
		FarHeightTiles: parameter.FarLayerHeightTiles,
		Seed:           parameter.LevelSeed,
	}
}

// Level is a generated stage
type Level struct {
	Near *tilemap.Map
	Far  *tilemap.Map

	Collision heightmap.CollisionMap
	Heights   *heightmap.Table

	// Surface holds the topmost solid row per column, -1 over pits
	Surface []int
	// SpawnRow is the surface row under the player spawn
	SpawnRow int
}

// PixelSize returns the near plane size in pixels
func (l *Level) PixelSize() (w, h int) {
	return l.Near.PixelWidth(), l.Near.PixelHeight()
}

// Generate builds a level: flat spawn area, then random segments of flats,
// slopes, pits and one-way platforms, then a flat finish
func Generate(cfg Config) (*Level, error) {
	if cfg.WidthTiles < MinWidthTiles || cfg.HeightTiles < MinHeightTiles {
		return nil, fmt.Errorf("%dx%d tiles: %w", cfg.WidthTiles, cfg.HeightTiles, ErrTooSmall)
	}
	if cfg.WidthTiles > MaxWidthTiles || cfg.HeightTiles > MaxHeightTiles {
		return nil, fmt.Errorf("%dx%d tiles: %w", cfg.WidthTiles, cfg.HeightTiles, ErrTooLarge)
	}
	if cfg.FarWidthTiles <= 0 || cfg.FarHeightTiles <= 0 {
		return nil, fmt.Errorf("far plane %dx%d tiles: %w", cfg.FarWidthTiles, cfg.FarHeightTiles, ErrTooSmall)
	}

	collision := DemoCollision()
	heights, err := collision.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile demo collision: %w", err)
	}

	g := &generator{
		rng:     vmath.NewFastRand(cfg.Seed),
		near:    tilemap.New(cfg.WidthTiles, cfg.HeightTiles),
		surface: make([]int, cfg.WidthTiles),
	}

	// 1. Spawn row: the row a player resting at the spawn height stands on
	spawnY := cfg.HeightTiles*constant.TileSize - parameter.PlayerMaxPosYMargin + parameter.PlayerFootOffsetY
	g.spawnRow = clampInt(spawnY>>constant.TileShift, 4, cfg.HeightTiles-3)
	g.minRow = max(g.spawnRow-surfaceAbove, 4)
	g.maxRow = min(g.spawnRow+surfaceBelow, cfg.HeightTiles-3)
	g.row = g.spawnRow

	// 2. Spawn area
	g.flat(spawnRun, false)

	// 3. Body
	end := cfg.WidthTiles - finishRun
	for g.x < end {
		g.segment(end)
	}

	// 4. Finish
	g.flat(cfg.WidthTiles-g.x, false)

	return &Level{
		Near:      g.near,
		Far:       generateFar(cfg, vmath.NewFastRand(cfg.Seed^0x9E3779B97F4A7C15)),
		Collision: collision,
		Heights:   heights,
		Surface:   g.surface,
		SpawnRow:  g.spawnRow,
	}, nil
}

type generator struct {
	rng     *vmath.FastRand
	near    *tilemap.Map
	surface []int

	x              int
	row            int
	spawnRow       int
	minRow, maxRow int
}

func (g *generator) segment(end int) {
	room := end - g.x
	switch roll := g.rng.Intn(100); {
	case roll < 30:
		g.flat(min(g.rng.Range(6, 20), room), true)
	case roll < 45:
		g.slopes(g.rng.Range(1, 4), -1)
	case roll < 60:
		g.slopes(g.rng.Range(1, 4), +1)
	case roll < 70:
		g.gentle(g.rng.Range(1, 3), -1)
	case roll < 80:
		g.gentle(g.rng.Range(1, 3), +1)
	case roll < 90:
		if room < maxPitWidth+8 {
			g.flat(room, false)
			return
		}
		g.pit(g.rng.Range(3, maxPitWidth))
		g.flat(4, false)
	default:
		n := min(g.rng.Range(10, 18), room)
		g.flat(n, false)
		g.platform(g.x-n+2, n-4)
	}
}

// column writes a solid column whose surface tile sits at top
func (g *generator) column(top int, id uint16, hflip bool) {
	if g.x >= g.near.Width() {
		return
	}
	g.near.SetTile(g.x, top, id, hflip)
	for y := top + 1; y < g.near.Height(); y++ {
		g.near.SetTile(g.x, y, TileFill, false)
	}
	g.surface[g.x] = top
	g.x++
}

func (g *generator) flat(n int, flowers bool) {
	for i := 0; i < n; i++ {
		x := g.x
		g.column(g.row, TileTop, false)
		if flowers && g.rng.Intn(6) == 0 && x < g.near.Width() {
			g.near.SetTile(x, g.row-1, TileFlower, false)
		}
	}
}

// slopes climbs (dir -1) or descends (dir +1) one row per tile
func (g *generator) slopes(n, dir int) {
	for i := 0; i < n; i++ {
		if dir < 0 {
			if g.row-1 < g.minRow {
				g.flat(1, false)
				return
			}
			g.column(g.row-1, TileSlope, false)
			g.row--
		} else {
			if g.row+1 > g.maxRow {
				g.flat(1, false)
				return
			}
			g.column(g.row, TileSlope, true)
			g.row++
		}
	}
}

// gentle climbs or descends one row per two tiles
func (g *generator) gentle(n, dir int) {
	for i := 0; i < n; i++ {
		if dir < 0 {
			if g.row-1 < g.minRow {
				g.flat(1, false)
				return
			}
			g.column(g.row-1, TileGentleLow, false)
			g.column(g.row-1, TileGentleHigh, false)
			g.row--
		} else {
			if g.row+1 > g.maxRow {
				g.flat(1, false)
				return
			}
			g.column(g.row, TileGentleHigh, true)
			g.column(g.row, TileGentleLow, true)
			g.row++
		}
	}
}

func (g *generator) pit(n int) {
	for i := 0; i < n && g.x < g.near.Width(); i++ {
		g.surface[g.x] = -1
		g.x++
	}
}

// platform floats a one-way ledge above the columns starting at x
func (g *generator) platform(x, n int) {
	if n <= 0 {
		return
	}
	row := g.surface[x] - g.rng.Range(4, 7)
	if row < 1 {
		return
	}
	for i := 0; i < n; i++ {
		g.near.SetTile(x+i, row, TilePlatform, false)
	}
}

// generateFar fills the far plane with a ridge line and scattered clouds
func generateFar(cfg Config, rng *vmath.FastRand) *tilemap.Map {
	far := tilemap.New(cfg.FarWidthTiles, cfg.FarHeightTiles)
	h := cfg.FarHeightTiles

	ridgeMin, ridgeMax := h/2, h-2
	ridge := rng.Range(ridgeMin, ridgeMax)
	for x := 0; x < cfg.FarWidthTiles; x++ {
		ridge = clampInt(ridge+rng.Range(-1, 1), ridgeMin, ridgeMax)
		far.SetTile(x, ridge, FarRidgeTop, false)
		for y := ridge + 1; y < h; y++ {
			far.SetTile(x, y, FarRidge, false)
		}
	}

	clouds := cfg.FarWidthTiles / 6
	for i := 0; i < clouds; i++ {
		x := rng.Intn(cfg.FarWidthTiles)
		y := rng.Range(1, max(ridgeMin-3, 1))
		for dx := 0; dx < rng.Range(2, 5); dx++ {
			far.SetTile((x+dx)%cfg.FarWidthTiles, y, FarCloud, false)
		}
	}
	return far
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
