// Package tilemap holds a background plane as attribute words and answers
// tile queries in tile coordinates.
package tilemap

import (
	"errors"

	"github.com/lixenwraith/hillside/constant"
)

var ErrSize = errors.New("tilemap: word count does not match dimensions")

// Map is a width x height grid of plane attribute words, row-major
type Map struct {
	width, height int
	words         []uint16

	scrollX, scrollY int
}

// New creates an empty map of the given size in tiles
func New(width, height int) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Map{
		width:  width,
		height: height,
		words:  make([]uint16, width*height),
	}
}

// FromWords wraps pre-built attribute words, copying them
func FromWords(width, height int, words []uint16) (*Map, error) {
	if width < 0 || height < 0 || len(words) != width*height {
		return nil, ErrSize
	}
	m := New(width, height)
	copy(m.words, words)
	return m, nil
}

// Word packs a tile id and flip flag into an attribute word
func Word(id uint16, hflip bool) uint16 {
	w := id & constant.TileIndexMask
	if hflip {
		w |= constant.TileHFlipBit
	}
	return w
}

// Decode splits an attribute word into tile id and horizontal flip
func Decode(word uint16) (id uint16, hflip bool) {
	return word & constant.TileIndexMask, word&constant.TileHFlipBit != 0
}

// Palette returns the palette line of an attribute word
func Palette(word uint16) int {
	return int(word&constant.TilePalMask) >> constant.TilePalShift
}

// Width in tiles
func (m *Map) Width() int { return m.width }

// Height in tiles
func (m *Map) Height() int { return m.height }

// PixelWidth is the map width in pixels
func (m *Map) PixelWidth() int { return m.width * constant.TileSize }

// PixelHeight is the map height in pixels
func (m *Map) PixelHeight() int { return m.height * constant.TileSize }

func (m *Map) inBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < m.width && ty < m.height
}

// WordAt returns the raw attribute word, 0 outside the map
func (m *Map) WordAt(tx, ty int) uint16 {
	if m == nil || !m.inBounds(tx, ty) {
		return 0
	}
	return m.words[ty*m.width+tx]
}

// Tile returns tile id and horizontal flip at a tile coordinate
// Coordinates outside the map read as the empty tile
func (m *Map) Tile(tx, ty int) (uint16, bool) {
	return Decode(m.WordAt(tx, ty))
}

// Set stores an attribute word; writes outside the map are dropped
func (m *Map) Set(tx, ty int, word uint16) {
	if !m.inBounds(tx, ty) {
		return
	}
	m.words[ty*m.width+tx] = word
}

// SetTile stores a tile id with flip
func (m *Map) SetTile(tx, ty int, id uint16, hflip bool) {
	m.Set(tx, ty, Word(id, hflip))
}

// ScrollTo records the plane scroll offset in pixels
func (m *Map) ScrollTo(x, y int) {
	m.scrollX = x
	m.scrollY = y
}

// Scroll returns the last offset passed to ScrollTo
func (m *Map) Scroll() (x, y int) {
	return m.scrollX, m.scrollY
}
