// Package heightmap maps tile identifiers to per-column ground heights.
//
// A height profile holds one value per pixel column of an 8x8 tile:
// 0 means no ground, 1..8 is the ground height measured up from the tile
// bottom. Tables are built once and never mutated.
package heightmap

import (
	"errors"

	"github.com/lixenwraith/hillside/constant"
)

// Columns is the number of height samples per tile
const Columns = constant.TileSize

// Profile is the height of each pixel column of a tile
type Profile [Columns]uint8

var (
	ErrBadProfile = errors.New("heightmap: invalid height profile")
	ErrBadTileID  = errors.New("heightmap: invalid tile id")
)

// Table resolves tile id -> profile number -> column height
// Profile number 0 is reserved for tiles without collision
type Table struct {
	index    []uint8
	profiles []Profile
}

// New builds a table from a tile-id index and its profiles
// index[id] is 0 or a 1-based position in profiles
func New(index []uint8, profiles []Profile) (*Table, error) {
	if len(profiles) > 255 {
		return nil, ErrBadProfile
	}
	for _, p := range profiles {
		for _, h := range p {
			if h > constant.HeightFull {
				return nil, ErrBadProfile
			}
		}
	}
	for _, n := range index {
		if int(n) > len(profiles) {
			return nil, ErrBadProfile
		}
	}

	t := &Table{
		index:    make([]uint8, len(index)),
		profiles: make([]Profile, len(profiles)),
	}
	copy(t.index, index)
	copy(t.profiles, profiles)
	return t, nil
}

// Height returns the ground height of tileID at column col
// Unknown tiles and columns outside the tile yield 0
func (t *Table) Height(tileID uint16, col int) uint8 {
	if t == nil || int(tileID) >= len(t.index) || col < 0 || col >= Columns {
		return 0
	}
	n := t.index[tileID]
	if n == 0 {
		return 0
	}
	return t.profiles[n-1][col]
}

// ProfileOf returns the profile assigned to tileID, false when it has none
func (t *Table) ProfileOf(tileID uint16) (Profile, bool) {
	if t == nil || int(tileID) >= len(t.index) {
		return Profile{}, false
	}
	n := t.index[tileID]
	if n == 0 {
		return Profile{}, false
	}
	return t.profiles[n-1], true
}

// TileCount is the size of the tile-id index
func (t *Table) TileCount() int { return len(t.index) }

// ProfileCount is the number of distinct profiles
func (t *Table) ProfileCount() int { return len(t.profiles) }
