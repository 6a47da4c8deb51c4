package heightmap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/lixenwraith/hillside/constant"
)

// CollisionMap is the editor form of the collision data: tile id -> 8 heights
// Serialized as {"116": [8,8,8,8,8,8,8,8], ...}; null entries read as 0
type CollisionMap map[uint16]Profile

// DecodeJSON reads a collision map document
func DecodeJSON(r io.Reader) (CollisionMap, error) {
	var raw map[string][]*int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode collision map: %w", err)
	}

	cm := make(CollisionMap, len(raw))
	for key, heights := range raw {
		id, err := strconv.ParseUint(key, 10, 16)
		if err != nil || uint16(id) > constant.TileIndexMask {
			return nil, fmt.Errorf("tile %q: %w", key, ErrBadTileID)
		}
		if len(heights) != Columns {
			return nil, fmt.Errorf("tile %d has %d columns: %w", id, len(heights), ErrBadProfile)
		}
		var p Profile
		for i, h := range heights {
			if h == nil {
				continue
			}
			if *h < 0 || *h > constant.HeightFull {
				return nil, fmt.Errorf("tile %d column %d height %d: %w", id, i, *h, ErrBadProfile)
			}
			p[i] = uint8(*h)
		}
		cm[uint16(id)] = p
	}
	return cm, nil
}

// LoadJSON reads a collision map file and compiles it
func LoadJSON(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open collision map: %w", err)
	}
	defer f.Close()

	cm, err := DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cm.Compile()
}

// EncodeJSON writes the collision map in editor form
func (cm CollisionMap) EncodeJSON(w io.Writer) error {
	// []uint8 would encode as base64
	raw := make(map[string][]int, len(cm))
	for id, p := range cm {
		col := make([]int, Columns)
		for i, h := range p {
			col[i] = int(h)
		}
		raw[strconv.Itoa(int(id))] = col
	}
	return json.NewEncoder(w).Encode(raw)
}

// TileIDs returns the mapped tile ids in ascending order
func (cm CollisionMap) TileIDs() []uint16 {
	ids := make([]uint16, 0, len(cm))
	for id := range cm {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Compile assigns profile numbers in ascending tile id order, starting at 1
// The index spans 0..max(tile id)
func (cm CollisionMap) Compile() (*Table, error) {
	ids := cm.TileIDs()
	if len(ids) == 0 {
		return New(nil, nil)
	}
	if len(ids) > 255 {
		return nil, fmt.Errorf("%d profiles exceed the 8-bit index: %w", len(ids), ErrBadProfile)
	}

	index := make([]uint8, int(ids[len(ids)-1])+1)
	profiles := make([]Profile, 0, len(ids))
	for i, id := range ids {
		index[id] = uint8(i + 1)
		profiles = append(profiles, cm[id])
	}
	return New(index, profiles)
}
