// Package level builds playable stages: the demo tileset with its collision
// profiles and a seeded generator for the near and far planes.
package level

import "github.com/lixenwraith/hillside/heightmap"

// Near plane tile ids
// Descending slopes reuse the ascending tiles with the flip bit set
const (
	TileEmpty      uint16 = 0
	TileFill       uint16 = 1 // Solid ground below the surface
	TileTop        uint16 = 2 // Flat surface
	TileSlope      uint16 = 3 // 45 degree rise, one row per tile
	TileGentleLow  uint16 = 4 // Lower half of a 2-tile rise
	TileGentleHigh uint16 = 5 // Upper half of a 2-tile rise
	TilePlatform   uint16 = 6 // One-way ledge, half height
	TileFlower     uint16 = 7 // Decoration, no collision

	NearTileCount = 8
)

// Far plane tile ids, a separate tileset without collision
const (
	FarSky      uint16 = 0
	FarCloud    uint16 = 1
	FarRidgeTop uint16 = 2
	FarRidge    uint16 = 3

	FarTileCount = 4
)

// DemoCollision returns the collision profiles of the near tileset
// TileFlower is deliberately absent
func DemoCollision() heightmap.CollisionMap {
	return heightmap.CollisionMap{
		TileFill:       {8, 8, 8, 8, 8, 8, 8, 8},
		TileTop:        {8, 8, 8, 8, 8, 8, 8, 8},
		TileSlope:      {1, 2, 3, 4, 5, 6, 7, 8},
		TileGentleLow:  {1, 1, 2, 2, 3, 3, 4, 4},
		TileGentleHigh: {5, 5, 6, 6, 7, 7, 8, 8},
		TilePlatform:   {4, 4, 4, 4, 4, 4, 4, 4},
	}
}

// UseCollision swaps the level's height profiles for cm
// The tile layout is unchanged, so cm should cover the near tileset ids
func (l *Level) UseCollision(cm heightmap.CollisionMap) error {
	heights, err := cm.Compile()
	if err != nil {
		return err
	}
	l.Collision = cm
	l.Heights = heights
	return nil
}
