package constant

// Plane tile attribute word layout
// Bits are fixed by the video hardware the maps are authored for
const (
	TileIndexMask uint16 = 0x07FF  // Tile identifier, 0..2047
	TileHFlipBit  uint16 = 1 << 11 // Horizontal flip
	TileVFlipBit  uint16 = 1 << 12 // Vertical flip
	TilePalShift         = 13
	TilePalMask   uint16 = 3 << TilePalShift
	TilePrioBit   uint16 = 1 << 15
)

// Tile geometry in pixels
const (
	TileSize  = 8
	TileShift = 3
	TileMask  = TileSize - 1
)

// HeightFull is the profile value of a column filled to the tile top
// Sampling it means the ground may continue into the tile above
const HeightFull = 8
