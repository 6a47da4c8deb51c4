package parameter

// Screen and level defaults, in pixels unless noted
const (
	ScreenWidth  = 320
	ScreenHeight = 224

	// Default level is 1280 tiles wide and 160 tall (10240 x 1280 px)
	LevelWidthTiles  = 1280
	LevelHeightTiles = 160

	// Far layer map size in tiles
	FarLayerWidthTiles  = 64
	FarLayerHeightTiles = 32

	LevelSeed = 0x5EED
)
