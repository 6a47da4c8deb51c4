package parameter

// Bazzbomber
const (
	// BazzbomberSpeedFloat is subtracted from posX every frame
	BazzbomberSpeedFloat = 1.0

	BazzbomberSpawnX = 408
	BazzbomberSpawnY = 800

	BazzbomberWidth  = 40
	BazzbomberHeight = 24
)
