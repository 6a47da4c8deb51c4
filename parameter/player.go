package parameter

// Player tunables
// Float values are converted once into Fix32 in physics.go
const (
	// PlayerStartX is the spawn position in pixels from the map left edge
	PlayerStartX = 48

	PlayerMaxSpeedFloat  = 8.0
	PlayerJumpSpeedFloat = 7.8
	PlayerGravityFloat   = 0.32

	// PlayerAccelFloat is added to horizontal speed per frame while a direction is held
	// Reversing direction applies it twice
	PlayerAccelFloat = 0.1

	// Speed thresholds driving animation selection
	PlayerRunSpeedFloat   = 6.0
	PlayerBrakeSpeedFloat = 2.0

	// Friction bands, by |movX| upper bound
	// Below the stop band speed is zeroed, otherwise movX -= movX >> shift
	FrictionStopBandFloat = 0.1
	FrictionNearBandFloat = 0.3
	FrictionLowBandFloat  = 1.0
	FrictionNearShift     = 2
	FrictionLowShift      = 3
	FrictionHighShift     = 4
)

// Player bounding box and sensor placement, in pixels
const (
	// PlayerFootOffsetY is the sprite height measured from its top-left anchor
	// Sheet frames are 48 px tall but the visible body ends at 40
	PlayerFootOffsetY = 40
	// PlayerFootOffsetX puts the ground sensor in the middle of the sprite
	PlayerFootOffsetX = 24

	PlayerWidth  = 48
	PlayerHeight = 48

	// PlayerMinPosX lets the sprite overlap the left map edge by its transparent margin
	PlayerMinPosX = -8
	// PlayerMaxPosXMargin is subtracted from map width to get the right clip
	PlayerMaxPosXMargin = 100
	// PlayerMaxPosYMargin is subtracted from map height to get the spawn height
	PlayerMaxPosYMargin = 356
	// PlayerRespawnRise and PlayerRespawnBackoff shift a fallen player up and back
	PlayerRespawnRise    = 100
	PlayerRespawnBackoff = 100
)
