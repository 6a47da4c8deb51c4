package parameter

import "github.com/lixenwraith/hillside/vmath"

// Pre-computed Q22.10 physics constants, initialized once and used by the actors

// Player physics
var (
	PlayerMaxSpeed   = vmath.FromFloat(PlayerMaxSpeedFloat)
	PlayerJumpSpeed  = vmath.FromFloat(PlayerJumpSpeedFloat)
	PlayerGravity    = vmath.FromFloat(PlayerGravityFloat)
	PlayerAccel      = vmath.FromFloat(PlayerAccelFloat)
	PlayerRunSpeed   = vmath.FromFloat(PlayerRunSpeedFloat)
	PlayerBrakeSpeed = vmath.FromFloat(PlayerBrakeSpeedFloat)
)

// Friction bands
var (
	FrictionStopBand = vmath.FromFloat(FrictionStopBandFloat)
	FrictionNearBand = vmath.FromFloat(FrictionNearBandFloat)
	FrictionLowBand  = vmath.FromFloat(FrictionLowBandFloat)
)

// Enemy physics
var (
	BazzbomberSpeed = vmath.FromFloat(BazzbomberSpeedFloat)
)
