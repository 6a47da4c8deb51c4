package parameter

// Camera dead zone configuration, in pixels relative to the screen top-left
// The target moves freely inside the band; leaving it drags the camera along
const (
	// CameraDeadZoneRight: screen_width/2 - sprite_width/2 = 320/2 - 40/2
	CameraDeadZoneRight = 140
	// CameraDeadZoneLeft leaves 10 px of leeway so turning around does not scroll
	CameraDeadZoneLeft = 130

	// Vertical band is intentionally asymmetric
	CameraDeadZoneBottom = 140
	CameraDeadZoneTop    = 60

	// Far layer scrolls at 1/8 horizontally and 1/32 vertically
	CameraFarShiftX = 3
	CameraFarShiftY = 5
)
