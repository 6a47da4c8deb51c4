package render

import "github.com/gdamore/tcell/v2"

// Far plane
var (
	RgbSky       = tcell.NewRGBColor(92, 148, 252)  // Daylight blue
	RgbCloud     = tcell.NewRGBColor(236, 240, 255) // Off-white
	RgbRidge     = tcell.NewRGBColor(40, 96, 72)    // Distant green
	RgbRidgeDark = tcell.NewRGBColor(28, 68, 52)
)

// Near plane
var (
	RgbGrass    = tcell.NewRGBColor(64, 200, 64)
	RgbDirt     = tcell.NewRGBColor(150, 96, 48)
	RgbPlatform = tcell.NewRGBColor(200, 200, 210)
	RgbFlower   = tcell.NewRGBColor(255, 96, 200)
)

// Actors and HUD
var (
	RgbPlayer     = tcell.NewRGBColor(40, 80, 255)
	RgbPlayerRoll = tcell.NewRGBColor(90, 140, 255)
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBg   = tcell.NewRGBColor(26, 27, 38)
)
