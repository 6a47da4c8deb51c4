package player

import (
	"testing"

	"github.com/lixenwraith/hillside/constant"
	"github.com/lixenwraith/hillside/heightmap"
	"github.com/lixenwraith/hillside/input"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/tilemap"
	"github.com/lixenwraith/hillside/vmath"
)

const (
	testMapW = 10240
	testMapH = 1280

	tileFull  uint16 = 1
	tileSlope uint16 = 2
	tileHalf  uint16 = 3

	// Foot of a player resting at MaxPosY (924 + 40) lies on row 120
	floorRow = 120
)

type spriteRecorder struct {
	anims []constant.Anim
}

func (s *spriteRecorder) SetPosition(x, y int)            {}
func (s *spriteRecorder) SetHFlip(flip bool)              {}
func (s *spriteRecorder) SetAnimation(anim constant.Anim) { s.anims = append(s.anims, anim) }

type cueRecorder struct {
	cues []Cue
}

func (c *cueRecorder) OnCue(cue Cue) { c.cues = append(c.cues, cue) }

func (c *cueRecorder) count(cue Cue) int {
	n := 0
	for _, x := range c.cues {
		if x == cue {
			n++
		}
	}
	return n
}

func testHeights(t *testing.T) *heightmap.Table {
	t.Helper()
	table, err := heightmap.CollisionMap{
		tileFull:  {8, 8, 8, 8, 8, 8, 8, 8},
		tileSlope: {1, 2, 3, 4, 5, 6, 7, 8},
		tileHalf:  {4, 4, 4, 4, 4, 4, 4, 4},
	}.Compile()
	if err != nil {
		t.Fatalf("compile heights: %v", err)
	}
	return table
}

func emptyMap() *tilemap.Map {
	return tilemap.New(testMapW/constant.TileSize, testMapH/constant.TileSize)
}

func flatMap() *tilemap.Map {
	m := emptyMap()
	for x := 0; x < m.Width(); x++ {
		m.SetTile(x, floorRow, tileFull, false)
	}
	return m
}

type fixture struct {
	p    *Player
	spr  *spriteRecorder
	cues *cueRecorder
}

func newFixture(t *testing.T, m *tilemap.Map) *fixture {
	t.Helper()
	f := &fixture{spr: &spriteRecorder{}, cues: &cueRecorder{}}
	f.p = New(f.spr, m, testHeights(t), DefaultConfig(testMapW, testMapH))
	f.p.SetCueListener(f.cues)
	return f
}

func (f *fixture) frame(held input.Buttons) {
	f.p.HandleInput(held)
	f.p.Update()
}

func TestNewStartsAtSpawn(t *testing.T) {
	f := newFixture(t, emptyMap())
	if f.p.PosX != vmath.FromInt(48) {
		t.Errorf("PosX = %v, want 48", f.p.PosX.Float())
	}
	if f.p.PosY != vmath.FromInt(testMapH-356) {
		t.Errorf("PosY = %v, want 924", f.p.PosY.Float())
	}
	if f.p.MaxSpeed != vmath.FromInt(8) || f.p.JumpSpeed != vmath.FromFloat(7.8) || f.p.Gravity != vmath.FromFloat(0.32) {
		t.Error("tunables not taken from config")
	}
}

func TestHandleInputPrecedence(t *testing.T) {
	f := newFixture(t, emptyMap())

	tests := []struct {
		held           input.Buttons
		xOrder, yOrder int
	}{
		{0, 0, 0},
		{input.ButtonRight, 1, 0},
		{input.ButtonLeft, -1, 0},
		{input.ButtonUp, 0, -1},
		{input.ButtonDown, 0, 1},
		{input.ButtonLeft | input.ButtonRight, -1, 0},
		{input.ButtonUp | input.ButtonDown, 0, -1},
		{input.ButtonRight | input.ButtonDown | input.ButtonA, 1, 1},
	}
	for _, tt := range tests {
		f.p.HandleInput(tt.held)
		if f.p.XOrder != tt.xOrder || f.p.YOrder != tt.yOrder {
			t.Errorf("HandleInput(%v) = (%d, %d), want (%d, %d)", tt.held, f.p.XOrder, f.p.YOrder, tt.xOrder, tt.yOrder)
		}
	}
}

func TestAccelerationReachesAndHoldsMaxSpeed(t *testing.T) {
	f := newFixture(t, flatMap())

	// 0.1 is 102 in Q22.10: 80 frames give 8160, the 81st clamps to 8192
	for i := 1; i <= 80; i++ {
		f.frame(input.ButtonRight)
		if f.p.MovX != vmath.Fix32(102*i) {
			t.Fatalf("frame %d: MovX = %d, want %d", i, f.p.MovX, 102*i)
		}
	}
	f.frame(input.ButtonRight)
	if f.p.MovX != f.p.MaxSpeed {
		t.Fatalf("MovX = %d after 81 frames, want MaxSpeed %d", f.p.MovX, f.p.MaxSpeed)
	}
	for i := 0; i < 200; i++ {
		f.frame(input.ButtonRight)
		if f.p.MovX != f.p.MaxSpeed {
			t.Fatalf("frame %d past clamp: MovX = %d", i, f.p.MovX)
		}
	}
}

func TestSpeedNeverExceedsMax(t *testing.T) {
	f := newFixture(t, flatMap())
	f.p.PosX = vmath.FromInt(5000)
	pattern := []input.Buttons{input.ButtonRight, input.ButtonLeft, 0}
	for i := 0; i < 900; i++ {
		f.frame(pattern[(i/150)%len(pattern)])
		if vmath.Abs(f.p.MovX) > f.p.MaxSpeed {
			t.Fatalf("frame %d: |MovX| = %d exceeds %d", i, vmath.Abs(f.p.MovX), f.p.MaxSpeed)
		}
	}
}

func TestReversingBrakesTwice(t *testing.T) {
	f := newFixture(t, flatMap())
	f.p.MovX = 500
	f.frame(input.ButtonLeft)
	if f.p.MovX != 500-2*102 {
		t.Errorf("MovX = %d, want %d", f.p.MovX, 500-2*102)
	}

	f.p.MovX = -500
	f.frame(input.ButtonRight)
	if f.p.MovX != -500+2*102 {
		t.Errorf("MovX = %d, want %d", f.p.MovX, -500+2*102)
	}

	// Crossing zero in one frame does not take the second step
	f.p.MovX = 50
	f.frame(input.ButtonLeft)
	if f.p.MovX != 50-102 {
		t.Errorf("MovX = %d, want %d", f.p.MovX, 50-102)
	}
}

func TestFrictionBands(t *testing.T) {
	tests := []struct {
		in, want vmath.Fix32
	}{
		{0, 0},
		{101, 0},
		{-101, 0},
		{102, 102 - 102>>2},
		{200, 150},
		{-200, -150},
		{306, 306 - 306>>2},
		{307, 307 - 307>>3},
		{500, 438},
		{-500, -437},
		{1023, 1023 - 1023>>3},
		{1024, 1024 - 64},
		{2000, 1875},
		{-8192, -8192 + 512},
	}
	for _, tt := range tests {
		if got := friction(tt.in); got != tt.want {
			t.Errorf("friction(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCoastingStopsExactly(t *testing.T) {
	f := newFixture(t, flatMap())
	f.p.MovX = f.p.MaxSpeed
	for i := 0; i < 300 && f.p.MovX != 0; i++ {
		f.frame(0)
	}
	if f.p.MovX != 0 {
		t.Fatalf("MovX = %d, coasting never stopped", f.p.MovX)
	}
	f.frame(0)
	if f.p.MovX != 0 {
		t.Error("residual drift after stop")
	}
}

func TestLandsOnHalfHeightTile(t *testing.T) {
	m := emptyMap()
	m.SetTile(9, floorRow, tileHalf, false)
	f := newFixture(t, m)

	// Foot at (72, 962): tile (9, 120), column 0
	f.p.PosX = vmath.FromInt(48)
	f.p.PosY = vmath.FromInt(922)
	f.p.MovY = 0
	f.frame(0)

	foot := f.p.PosY.Int() + parameter.PlayerFootOffsetY
	tileBottom := (floorRow + 1) * constant.TileSize
	if tileBottom-foot != 4 {
		t.Errorf("foot rests %d px above tile bottom, want 4", tileBottom-foot)
	}
	if f.p.MovY != 0 {
		t.Errorf("MovY = %d, want 0", f.p.MovY)
	}
}

func TestRestingIsStable(t *testing.T) {
	f := newFixture(t, flatMap())
	f.frame(0)
	y := f.p.PosY
	for i := 0; i < 30; i++ {
		f.frame(0)
		if f.p.PosY != y || f.p.MovY != 0 {
			t.Fatalf("frame %d: PosY %d -> %d, MovY %d", i, y, f.p.PosY, f.p.MovY)
		}
	}
	if f.p.Animation() != constant.AnimStand {
		t.Errorf("Animation = %v, want stand", f.p.Animation())
	}
}

func TestFullColumnResamplesTileAbove(t *testing.T) {
	m := emptyMap()
	m.SetTile(9, floorRow, tileFull, false)
	m.SetTile(9, floorRow-1, tileSlope, false)
	f := newFixture(t, m)

	f.p.PosX = vmath.FromInt(48) // foot column 0 of tile 9
	f.p.PosY = vmath.FromInt(922)
	f.frame(0)

	// Slope column 0 has height 1 measured from the bottom of row 119
	want := floorRow*constant.TileSize - 1
	if foot := f.p.PosY.Int() + parameter.PlayerFootOffsetY; foot != want {
		t.Errorf("foot = %d, want %d", foot, want)
	}
}

func TestFullColumnWithEmptyAboveKeepsTile(t *testing.T) {
	f := newFixture(t, flatMap())
	f.p.PosY = vmath.FromInt(922)
	f.frame(0)
	if foot := f.p.PosY.Int() + parameter.PlayerFootOffsetY; foot != floorRow*constant.TileSize {
		t.Errorf("foot = %d, want %d", foot, floorRow*constant.TileSize)
	}
}

func TestFlippedTileMirrorsColumn(t *testing.T) {
	m := emptyMap()
	m.SetTile(9, floorRow, tileSlope, true)
	f := newFixture(t, m)

	// Column 1 of a flipped slope reads column 6: height 7
	f.p.PosX = vmath.FromInt(49)
	f.p.PosY = vmath.FromInt(922)
	f.frame(0)

	want := (floorRow+1)*constant.TileSize - 7
	if foot := f.p.PosY.Int() + parameter.PlayerFootOffsetY; foot != want {
		t.Errorf("foot = %d, want %d", foot, want)
	}
}

func TestRisingPassesThroughPlatform(t *testing.T) {
	m := emptyMap()
	m.SetTile(9, floorRow, tileHalf, false)
	f := newFixture(t, m)

	f.p.PosY = vmath.FromInt(922)
	f.p.MovY = -vmath.FromInt(1)
	f.frame(0)

	if f.p.PosY != vmath.FromInt(921) {
		t.Errorf("PosY = %v, want 921 (no snap while rising)", f.p.PosY.Float())
	}
	if f.p.MovY != -vmath.FromInt(1)+f.p.Gravity {
		t.Errorf("MovY = %d, want gravity applied", f.p.MovY)
	}
}

func TestGravityInAir(t *testing.T) {
	f := newFixture(t, emptyMap())
	f.frame(0)
	if f.p.MovY != f.p.Gravity {
		t.Errorf("MovY = %d, want %d", f.p.MovY, f.p.Gravity)
	}
	f.frame(0)
	if f.p.MovY != 2*f.p.Gravity {
		t.Errorf("MovY = %d, want %d", f.p.MovY, 2*f.p.Gravity)
	}
}

func TestFallThroughRespawns(t *testing.T) {
	f := newFixture(t, emptyMap())
	f.p.PosX = vmath.FromInt(500)
	f.p.PosY = vmath.FromInt(testMapH)
	f.p.MovX = vmath.FromInt(3)
	f.p.MovY = vmath.FromInt(2)

	f.p.PosX += f.p.MovX
	f.p.PosY += f.p.MovY
	f.p.recoverFall()

	if f.p.PosX != vmath.FromInt(403) || f.p.PosY != f.p.MaxPosY()-vmath.FromInt(100) {
		t.Errorf("respawn at (%v, %v), want (403, 824)", f.p.PosX.Float(), f.p.PosY.Float())
	}
	if f.p.MovX != 0 || f.p.MovY != 0 {
		t.Errorf("velocity (%d, %d), want zero", f.p.MovX, f.p.MovY)
	}
	if f.cues.count(CueRespawn) != 1 {
		t.Errorf("respawn cues = %d, want 1", f.cues.count(CueRespawn))
	}
}

func TestFallThroughDuringUpdate(t *testing.T) {
	f := newFixture(t, emptyMap())
	f.p.PosX = vmath.FromInt(500)
	f.p.PosY = vmath.FromInt(testMapH)
	f.p.MovY = vmath.FromInt(2)
	f.frame(0)

	if f.p.PosX != vmath.FromInt(400) || f.p.PosY != vmath.FromInt(824) {
		t.Errorf("respawn at (%v, %v), want (400, 824)", f.p.PosX.Float(), f.p.PosY.Float())
	}
	if f.p.MovX != 0 {
		t.Errorf("MovX = %d, want 0", f.p.MovX)
	}
	// Nothing under the respawn point, so the same frame starts falling again
	if f.p.MovY != f.p.Gravity {
		t.Errorf("MovY = %d, want one gravity step", f.p.MovY)
	}
}

func TestClipXStopsDead(t *testing.T) {
	f := newFixture(t, flatMap())
	f.p.PosX = vmath.FromInt(-6)
	f.p.MovX = -vmath.FromInt(4)
	f.frame(input.ButtonLeft)
	if f.p.PosX != vmath.FromInt(-8) || f.p.MovX != 0 {
		t.Errorf("left clip: PosX %v MovX %d", f.p.PosX.Float(), f.p.MovX)
	}

	maxX := vmath.FromInt(testMapW - 100)
	f.p.PosX = maxX - vmath.FromInt(2)
	f.p.MovX = vmath.FromInt(4)
	f.frame(input.ButtonRight)
	if f.p.PosX != maxX || f.p.MovX != 0 {
		t.Errorf("right clip: PosX %v MovX %d", f.p.PosX.Float(), f.p.MovX)
	}
}

func TestJumpOnRisingEdgeOnly(t *testing.T) {
	f := newFixture(t, flatMap())
	var pad input.Joypad

	state, changed := pad.Latch(input.ButtonA)
	f.p.DoJoyAction(changed, state)
	if f.p.MovY != -f.p.JumpSpeed {
		t.Fatalf("MovY = %d, want %d", f.p.MovY, -f.p.JumpSpeed)
	}
	f.frame(state)
	airborne := f.p.MovY

	// Second press mid-air is ignored
	state, changed = pad.Latch(0)
	f.p.DoJoyAction(changed, state)
	state, changed = pad.Latch(input.ButtonC)
	f.p.DoJoyAction(changed, state)
	if f.p.MovY != airborne {
		t.Errorf("mid-air press changed MovY %d -> %d", airborne, f.p.MovY)
	}
	if f.cues.count(CueJump) != 1 {
		t.Errorf("jump cues = %d, want 1", f.cues.count(CueJump))
	}
}

func TestJumpIgnoresHeldAndDirections(t *testing.T) {
	f := newFixture(t, flatMap())
	f.frame(0)

	// Held without change, release edge, direction press
	f.p.DoJoyAction(0, input.ButtonA)
	f.p.DoJoyAction(input.ButtonA, 0)
	f.p.DoJoyAction(input.ButtonUp, input.ButtonUp)
	if f.p.MovY != 0 {
		t.Errorf("MovY = %d, want no jump", f.p.MovY)
	}
	for _, b := range []input.Buttons{input.ButtonB, input.ButtonX, input.ButtonY, input.ButtonZ} {
		f.p.MovY = 0
		f.p.DoJoyAction(b, b)
		if f.p.MovY != -f.p.JumpSpeed {
			t.Errorf("%v did not jump", b)
		}
	}
}

func TestAnimationSelection(t *testing.T) {
	tests := []struct {
		name string
		movX vmath.Fix32
		movY vmath.Fix32
		held input.Buttons
		want constant.Anim
	}{
		{"airborne rolls", vmath.FromInt(7), -vmath.FromInt(3), input.ButtonRight, constant.AnimRoll},
		{"running", vmath.FromInt(7), 0, input.ButtonRight, constant.AnimRun},
		{"walking", vmath.FromInt(1), 0, input.ButtonRight, constant.AnimWalk},
		{"braking left", vmath.FromInt(4), 0, input.ButtonLeft, constant.AnimBrake},
		{"braking right", -vmath.FromInt(4), 0, input.ButtonRight, constant.AnimBrake},
		{"slow reverse walks", vmath.FromInt(1), 0, input.ButtonLeft, constant.AnimWalk},
		{"looking up", 0, 0, input.ButtonUp, constant.AnimUp},
		{"crouching", 0, 0, input.ButtonDown, constant.AnimCrouch},
		{"standing", 0, 0, 0, constant.AnimStand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, flatMap())
			f.frame(0) // settle on the floor
			f.p.MovX = tt.movX
			f.p.MovY = tt.movY
			f.frame(tt.held)
			if f.p.Animation() != tt.want {
				t.Errorf("Animation = %v, want %v", f.p.Animation(), tt.want)
			}
			if got := f.spr.anims[len(f.spr.anims)-1]; got != tt.want {
				t.Errorf("sprite animation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBrakeCueOnEntryOnly(t *testing.T) {
	f := newFixture(t, flatMap())
	f.frame(0)
	f.p.MovX = vmath.FromInt(5)

	brakeFrames := 0
	for i := 0; i < 10; i++ {
		f.frame(input.ButtonLeft)
		if f.p.Animation() == constant.AnimBrake {
			brakeFrames++
		}
	}
	if brakeFrames < 2 {
		t.Fatalf("braked for %d frames, test needs a sustained brake", brakeFrames)
	}
	if n := f.cues.count(CueBrake); n != 1 {
		t.Errorf("brake cues = %d, want 1", n)
	}

	// A new brake after leaving the state cues again
	f.p.MovX = -vmath.FromInt(5)
	f.frame(0)
	f.frame(input.ButtonRight)
	if n := f.cues.count(CueBrake); n != 2 {
		t.Errorf("brake cues = %d, want 2", n)
	}
}

func TestFacingIsSticky(t *testing.T) {
	f := newFixture(t, flatMap())
	f.p.PosX = vmath.FromInt(2000)
	f.frame(input.ButtonLeft)
	if !f.p.HFlip {
		t.Fatal("moving left should flip")
	}
	for i := 0; i < 100 && f.p.MovX != 0; i++ {
		f.frame(0)
	}
	if f.p.MovX != 0 || !f.p.HFlip {
		t.Errorf("stopped: MovX %d HFlip %v, want 0 true", f.p.MovX, f.p.HFlip)
	}
	f.frame(input.ButtonRight)
	if f.p.HFlip {
		t.Error("moving right should unflip")
	}
}

func TestOutOfMapQueriesDoNotCollide(t *testing.T) {
	m := tilemap.New(4, 4)
	f := &fixture{spr: &spriteRecorder{}, cues: &cueRecorder{}}
	f.p = New(f.spr, m, testHeights(t), DefaultConfig(testMapW, testMapH))
	f.frame(0)
	if f.p.MovY != f.p.Gravity {
		t.Errorf("MovY = %d, want free fall", f.p.MovY)
	}
}

func TestNilSourcesReadAsEmptyMap(t *testing.T) {
	p := New(nil, nil, nil, DefaultConfig(testMapW, testMapH))
	for i := 0; i < 3; i++ {
		p.HandleInput(input.ButtonRight)
		p.Update()
	}
	if want := 3 * p.Gravity; p.MovY != want {
		t.Errorf("MovY = %d, want %d after three frames of free fall", p.MovY, want)
	}

	heightsOnly := New(nil, nil, testHeights(t), DefaultConfig(testMapW, testMapH))
	heightsOnly.Update()
	tilesOnly := New(nil, flatMap(), nil, DefaultConfig(testMapW, testMapH))
	tilesOnly.Update()
	if heightsOnly.MovY != heightsOnly.Gravity || tilesOnly.MovY != tilesOnly.Gravity {
		t.Error("a missing source must not produce ground")
	}
}
