package climber

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
)

func newTestColumn(seed int64) *Column {
	cfg := config.DefaultClimberConfig().Platforms
	return NewColumn(rand.New(rand.NewSource(seed)), cfg)
}

func TestColumnReset(t *testing.T) {
	c := newTestColumn(1)
	c.Reset()

	platforms := c.Platforms()
	if len(platforms) != 1 {
		t.Fatalf("expected exactly the seed platform, got %d", len(platforms))
	}

	seed := platforms[0]
	if seed.Index != 0 {
		t.Errorf("seed platform index = %d, expected 0", seed.Index)
	}
	if seed.Kind != KindNormal {
		t.Errorf("seed platform kind = %v, expected normal", seed.Kind)
	}
	if seed.Speed != 0 {
		t.Errorf("seed platform must be stationary, speed = %f", seed.Speed)
	}
	if seed.Y != c.cfg.BaselineY {
		t.Errorf("seed platform y = %f, expected baseline %f", seed.Y, c.cfg.BaselineY)
	}

	// Centered in the world
	wantX := (WorldW - seed.W) / 2
	if seed.X != wantX {
		t.Errorf("seed platform x = %f, expected centered at %f", seed.X, wantX)
	}
}

func TestColumnResetReusable(t *testing.T) {
	c := newTestColumn(2)
	c.Reset()
	c.Maintain(c.cfg.BaselineY - WorldH)

	before := len(c.Platforms())
	if before < 2 {
		t.Fatalf("Maintain should have spawned platforms, got %d", before)
	}

	c.Reset()
	if len(c.Platforms()) != 1 {
		t.Errorf("Reset should drop back to the seed platform, got %d", len(c.Platforms()))
	}
	if c.Platforms()[0].Index != 0 {
		t.Errorf("Reset should restart identity indices at 0, got %d", c.Platforms()[0].Index)
	}
}

func TestHeightMeters(t *testing.T) {
	c := newTestColumn(3)
	base := c.cfg.BaselineY
	unit := c.cfg.UnitHeight

	tests := []struct {
		name     string
		y        float64
		expected int
	}{
		{"baseline is zero", base, 0},
		{"below baseline clamps to zero", base + 100, 0},
		{"one unit up", base - unit, 1},
		{"ten units up", base - 10*unit, 10},
		{"partial unit floors", base - 1.5*unit, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.HeightMeters(tc.y); got != tc.expected {
				t.Errorf("HeightMeters(%f) = %d, expected %d", tc.y, got, tc.expected)
			}
		})
	}
}

func TestGenerateRespectsFloors(t *testing.T) {
	c := newTestColumn(4)
	c.Reset()

	// Generate far up the column where shrink would go below the floors
	// without clamping.
	y := c.cfg.BaselineY - 500*c.cfg.UnitHeight
	for i := 0; i < 200; i++ {
		p := c.Generate(y)

		if p.W < c.cfg.MinWidth {
			t.Fatalf("platform width %f below floor %f", p.W, c.cfg.MinWidth)
		}
		if p.X < c.cfg.SideMargin || p.X+p.W > WorldW-c.cfg.SideMargin {
			t.Fatalf("platform [%f, %f] escapes side margins", p.X, p.X+p.W)
		}
		if s := p.Speed; s > c.cfg.MaxSpeed*1.25*1.2+1e-9 || s < -c.cfg.MaxSpeed*1.25*1.2-1e-9 {
			t.Fatalf("platform speed %f exceeds cap envelope", s)
		}
	}
}

func TestGenerateLowAltitudeIsTame(t *testing.T) {
	c := newTestColumn(5)
	c.Reset()

	// Just above the baseline: below both the moving and hazard height
	// thresholds, so every platform is a stationary normal one.
	y := c.cfg.BaselineY - 2*c.cfg.UnitHeight
	for i := 0; i < 300; i++ {
		p := c.Generate(y)
		if p.Speed != 0 {
			t.Fatalf("platform at %dm should be stationary, speed = %f", c.HeightMeters(y), p.Speed)
		}
		if p.Kind != KindNormal {
			t.Fatalf("platform at %dm should be normal, got %v", c.HeightMeters(y), p.Kind)
		}
	}
}

func TestGenerateHazardsAppearHigh(t *testing.T) {
	c := newTestColumn(6)
	c.Reset()

	// Far above the hazard threshold the saturated probabilities make
	// hazards near-certain to show up across a few hundred samples.
	y := c.cfg.BaselineY - 1000*c.cfg.UnitHeight
	var timed, fragile int
	for i := 0; i < 500; i++ {
		switch c.Generate(y).Kind {
		case KindTimed:
			timed++
		case KindFragile:
			fragile++
		}
	}
	if timed == 0 {
		t.Error("expected some timed platforms at extreme altitude")
	}
	if fragile == 0 {
		t.Error("expected some fragile platforms at extreme altitude")
	}

	// Caps keep hazards a minority even when saturated.
	if timed+fragile > 350 {
		t.Errorf("hazards should stay capped: %d timed + %d fragile of 500", timed, fragile)
	}
}

func TestGenerateTimedHasCountdown(t *testing.T) {
	c := newTestColumn(7)
	c.Reset()

	y := c.cfg.BaselineY - 1000*c.cfg.UnitHeight
	for i := 0; i < 500; i++ {
		p := c.Generate(y)
		if p.Kind == KindTimed && p.Timer != c.cfg.TimedCountdown {
			t.Fatalf("timed platform timer = %f, expected %f", p.Timer, c.cfg.TimedCountdown)
		}
	}
}

func TestGenerateIndicesMonotone(t *testing.T) {
	c := newTestColumn(8)
	c.Reset()

	prev := c.Platforms()[0].Index
	for i := 0; i < 50; i++ {
		p := c.Generate(c.cfg.BaselineY - float64(i+1)*c.cfg.Gap)
		if p.Index <= prev {
			t.Fatalf("identity index must strictly increase: %d after %d", p.Index, prev)
		}
		prev = p.Index
	}
}

func TestByIndex(t *testing.T) {
	c := newTestColumn(9)
	c.Reset()
	p := c.Generate(c.cfg.BaselineY - c.cfg.Gap)

	if got := c.ByIndex(p.Index); got == nil || got.Index != p.Index {
		t.Errorf("ByIndex(%d) should resolve the generated platform", p.Index)
	}
	if c.ByIndex(-1) != nil {
		t.Error("ByIndex(-1) must be nil (airborne sentinel)")
	}
	if c.ByIndex(9999) != nil {
		t.Error("ByIndex of a culled index must be nil")
	}

	// After culling, the handle dangles.
	c.platforms[1].Removing = true
	c.Compact()
	if c.ByIndex(p.Index) != nil {
		t.Error("ByIndex must dangle after the platform is compacted away")
	}
}

func TestMaintainFillsAndCulls(t *testing.T) {
	c := newTestColumn(10)
	c.Reset()

	camera := c.cfg.BaselineY - WorldH*0.65
	c.Maintain(camera)

	// The window must extend past the look-ahead line above the camera.
	if c.MinY() > camera-c.cfg.SpawnLookAhead {
		t.Errorf("MinY = %f, expected at or above look-ahead line %f", c.MinY(), camera-c.cfg.SpawnLookAhead)
	}

	// Scroll the camera far upward; old platforms must be culled.
	highCamera := camera - 5*WorldH
	c.Maintain(highCamera)
	cullLine := highCamera + WorldH + c.cfg.CullMargin
	for _, p := range c.Platforms() {
		if p.Y > cullLine {
			t.Errorf("platform at y=%f should have been culled (line %f)", p.Y, cullLine)
		}
	}
}

func TestCompact(t *testing.T) {
	c := newTestColumn(11)
	c.Reset()
	for i := 1; i <= 4; i++ {
		c.Generate(c.cfg.BaselineY - float64(i)*c.cfg.Gap)
	}

	c.platforms[1].Removing = true
	c.platforms[3].Removing = true
	c.Compact()

	if len(c.platforms) != 3 {
		t.Fatalf("expected 3 platforms after compaction, got %d", len(c.platforms))
	}
	for _, p := range c.platforms {
		if p.Removing {
			t.Errorf("platform %d still marked Removing after Compact", p.Index)
		}
	}
}

func TestAdvanceReflectsAtMargins(t *testing.T) {
	c := newTestColumn(12)
	c.Reset()

	c.platforms = append(c.platforms, Platform{
		Index: 99,
		X:     c.cfg.SideMargin + 1,
		Y:     100,
		W:     60,
		H:     c.cfg.Height,
		Speed: -50,
	})

	// Step until the platform hits the left margin and bounces.
	for i := 0; i < 100; i++ {
		c.Advance(1.0 / 60)
	}

	p := c.ByIndex(99)
	if p == nil {
		t.Fatal("platform vanished")
	}
	if p.X < c.cfg.SideMargin {
		t.Errorf("platform x = %f escaped the left margin %f", p.X, c.cfg.SideMargin)
	}
	if p.Speed <= 0 {
		t.Errorf("platform should have reflected to positive speed, got %f", p.Speed)
	}
}
