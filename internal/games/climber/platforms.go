package climber

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// PlatformKind is the hazard variant of a platform.
type PlatformKind int

const (
	KindNormal PlatformKind = iota
	KindTimed                // starts a countdown once the climber lands on it
	KindFragile              // destroyed the moment the climber jumps off it
)

// String returns a human-readable name for the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindTimed:
		return "timed"
	case KindFragile:
		return "fragile"
	default:
		return "unknown"
	}
}

// Platform is one ledge in the world column. Position is the top-left
// corner in world units; Index is a monotonically increasing generation
// number used as an identity handle by the climber's support reference.
type Platform struct {
	Index    int
	X, Y     float64
	W, H     float64
	Speed    float64 // signed lateral speed; 0 = stationary
	Kind     PlatformKind
	Timer    float64 // remaining countdown; meaningful for KindTimed only
	Landed   bool    // true once the climber has rested on this platform
	Removing bool    // marked for removal in the next compaction pass
}

// CenterX returns the horizontal center of the platform.
func (p Platform) CenterX() float64 {
	return p.X + p.W/2
}

// Rect returns the platform's world-space bounding box.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Column owns the live platform window: a slice of platforms maintained
// around the camera, spawning ahead of it and culling behind it.
// All mutation goes through the frame stepper; removal is two-phase
// (mark Removing, then Compact) so collision tests never index into a
// slice that is being filtered.
type Column struct {
	platforms []Platform
	nextIndex int
	rng       *rand.Rand
	cfg       config.ClimberPlatforms
}

// NewColumn creates a platform column sharing the game's random source.
func NewColumn(rng *rand.Rand, cfg config.ClimberPlatforms) *Column {
	return &Column{
		platforms: make([]Platform, 0, 16),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset clears the column and seeds it with the wide stationary starting
// platform at the baseline. The seed platform always has index 0.
func (c *Column) Reset() {
	c.platforms = c.platforms[:0]
	c.nextIndex = 0

	seedW := c.cfg.SeedWidth
	if seedW <= 0 || seedW > WorldW-2*c.cfg.SideMargin {
		seedW = WorldW / 2
	}

	c.platforms = append(c.platforms, Platform{
		Index: c.nextIndex,
		X:     (WorldW - seedW) / 2,
		Y:     c.cfg.BaselineY,
		W:     seedW,
		H:     c.cfg.Height,
		Kind:  KindNormal,
	})
	c.nextIndex++
}

// Platforms returns the live platform slice. Callers must not mutate it;
// the render snapshot copies what it needs.
func (c *Column) Platforms() []Platform {
	return c.platforms
}

// ByIndex resolves a platform identity handle. Returns nil when the
// platform has been culled; a nil result means the referenced support is
// gone and the climber must be treated as detached.
func (c *Column) ByIndex(idx int) *Platform {
	if idx < 0 {
		return nil
	}
	for i := range c.platforms {
		if c.platforms[i].Index == idx {
			return &c.platforms[i]
		}
	}
	return nil
}

// HeightMeters converts a world y to the "meters climbed" scalar that
// drives every difficulty curve. Never negative.
func (c *Column) HeightMeters(y float64) int {
	if c.cfg.UnitHeight <= 0 {
		return 0
	}
	m := int(math.Floor((c.cfg.BaselineY - y) / c.cfg.UnitHeight))
	if m < 0 {
		return 0
	}
	return m
}

// Generate produces one procedurally generated platform at the given y and
// appends it to the column. Width shrinks with height down to a floor,
// lateral speed grows with height up to a cap with a parity zigzag factor,
// and hazard probabilities grow with height but saturate so hazards stay
// rare even at extreme altitude. Outputs are clamped to their documented
// floors, so the generator has no fallible path.
func (c *Column) Generate(y float64) Platform {
	idx := c.nextIndex
	c.nextIndex++

	m := c.HeightMeters(y)

	width := c.cfg.BaseWidth - float64(m)*c.cfg.WidthShrink
	if width < c.cfg.MinWidth {
		width = c.cfg.MinWidth
	}
	variance := c.cfg.VarianceBase - float64(m)*c.cfg.VarianceShrink
	if variance < c.cfg.VarianceMin {
		variance = c.cfg.VarianceMin
	}
	width += c.rng.Float64() * variance

	span := WorldW - 2*c.cfg.SideMargin - width
	if span < 0 {
		width = WorldW - 2*c.cfg.SideMargin
		span = 0
	}
	x := c.cfg.SideMargin + c.rng.Float64()*span

	var speed float64
	if m >= c.cfg.MovingMinHeight {
		base := c.cfg.BaseSpeed + float64(m)*c.cfg.SpeedGrowth
		if base > c.cfg.MaxSpeed {
			base = c.cfg.MaxSpeed
		}
		zigzag := 1.0
		if idx%2 == 1 {
			zigzag = 1.25
		}
		jitter := 0.8 + c.rng.Float64()*0.4
		speed = base * zigzag * jitter
		if c.rng.Float64() < 0.5 {
			speed = -speed
		}
	}

	kind := KindNormal
	var timer float64
	if m >= c.cfg.HazardMinHeight {
		pTimed := math.Min(float64(m)*c.cfg.TimedProbPerM, c.cfg.TimedProbCap)
		pFragile := math.Min(float64(m)*c.cfg.FragileProbPerM, c.cfg.FragileProbCap)
		roll := c.rng.Float64()
		switch {
		case roll < pTimed:
			kind = KindTimed
			timer = c.cfg.TimedCountdown
		case roll < pTimed+pFragile:
			kind = KindFragile
		}
	}

	p := Platform{
		Index: idx,
		X:     x,
		Y:     y,
		W:     width,
		H:     c.cfg.Height,
		Speed: speed,
		Kind:  kind,
		Timer: timer,
	}
	c.platforms = append(c.platforms, p)
	return p
}

// Advance moves every non-stationary platform by its lateral speed,
// reflecting off the side margins.
func (c *Column) Advance(dt float64) {
	for i := range c.platforms {
		p := &c.platforms[i]
		if p.Speed == 0 {
			continue
		}
		p.X += p.Speed * dt

		minX := c.cfg.SideMargin
		maxX := WorldW - c.cfg.SideMargin - p.W
		if p.X < minX {
			p.X = minX
			p.Speed = -p.Speed
		} else if p.X > maxX {
			p.X = maxX
			p.Speed = -p.Speed
		}
	}
}

// MinY returns the smallest (highest) platform y, or the baseline when
// the column is empty.
func (c *Column) MinY() float64 {
	if len(c.platforms) == 0 {
		return c.cfg.BaselineY
	}
	minY := c.platforms[0].Y
	for _, p := range c.platforms[1:] {
		if p.Y < minY {
			minY = p.Y
		}
	}
	return minY
}

// Maintain keeps the sliding window filled: while the topmost platform is
// closer than the look-ahead distance above the camera, new platforms are
// generated one gap higher; platforms that have scrolled far below the
// viewport are marked and removed.
func (c *Column) Maintain(cameraY float64) {
	minY := c.MinY()
	for minY > cameraY-c.cfg.SpawnLookAhead {
		minY -= c.cfg.Gap
		c.Generate(minY)
	}

	for i := range c.platforms {
		if c.platforms[i].Y > cameraY+WorldH+c.cfg.CullMargin {
			c.platforms[i].Removing = true
		}
	}
	c.Compact()
}

// Compact removes every platform marked Removing in a single filter pass.
func (c *Column) Compact() {
	kept := c.platforms[:0]
	for _, p := range c.platforms {
		if !p.Removing {
			kept = append(kept, p)
		}
	}
	c.platforms = kept
}
