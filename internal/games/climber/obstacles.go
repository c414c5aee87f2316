package climber

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Bird is a flying obstacle crossing the viewport right to left.
type Bird struct {
	X, Y    float64
	Speed   float64 // leftward flight speed, positive magnitude
	Phase   float64 // wing animation phase, cosmetic
	Removed bool    // marked for removal in the next compaction pass
}

// Rect returns the bird's world-space collision box for the given
// half-extents.
func (b Bird) Rect(halfW, halfH float64) core.RectF {
	return core.CenteredRectF(b.X, b.Y, halfW, halfH)
}

// spawnBand maps a minimum height in meters to a spawn interval.
// Below the lowest band no birds spawn at all; higher bands spawn faster.
type spawnBand struct {
	minMeters int
	interval  float64
}

var spawnBands = []spawnBand{
	{minMeters: 25, interval: 6.0},
	{minMeters: 60, interval: 4.5},
	{minMeters: 120, interval: 3.2},
	{minMeters: 200, interval: 2.4},
	{minMeters: 320, interval: 1.8},
}

// spawnInterval returns the bird spawn interval for the given height, or 0
// when the height is below the lowest band (no spawns).
func spawnInterval(meters int) float64 {
	interval := 0.0
	for _, band := range spawnBands {
		if meters >= band.minMeters {
			interval = band.interval
		}
	}
	return interval
}

// Flock owns the live birds and their spawn timer.
type Flock struct {
	birds []Bird
	timer float64
	rng   *rand.Rand
	cfg   config.ClimberBirds
}

// NewFlock creates a flock sharing the game's random source.
func NewFlock(rng *rand.Rand, cfg config.ClimberBirds) *Flock {
	return &Flock{
		birds: make([]Bird, 0, 4),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset clears all birds and the spawn timer.
func (f *Flock) Reset() {
	f.birds = f.birds[:0]
	f.timer = 0
}

// Birds returns the live bird slice. Callers must not mutate it.
func (f *Flock) Birds() []Bird {
	return f.birds
}

// Advance accumulates the spawn timer, spawns a new bird when the
// height-banded interval elapses, moves every bird left, and purges the
// ones that have fully left the viewport.
func (f *Flock) Advance(dt float64, cameraY float64, meters int) {
	interval := spawnInterval(meters)
	if interval > 0 {
		f.timer += dt
		if f.timer >= interval {
			f.timer = 0
			f.spawn(cameraY, meters)
		}
	}

	for i := range f.birds {
		b := &f.birds[i]
		b.X -= b.Speed * dt
		b.Phase += dt * 10
		if b.X < -2*f.cfg.HalfWidth {
			b.Removed = true
		}
	}
	f.compact()
}

// spawn creates one bird just off the right edge at a random height within
// the viewport, with a height-scaled flight speed.
func (f *Flock) spawn(cameraY float64, meters int) {
	speed := f.cfg.BaseSpeed + float64(meters)*f.cfg.SpeedGrowth
	if speed > f.cfg.MaxSpeed {
		speed = f.cfg.MaxSpeed
	}

	y := cameraY + 30 + f.rng.Float64()*(WorldH-120)

	f.birds = append(f.birds, Bird{
		X:     WorldW + 2*f.cfg.HalfWidth,
		Y:     y,
		Speed: speed,
		Phase: f.rng.Float64() * 2 * math.Pi,
	})
}

// Collide tests the given world-space box against every live bird.
// The first hit bird is marked for removal and true is returned.
func (f *Flock) Collide(target core.RectF) bool {
	for i := range f.birds {
		b := &f.birds[i]
		if b.Removed {
			continue
		}
		if b.Rect(f.cfg.HalfWidth, f.cfg.HalfHeight).Intersects(target) {
			b.Removed = true
			f.compact()
			return true
		}
	}
	return false
}

// compact removes every bird marked Removed in a single filter pass.
func (f *Flock) compact() {
	kept := f.birds[:0]
	for _, b := range f.birds {
		if !b.Removed {
			kept = append(kept, b)
		}
	}
	f.birds = kept
}
