package climber

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
)

func newTestFlock(seed int64) *Flock {
	cfg := config.DefaultClimberConfig().Birds
	return NewFlock(rand.New(rand.NewSource(seed)), cfg)
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		name     string
		meters   int
		expected float64
	}{
		{"ground level has no birds", 0, 0},
		{"just below the first band", spawnBands[0].minMeters - 1, 0},
		{"first band", spawnBands[0].minMeters, spawnBands[0].interval},
		{"between bands holds the lower one", spawnBands[1].minMeters - 1, spawnBands[0].interval},
		{"top band", spawnBands[len(spawnBands)-1].minMeters + 500, spawnBands[len(spawnBands)-1].interval},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := spawnInterval(tc.meters); got != tc.expected {
				t.Errorf("spawnInterval(%d) = %f, expected %f", tc.meters, got, tc.expected)
			}
		})
	}
}

func TestSpawnIntervalsShrinkWithHeight(t *testing.T) {
	for i := 1; i < len(spawnBands); i++ {
		if spawnBands[i].interval >= spawnBands[i-1].interval {
			t.Errorf("band %d interval %f should be shorter than band %d interval %f",
				i, spawnBands[i].interval, i-1, spawnBands[i-1].interval)
		}
	}
}

func TestFlockNoSpawnBelowFirstBand(t *testing.T) {
	f := newTestFlock(1)
	f.Reset()

	for i := 0; i < 3600; i++ {
		f.Advance(1.0/60, 0, spawnBands[0].minMeters-1)
	}
	if len(f.Birds()) != 0 {
		t.Errorf("no birds should spawn below the first band, got %d", len(f.Birds()))
	}
}

func TestFlockSpawnsAndMovesLeft(t *testing.T) {
	f := newTestFlock(2)
	f.Reset()

	meters := spawnBands[0].minMeters
	interval := spawnBands[0].interval

	// Step just past one spawn interval.
	steps := int(interval*60) + 2
	for i := 0; i < steps; i++ {
		f.Advance(1.0/60, 0, meters)
	}

	birds := f.Birds()
	if len(birds) != 1 {
		t.Fatalf("expected one bird after one interval, got %d", len(birds))
	}

	x0 := birds[0].X
	f.Advance(1.0/60, 0, meters)
	if f.Birds()[0].X >= x0 {
		t.Errorf("bird should fly left: %f after %f", f.Birds()[0].X, x0)
	}
	if birds[0].Speed > f.cfg.MaxSpeed {
		t.Errorf("bird speed %f exceeds cap %f", birds[0].Speed, f.cfg.MaxSpeed)
	}
}

func TestFlockPurgesOffscreenBirds(t *testing.T) {
	f := newTestFlock(3)
	f.Reset()
	f.birds = append(f.birds, Bird{X: -3 * f.cfg.HalfWidth, Y: 100, Speed: 100})

	f.Advance(1.0/60, 0, 0)
	if len(f.Birds()) != 0 {
		t.Errorf("offscreen bird should be purged, got %d", len(f.Birds()))
	}
}

func TestFlockCollide(t *testing.T) {
	f := newTestFlock(4)
	f.Reset()
	f.birds = append(f.birds,
		Bird{X: 100, Y: 100},
		Bird{X: 300, Y: 300},
	)

	target := f.birds[0].Rect(f.cfg.HalfWidth, f.cfg.HalfHeight)
	if !f.Collide(target) {
		t.Fatal("overlapping target should collide")
	}
	if len(f.Birds()) != 1 {
		t.Errorf("hit bird should be removed, %d left", len(f.Birds()))
	}
	if f.Birds()[0].X != 300 {
		t.Error("wrong bird removed")
	}

	// A far-away target hits nothing.
	miss := Bird{X: 0, Y: 0}.Rect(1, 1)
	if f.Collide(miss) {
		t.Error("distant target should not collide")
	}
}

func TestBirdHitShovesClimber(t *testing.T) {
	g := newTestGame(30)

	// Park a bird exactly on the grounded climber and run the obstacle pass.
	g.flock.birds = append(g.flock.birds, Bird{X: g.climber.X, Y: g.climber.Y})
	g.advanceBirds(0)

	if g.climber.VX != g.tuning.Birds.HitImpulseX {
		t.Errorf("hit should shove left with %f, got %f", g.tuning.Birds.HitImpulseX, g.climber.VX)
	}
	if g.phase != PhaseJumping {
		t.Errorf("grounded climber should be knocked airborne, phase = %v", g.phase)
	}
	if g.climber.VY != g.tuning.Birds.HitImpulseY {
		t.Errorf("grounded hit should pop upward with %f, got %f", g.tuning.Birds.HitImpulseY, g.climber.VY)
	}
	if len(g.flock.Birds()) != 0 {
		t.Error("the hit bird should be removed")
	}
	if len(g.particles) == 0 {
		t.Error("a hit should emit a particle burst")
	}
}
