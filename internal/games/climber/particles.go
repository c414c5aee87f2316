package climber

import "math"

// Particle is a transient cosmetic entity. Rendering is the platform
// layer's concern; the simulation only tracks counts and lifetimes because
// gameplay events spawn them, which makes them useful as event markers in
// tests.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // remaining seconds
	MaxLife float64
	Size    float64
	Hue     int // 0..360 color hint
}

// particleGravity is the mild downward pull applied to every particle.
const particleGravity = 300.0

// Hue hints for the event bursts.
const (
	hueHit       = 8   // red-ish, obstacle collision
	hueTrail     = 200 // blue-ish, jump trail
	hueCelebrate = 48  // gold, promotion and perfect release
	hueDemote    = 0   // gray puff; rendered desaturated
)

// emitBurst spawns a radial burst of n particles at (x, y).
func (g *Game) emitBurst(x, y float64, n int, hue int) {
	for i := 0; i < n; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := 60 + g.rng.Float64()*160
		life := 0.4 + g.rng.Float64()*0.5
		g.particles = append(g.particles, Particle{
			X:       x,
			Y:       y,
			VX:      speed * math.Cos(angle),
			VY:      speed*math.Sin(angle) - 40,
			Life:    life,
			MaxLife: life,
			Size:    1 + g.rng.Float64()*2,
			Hue:     hue,
		})
	}
}

// emitTrail spawns one upward-drifting trail particle behind the climber.
func (g *Game) emitTrail(x, y float64) {
	life := 0.25 + g.rng.Float64()*0.3
	g.particles = append(g.particles, Particle{
		X:       x + (g.rng.Float64()-0.5)*8,
		Y:       y + 6,
		VX:      (g.rng.Float64() - 0.5) * 30,
		VY:      40 + g.rng.Float64()*40,
		Life:    life,
		MaxLife: life,
		Size:    1,
		Hue:     hueTrail,
	})
}

// advanceParticles integrates particle motion and purges expired ones in a
// single filter pass.
func (g *Game) advanceParticles(dt float64) {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += particleGravity * dt
		p.Life -= dt
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}
