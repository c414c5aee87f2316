package climber

import "github.com/vovakirdan/tui-climber/internal/core"

// Snapshot is the read-only per-frame view handed to the presentation
// layer. Everything is value-typed and deep-copied, so nothing the reader
// does can reach back into the simulation.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	Climber   ClimberView
	Platforms []PlatformView
	Birds     []BirdView
	Particles []ParticleView

	CameraY float64
	Power   float64

	Score      int
	HighScore  int
	Experience float64
	Stage      int
	BestHeight int // best height this run, meters

	LandingCue     CueKind
	LandingCueLeft float64 // seconds remaining on the landing cue
	EvolutionLeft  float64 // seconds remaining on the evolution flash
	PerfectLeft    float64 // seconds remaining on the perfect-release flash
}

// ClimberView is the climber as seen by the renderer. Stretch is a visual
// hint derived from vertical velocity: negative while rising, positive
// while falling, scaled to roughly [-1, 1].
type ClimberView struct {
	X, Y    float64
	VX, VY  float64
	Support int // supporting platform index, -1 while airborne
	Stretch float64
}

// PlatformView is one platform as seen by the renderer.
type PlatformView struct {
	Index  int
	X, Y   float64
	W, H   float64
	Speed  float64
	Kind   PlatformKind
	Timer  float64
	Landed bool
}

// BirdView is one obstacle as seen by the renderer.
type BirdView struct {
	X, Y  float64
	Phase float64
}

// ParticleView is one particle as seen by the renderer.
type ParticleView struct {
	X, Y    float64
	Life    float64
	MaxLife float64
	Size    float64
	Hue     int
}

// Snapshot returns the current frame's read-only view.
func (g *Game) Snapshot() Snapshot {
	phys := g.tuning.Physics

	stretch := 0.0
	if phys.MaxJumpVelocity > 0 {
		stretch = core.ClampF(g.climber.VY/phys.MaxJumpVelocity, -1, 1)
	}

	platforms := make([]PlatformView, 0, len(g.column.Platforms()))
	for _, p := range g.column.Platforms() {
		platforms = append(platforms, PlatformView{
			Index:  p.Index,
			X:      p.X,
			Y:      p.Y,
			W:      p.W,
			H:      p.H,
			Speed:  p.Speed,
			Kind:   p.Kind,
			Timer:  p.Timer,
			Landed: p.Landed,
		})
	}

	birds := make([]BirdView, 0, len(g.flock.Birds()))
	for _, b := range g.flock.Birds() {
		birds = append(birds, BirdView{X: b.X, Y: b.Y, Phase: b.Phase})
	}

	particles := make([]ParticleView, 0, len(g.particles))
	for _, p := range g.particles {
		particles = append(particles, ParticleView{
			X:       p.X,
			Y:       p.Y,
			Life:    p.Life,
			MaxLife: p.MaxLife,
			Size:    p.Size,
			Hue:     p.Hue,
		})
	}

	return Snapshot{
		Tick:  g.tick,
		Phase: g.phase,
		Climber: ClimberView{
			X:       g.climber.X,
			Y:       g.climber.Y,
			VX:      g.climber.VX,
			VY:      g.climber.VY,
			Support: g.climber.Support,
			Stretch: stretch,
		},
		Platforms: platforms,
		Birds:     birds,
		Particles: particles,

		CameraY: g.cameraY,
		Power:   g.power,

		Score:      g.score,
		HighScore:  g.highScore,
		Experience: g.experience,
		Stage:      g.stage,
		BestHeight: g.column.HeightMeters(g.bestY),

		LandingCue:     g.landingCue,
		LandingCueLeft: g.landingCueT,
		EvolutionLeft:  g.evolutionT,
		PerfectLeft:    g.perfectT,
	}
}
