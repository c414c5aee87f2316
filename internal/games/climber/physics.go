package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// advancePower sweeps the power meter while charging, bouncing off 0 and
// 100 rather than wrapping. Frozen in every other phase.
func (g *Game) advancePower(dt float64) {
	if g.phase != PhaseCharging {
		return
	}

	g.power += g.powerDir * g.tuning.Physics.PowerSpeed * dt
	if g.power >= 100 {
		g.power = 100 - (g.power - 100)
		g.powerDir = -1
	} else if g.power <= 0 {
		g.power = -g.power
		g.powerDir = 1
	}
	g.power = core.ClampF(g.power, 0, 100)
}

// decayTimedPlatforms counts down a timed platform only while it is landed
// on AND currently supporting the climber; an abandoned timed platform is
// frozen even when still on screen. An expired platform is purged this
// frame, detaching the climber with zero vertical velocity so it begins
// falling without a jump impulse.
func (g *Game) decayTimedPlatforms(dt float64) {
	platforms := g.column.Platforms()
	expired := false

	for i := range platforms {
		p := &platforms[i]
		if p.Kind != KindTimed || !p.Landed || p.Removing {
			continue
		}
		if !g.grounded() || g.climber.Support != p.Index {
			continue
		}

		p.Timer -= dt
		if p.Timer <= 0 {
			p.Timer = 0
			p.Removing = true
			expired = true
			g.detach(0)
		}
	}

	if expired {
		g.column.Compact()
	}
}

// advanceBirds runs obstacle spawn, motion, and collision. A hit shoves
// the climber left; if it was grounded it is also popped upward and forced
// airborne, losing any charge in progress. The hit bird is removed and a
// small particle burst marks the impact.
func (g *Game) advanceBirds(dt float64) {
	meters := g.column.HeightMeters(g.bestY)
	g.flock.Advance(dt, g.cameraY, meters)

	r := g.tuning.Physics.ClimberRadius * 0.8
	target := core.CenteredRectF(g.climber.X, g.climber.Y, r, r)
	if !g.flock.Collide(target) {
		return
	}

	g.climber.VX = g.tuning.Birds.HitImpulseX
	if g.grounded() {
		g.detach(g.tuning.Birds.HitImpulseY)
	}
	g.emitBurst(g.climber.X, g.climber.Y, 8, hueHit)
}

// decayExperience bleeds experience while grounded and demotes the stage
// when the decayed value drops below the current stage's threshold.
func (g *Game) decayExperience(dt float64) {
	if !g.grounded() || g.experience <= 0 {
		return
	}

	g.experience = math.Max(0, g.experience-g.tuning.Progression.DecayRate*dt)

	if s := StageFor(g.experience); s < g.stage {
		g.stage = s
		g.emitBurst(g.climber.X, g.climber.Y-10, 5, hueDemote)
	}
}

// moveGrounded keeps the climber glued to its supporting platform: x
// tracks the platform's velocity and y stays pinned to its surface. A
// culled support index or a platform that has scrolled below the viewport
// force-detaches the climber into a fall.
func (g *Game) moveGrounded(dt float64) {
	if !g.grounded() {
		return
	}

	p := g.column.ByIndex(g.climber.Support)
	if p == nil || p.Removing {
		g.detach(0)
		return
	}

	g.climber.X += p.Speed * dt
	g.climber.Y = p.Y - g.tuning.Physics.ClimberRadius

	if p.Y > g.cameraY+WorldH {
		g.detach(0)
	}
}

// integrateAirborne applies gravity and motion while jumping, reflects off
// the side walls with damping, emits trail particles on the way up, and
// hands the previous-frame y to landing resolution.
func (g *Game) integrateAirborne(dt float64) {
	if g.phase != PhaseJumping {
		return
	}

	phys := g.tuning.Physics
	prevY := g.climber.Y

	g.climber.VY += phys.Gravity * dt
	if g.climber.VY > phys.MaxFallSpeed {
		g.climber.VY = phys.MaxFallSpeed
	}
	g.climber.X += g.climber.VX * dt
	g.climber.Y += g.climber.VY * dt

	minX := phys.ClimberRadius
	maxX := WorldW - phys.ClimberRadius
	if g.climber.X < minX {
		g.climber.X = minX
		g.climber.VX = -g.climber.VX * phys.WallRestitution
	} else if g.climber.X > maxX {
		g.climber.X = maxX
		g.climber.VX = -g.climber.VX * phys.WallRestitution
	}

	if g.climber.VY < 0 {
		if g.climber.Y < g.bestY {
			g.bestY = g.climber.Y
		}
		if g.rng.Float64() < dt*18 {
			g.emitTrail(g.climber.X, g.climber.Y)
		}
	}

	g.resolveLanding(prevY)
}

// resolveLanding tests a swept vertical interval against every on-screen
// platform while descending. The first platform in column order wins; the
// horizontal test uses a narrowed effective half-width so landings are
// forgiving side-to-side but precise vertically.
func (g *Game) resolveLanding(prevY float64) {
	if g.phase != PhaseJumping || g.climber.VY <= 0 {
		return
	}

	screenY := g.climber.Y - g.cameraY
	if screenY < -50 || screenY > WorldH+50 {
		return
	}

	radius := g.tuning.Physics.ClimberRadius
	prevBottom := prevY + radius
	newBottom := g.climber.Y + radius

	platforms := g.column.Platforms()
	for i := range platforms {
		p := &platforms[i]
		if p.Removing {
			continue
		}
		if p.Y < g.cameraY-40 || p.Y > g.cameraY+WorldH+40 {
			continue
		}
		if prevBottom > p.Y || newBottom < p.Y {
			continue
		}
		effHalf := p.W/2 + radius*0.6
		if math.Abs(g.climber.X-p.CenterX()) > effHalf {
			continue
		}

		g.land(p)
		return
	}
}

// land snaps the climber onto the platform, awards experience when this is
// the highest platform reached so far, updates the score, and promotes the
// evolution stage when the (possibly boosted) experience crosses a
// threshold.
func (g *Game) land(p *Platform) {
	radius := g.tuning.Physics.ClimberRadius

	g.climber.Y = p.Y - radius
	g.climber.VX = 0
	g.climber.VY = 0
	g.climber.Support = p.Index
	g.phase = PhaseIdle

	p.Landed = true

	if p.Y < g.highestPlatformY {
		g.highestPlatformY = p.Y
		g.experience += g.tuning.Progression.LandingXP
		g.landingCue = CueExperience
	} else {
		g.landingCue = CueSafe
	}
	g.landingCueT = landingCueTime

	if m := g.column.HeightMeters(p.Y); m > g.score {
		g.score = m
	}
	if g.climber.Y < g.bestY {
		g.bestY = g.climber.Y
	}

	if s := StageFor(g.experience); s > g.stage {
		g.stage = s
		g.evolutionT = evolutionFlashTime
		g.emitBurst(g.climber.X, g.climber.Y-10, 16, hueCelebrate)
	}
}

// checkGameOver ends the run once the airborne climber has fallen past the
// viewport bottom plus the fall margin, committing the high score.
func (g *Game) checkGameOver() {
	if g.phase != PhaseJumping {
		return
	}
	if g.climber.Y <= g.cameraY+WorldH+g.tuning.Camera.FallMargin {
		return
	}

	g.phase = PhaseGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// easeCamera scrolls the viewport toward keeping the climber at the lead
// fraction of the screen. The camera only ever moves upward (toward
// smaller y) and eases exponentially, never snapping.
func (g *Game) easeCamera(dt float64) {
	target := g.climber.Y - g.tuning.Camera.LeadFraction*WorldH
	if target >= g.cameraY {
		return
	}

	k := core.ClampF(g.tuning.Camera.Easing*dt, 0, 1)
	g.cameraY += (target - g.cameraY) * k
}

// decayCues counts down the landing, evolution, and perfect-release cues.
func (g *Game) decayCues(dt float64) {
	if g.landingCueT > 0 {
		g.landingCueT -= dt
		if g.landingCueT <= 0 {
			g.landingCueT = 0
			g.landingCue = CueNone
		}
	}
	if g.evolutionT > 0 {
		g.evolutionT = math.Max(0, g.evolutionT-dt)
	}
	if g.perfectT > 0 {
		g.perfectT = math.Max(0, g.perfectT-dt)
	}
}
