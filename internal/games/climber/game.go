// Package climber implements a vertical platform-jumping game: a climber
// ascends an endless procedurally generated column of moving, decaying, or
// timed platforms, charging jumps with a bouncing power meter while
// gaining and losing experience along a cosmetic evolution ladder.
//
// The simulation runs in a fixed 400x600 logical world (y grows downward)
// and is fully deterministic for a given seed and elapsed-time sequence.
package climber

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

// Logical viewport dimensions in world units. The presentation layer maps
// these onto whatever terminal size is available.
const (
	WorldW = 400.0
	WorldH = 600.0
)

// Cosmetic cue durations in seconds.
const (
	landingCueTime     = 0.9
	evolutionFlashTime = 1.6
	perfectFlashTime   = 0.7
)

// Phase is the game state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // grounded, waiting for a charge
	PhaseCharging              // grounded, power meter sweeping
	PhaseJumping               // airborne
	PhaseGameOver              // fell below the viewport; terminal until reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCharging:
		return "charging"
	case PhaseJumping:
		return "jumping"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// CueKind identifies the landing feedback variant.
type CueKind int

const (
	CueNone       CueKind = iota
	CueSafe               // landed on or below the best platform so far
	CueExperience         // landed above it; experience was awarded
)

// Climber is the physics-driven player entity. Position is its center in
// world coordinates. Support holds the identity index of the platform
// currently under it, or -1 while airborne; a dangling index (platform
// culled) is treated as detached.
type Climber struct {
	X, Y    float64
	VX, VY  float64
	Support int
}

// Game is the climber simulation. All mutable world state lives here and
// is only touched by Step and the three commands; the platform layer reads
// it through Snapshot.
type Game struct {
	tuning config.ClimberConfig
	rc     core.RuntimeConfig
	rng    *rand.Rand

	phase     Phase
	climber   Climber
	column    *Column
	flock     *Flock
	particles []Particle

	cameraY float64

	power    float64
	powerDir float64

	experience       float64
	stage            int
	bestY            float64 // smallest climber y reached this run
	highestPlatformY float64 // y of the highest platform landed on this run
	score            int
	highScore        int // preserved across resets

	landingCue  CueKind
	landingCueT float64
	evolutionT  float64
	perfectT    float64

	elapsed time.Duration
	started bool
	tick    uint64
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets a custom tuning config path for subsequently created
// games.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new climber game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climber"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Climber"
}

// Reset initializes or restarts the game. The in-memory high score is the
// best across all runs of this session and starts at zero.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	if rc.TickRate <= 0 {
		g.rc.TickRate = 60
	}

	tuning, err := config.LoadClimber(configPath)
	if err != nil {
		tuning = config.DefaultClimberConfig()
	}
	g.tuning = tuning

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.column = NewColumn(g.rng, g.tuning.Platforms)
	g.flock = NewFlock(g.rng, g.tuning.Birds)

	g.highScore = 0
	g.started = false
	g.elapsed = 0
	g.tick = 0

	g.resetRun()
}

// resetRun reinitializes the world for a fresh run: seed platform, climber
// on it, counters zeroed, camera reset. The high score is preserved.
func (g *Game) resetRun() {
	g.column.Reset()
	g.flock.Reset()
	g.particles = g.particles[:0]

	seed := g.column.Platforms()[0]
	g.climber = Climber{
		X:       seed.CenterX(),
		Y:       seed.Y - g.tuning.Physics.ClimberRadius,
		Support: seed.Index,
	}

	g.cameraY = g.climber.Y - g.tuning.Camera.LeadFraction*WorldH
	g.column.Maintain(g.cameraY)

	g.power = 0
	g.powerDir = 1
	g.experience = 0
	g.stage = 0
	g.bestY = g.climber.Y
	g.highestPlatformY = seed.Y
	g.score = 0

	g.landingCue = CueNone
	g.landingCueT = 0
	g.evolutionT = 0
	g.perfectT = 0

	g.phase = PhaseIdle
}

// Step advances the simulation by one tick. All per-frame mutations run
// before any input command is applied, so a command can never race a
// transition the stepper made in the same tick.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	dt := g.deriveDt(elapsed)

	if g.phase == PhaseGameOver {
		// Let the remaining effects settle on the end screen.
		g.advanceParticles(dt)
		g.decayCues(dt)
	} else {
		g.advance(dt)
	}

	g.handleCommands(in)
	g.tick++

	return core.StepResult{State: g.State()}
}

// deriveDt computes the clamped time delta from consecutive elapsed
// values. Negative deltas (frozen or rewound clocks) collapse to zero and
// oversized deltas are capped, so a frame-rate hitch can never tunnel the
// climber through a platform.
func (g *Game) deriveDt(elapsed time.Duration) float64 {
	nominal := 1.0 / float64(g.rc.TickRate)
	if !g.started {
		g.started = true
		g.elapsed = elapsed
		return nominal
	}

	dt := (elapsed - g.elapsed).Seconds()
	g.elapsed = elapsed
	return core.ClampF(dt, 0, g.tuning.Physics.MaxFrameScale*nominal)
}

// advance runs one frame of the simulation in a fixed order: power meter,
// platform motion, timed decay, obstacles, experience decay, grounded
// tracking, airborne integration with landing resolution, game-over check,
// camera, column maintenance, and finally particles and cues.
func (g *Game) advance(dt float64) {
	g.advancePower(dt)
	g.column.Advance(dt)
	g.decayTimedPlatforms(dt)
	g.advanceBirds(dt)
	g.decayExperience(dt)
	g.moveGrounded(dt)
	g.integrateAirborne(dt)
	g.checkGameOver()
	g.easeCamera(dt)
	g.column.Maintain(g.cameraY)
	g.advanceParticles(dt)
	g.decayCues(dt)
}

// grounded reports whether the climber currently has a supporting platform.
func (g *Game) grounded() bool {
	return g.phase == PhaseIdle || g.phase == PhaseCharging
}

// detach clears the support reference and forces the climber airborne with
// the given vertical velocity. A charge in progress is lost; the power
// meter freezes at its last value.
func (g *Game) detach(vy float64) {
	g.climber.Support = -1
	g.climber.VY = vy
	g.phase = PhaseJumping
}

// handleCommands drains this tick's input. The primary action begins a
// charge when idle and releases the jump while charging; restart is only
// honored at game over. Invalid commands are silent no-ops.
func (g *Game) handleCommands(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		switch g.phase {
		case PhaseIdle:
			g.BeginCharge()
		case PhaseCharging:
			g.ReleaseJump()
		}
	}
	if in.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.ResetRun()
	}
}

// BeginCharge starts the power meter sweep. No-op unless idle.
func (g *Game) BeginCharge() {
	if g.phase != PhaseIdle {
		return
	}
	g.power = 0
	g.powerDir = 1
	g.phase = PhaseCharging
}

// ReleaseJump launches the climber with a velocity scaled by the power
// meter and the evolution stage bonus. A fragile launch platform is
// destroyed immediately; a near-maximum power reading is a perfect release
// granting bonus experience and a flash. No-op unless charging.
func (g *Game) ReleaseJump() {
	if g.phase != PhaseCharging {
		return
	}

	phys := g.tuning.Physics
	frac := math.Max(phys.MinPowerFloor, g.power/100)
	launch := phys.MaxJumpVelocity * frac * (1 + float64(g.stage)*phys.PerStageBonus)

	g.climber.VY = -launch
	g.climber.VX = 0
	if p := g.column.ByIndex(g.climber.Support); p != nil {
		g.climber.VX = p.Speed * phys.LateralCarry
		if p.Kind == KindFragile {
			p.Removing = true
			g.column.Compact()
		}
	}

	if g.power >= phys.PerfectPower {
		g.experience += g.tuning.Progression.PerfectXP
		g.perfectT = perfectFlashTime
		g.emitBurst(g.climber.X, g.climber.Y, 24, hueCelebrate)
	}

	g.climber.Support = -1
	g.phase = PhaseJumping
}

// ResetRun reinitializes the whole simulation state and returns to idle.
// The high score is preserved. No-op restrictions do not apply: a reset is
// the one command that always works.
func (g *Game) ResetRun() {
	g.resetRun()
}

// State returns the current platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		HighScore:  g.highScore,
		BestHeight: g.column.HeightMeters(g.bestY),
		Tier:       g.stage,
		GameOver:   g.phase == PhaseGameOver,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("climber", func() registry.Game {
		return New()
	})
}
