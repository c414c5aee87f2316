// Package config provides YAML-based tuning configuration for the climber
// simulation. Values here are the fixed gameplay constants; there are no
// runtime difficulty presets.
package config

// ClimberConfig contains all tuning for the climber simulation.
type ClimberConfig struct {
	Physics     ClimberPhysics     `yaml:"physics"`
	Platforms   ClimberPlatforms   `yaml:"platforms"`
	Birds       ClimberBirds       `yaml:"birds"`
	Progression ClimberProgression `yaml:"progression"`
	Camera      ClimberCamera      `yaml:"camera"`
}

// ClimberPhysics defines the climber's physical parameters, in world units
// (the simulation runs on a fixed 400x600 logical viewport).
type ClimberPhysics struct {
	Gravity         float64 `yaml:"gravity"`           // Downward acceleration, units/s^2
	MaxJumpVelocity float64 `yaml:"max_jump_velocity"` // Launch speed at full power, units/s
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`    // Terminal velocity, units/s
	WallRestitution float64 `yaml:"wall_restitution"`  // Velocity kept after a wall bounce
	ClimberRadius   float64 `yaml:"climber_radius"`    // Collision radius
	MaxFrameScale   float64 `yaml:"max_frame_scale"`   // dt clamp, in nominal frame intervals
	PowerSpeed      float64 `yaml:"power_speed"`       // Power meter sweep rate per second
	PerfectPower    float64 `yaml:"perfect_power"`     // Meter value counting as a perfect release
	MinPowerFloor   float64 `yaml:"min_power_floor"`   // Minimum power fraction applied on release
	PerStageBonus   float64 `yaml:"per_stage_bonus"`   // Jump velocity bonus per evolution tier
	LateralCarry    float64 `yaml:"lateral_carry"`     // Fraction of platform speed kept on launch
}

// ClimberPlatforms defines the platform generator and column maintenance
// parameters. Width and variance shrink with height but never drop below
// their floors; hazard probabilities grow with height but saturate at caps.
type ClimberPlatforms struct {
	Gap             float64 `yaml:"gap"`               // Vertical distance between platforms
	Height          float64 `yaml:"height"`            // Platform thickness
	BaseWidth       float64 `yaml:"base_width"`        // Width at ground level
	MinWidth        float64 `yaml:"min_width"`         // Width floor
	WidthShrink     float64 `yaml:"width_shrink"`      // Width lost per meter climbed
	VarianceBase    float64 `yaml:"variance_base"`     // Random width bonus at ground level
	VarianceMin     float64 `yaml:"variance_min"`      // Variance floor
	VarianceShrink  float64 `yaml:"variance_shrink"`   // Variance lost per meter climbed
	SideMargin      float64 `yaml:"side_margin"`       // Inset from both play-field edges
	BaseSpeed       float64 `yaml:"base_speed"`        // Lateral speed baseline
	SpeedGrowth     float64 `yaml:"speed_growth"`      // Lateral speed gained per meter
	MaxSpeed        float64 `yaml:"max_speed"`         // Lateral speed cap
	MovingMinHeight int     `yaml:"moving_min_height"` // Meters below which platforms stay still
	HazardMinHeight int     `yaml:"hazard_min_height"` // Meters below which all platforms are normal
	TimedProbPerM   float64 `yaml:"timed_prob_per_m"`  // Timed-platform probability per meter
	TimedProbCap    float64 `yaml:"timed_prob_cap"`    // Timed-platform probability cap
	FragileProbPerM float64 `yaml:"fragile_prob_per_m"` // Fragile-platform probability per meter
	FragileProbCap  float64 `yaml:"fragile_prob_cap"`  // Fragile-platform probability cap
	TimedCountdown  float64 `yaml:"timed_countdown"`   // Seconds a timed platform survives once landed on
	SpawnLookAhead  float64 `yaml:"spawn_look_ahead"`  // Generate ahead while topmost is closer than this
	CullMargin      float64 `yaml:"cull_margin"`       // Remove platforms this far below the viewport
	BaselineY       float64 `yaml:"baseline_y"`        // World y of the seed platform (0 meters)
	UnitHeight      float64 `yaml:"unit_height"`       // World units per meter climbed
	SeedWidth       float64 `yaml:"seed_width"`        // Width of the stationary starting platform
}

// ClimberBirds defines the flying obstacle parameters.
// Spawn cadence is height-banded and lives in the simulation code.
type ClimberBirds struct {
	HalfWidth   float64 `yaml:"half_width"`    // Collision half-extent, horizontal
	HalfHeight  float64 `yaml:"half_height"`   // Collision half-extent, vertical
	HitImpulseX float64 `yaml:"hit_impulse_x"` // Leftward shove applied to the climber on hit
	HitImpulseY float64 `yaml:"hit_impulse_y"` // Upward pop applied when hit while grounded
	BaseSpeed   float64 `yaml:"base_speed"`    // Flight speed baseline, units/s
	SpeedGrowth float64 `yaml:"speed_growth"`  // Flight speed gained per meter climbed
	MaxSpeed    float64 `yaml:"max_speed"`     // Flight speed cap
}

// ClimberProgression defines experience gain and decay.
type ClimberProgression struct {
	LandingXP float64 `yaml:"landing_xp"` // Bonus for landing above the previous best platform
	PerfectXP float64 `yaml:"perfect_xp"` // Bonus for a perfect-power release
	DecayRate float64 `yaml:"decay_rate"` // Experience lost per second while grounded
}

// ClimberCamera defines the one-directional scroll behavior.
type ClimberCamera struct {
	Easing       float64 `yaml:"easing"`        // Exponential ease rate toward the target, per second
	LeadFraction float64 `yaml:"lead_fraction"` // Viewport fraction kept above the climber
	FallMargin   float64 `yaml:"fall_margin"`   // Extra distance below the viewport before game over
}
