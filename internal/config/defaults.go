package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultClimberConfig returns the default climber tuning.
// Kept in sync with defaults/climber.yaml; this is the fallback if the
// embedded YAML somehow fails to parse.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		Physics: ClimberPhysics{
			Gravity:         2200.0,
			MaxJumpVelocity: 1050.0,
			MaxFallSpeed:    1400.0,
			WallRestitution: 0.55,
			ClimberRadius:   12.0,
			MaxFrameScale:   3.0,
			PowerSpeed:      140.0,
			PerfectPower:    97.0,
			MinPowerFloor:   0.25,
			PerStageBonus:   0.04,
			LateralCarry:    0.5,
		},
		Platforms: ClimberPlatforms{
			Gap:             90.0,
			Height:          14.0,
			BaseWidth:       95.0,
			MinWidth:        44.0,
			WidthShrink:     0.35,
			VarianceBase:    26.0,
			VarianceMin:     6.0,
			VarianceShrink:  0.1,
			SideMargin:      10.0,
			BaseSpeed:       26.0,
			SpeedGrowth:     0.5,
			MaxSpeed:        110.0,
			MovingMinHeight: 4,
			HazardMinHeight: 12,
			TimedProbPerM:   0.003,
			TimedProbCap:    0.22,
			FragileProbPerM: 0.0025,
			FragileProbCap:  0.18,
			TimedCountdown:  3.0,
			SpawnLookAhead:  300.0,
			CullMargin:      80.0,
			BaselineY:       540.0,
			UnitHeight:      18.0,
			SeedWidth:       180.0,
		},
		Birds: ClimberBirds{
			HalfWidth:   14.0,
			HalfHeight:  9.0,
			HitImpulseX: -160.0,
			HitImpulseY: -220.0,
			BaseSpeed:   120.0,
			SpeedGrowth: 0.4,
			MaxSpeed:    260.0,
		},
		Progression: ClimberProgression{
			LandingXP: 12.0,
			PerfectXP: 20.0,
			DecayRate: 1.5,
		},
		Camera: ClimberCamera{
			Easing:       4.0,
			LeadFraction: 0.65,
			FallMargin:   60.0,
		},
	}
}
