package climber

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Stage is one tier of the evolution ladder. Stages are purely cosmetic:
// they change the climber's glyph and grant a small jump-height bonus,
// but never alter collision or platform behavior.
type Stage struct {
	Threshold float64 // Experience required to hold this stage
	Name      string
	Glyph     rune
	Color     core.Color
}

// Stages is the evolution table: thresholds strictly increasing, first
// entry at zero so every experience value maps to a stage.
var Stages = []Stage{
	{Threshold: 0, Name: "Egg", Glyph: 'o', Color: core.ColorWhite},
	{Threshold: 30, Name: "Hatchling", Glyph: '@', Color: core.ColorBrightYellow},
	{Threshold: 80, Name: "Chick", Glyph: '&', Color: core.ColorYellow},
	{Threshold: 160, Name: "Fledgling", Glyph: '%', Color: core.ColorBrightGreen},
	{Threshold: 280, Name: "Raptor", Glyph: '#', Color: core.ColorBrightCyan},
	{Threshold: 450, Name: "Phoenix", Glyph: '*', Color: core.ColorBrightMagenta},
}

// StageFor returns the index of the highest stage whose threshold is at or
// below the given experience. Experience is floored first, so tiny decay
// steps cannot flip the stage back and forth within a single point.
// The lookup is a monotone step function and idempotent for equal inputs.
func StageFor(experience float64) int {
	xp := math.Floor(experience)
	if xp < 0 {
		xp = 0
	}

	idx := 0
	for i, s := range Stages {
		if xp >= s.Threshold {
			idx = i
		} else {
			break
		}
	}
	return idx
}
