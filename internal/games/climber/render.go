package climber

import (
	"fmt"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Visual characters for rendering.
const (
	platformChar = '▀'
	fragileChar  = '╌'
	birdCharUp   = 'v'
	birdCharDown = 'w'
	particleChar = '·'
	sparkChar    = '•'
	wallChar     = '│'
)

// Render draws the current game state to the screen. It reads exclusively
// from the frame snapshot, the same view any external presentation layer
// would get.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	w := dst.Width()
	h := dst.Height()
	if w < 4 || h < 4 {
		return
	}

	// One status row on top, one power row at the bottom.
	fieldTop := 1
	fieldH := h - 2

	toScreen := func(wx, wy float64) (int, int) {
		sx := int(wx / WorldW * float64(w))
		sy := fieldTop + int((wy-snap.CameraY)/WorldH*float64(fieldH))
		return sx, sy
	}

	// Side walls
	for y := fieldTop; y < fieldTop+fieldH; y++ {
		dst.SetCell(0, y, wallChar, core.ColorGray)
		dst.SetCell(w-1, y, wallChar, core.ColorGray)
	}

	g.drawPlatforms(dst, snap, toScreen, w)
	g.drawParticles(dst, snap, toScreen)
	g.drawBirds(dst, snap, toScreen)
	g.drawClimber(dst, snap, toScreen)
	g.drawHUD(dst, snap, w)
	g.drawPowerBar(dst, snap, w, h)

	if snap.Phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Height: %dm  |  Best: %dm  |  Press R to climb again", snap.Score, snap.HighScore))
	}
}

func (g *Game) drawPlatforms(dst *core.Screen, snap Snapshot, toScreen func(float64, float64) (int, int), w int) {
	for _, p := range snap.Platforms {
		x0, y := toScreen(p.X, p.Y)
		x1, _ := toScreen(p.X+p.W, p.Y)
		if x1 <= x0 {
			x1 = x0 + 1
		}

		char := platformChar
		color := core.ColorGreen
		switch p.Kind {
		case KindTimed:
			color = core.ColorBrightYellow
		case KindFragile:
			char = fragileChar
			color = core.ColorGray
		}

		dst.DrawHLineColored(x0, y, x1-x0, char, color)

		// Remaining seconds in the middle of an armed timed platform.
		if p.Kind == KindTimed && p.Landed {
			label := fmt.Sprintf("%d", int(p.Timer)+1)
			dst.DrawTextColored((x0+x1)/2, y, label, core.ColorBrightRed)
		}
	}
}

func (g *Game) drawParticles(dst *core.Screen, snap Snapshot, toScreen func(float64, float64) (int, int)) {
	for _, p := range snap.Particles {
		x, y := toScreen(p.X, p.Y)
		char := particleChar
		if p.Size > 2 {
			char = sparkChar
		}
		dst.SetCell(x, y, char, hueColor(p.Hue))
	}
}

func (g *Game) drawBirds(dst *core.Screen, snap Snapshot, toScreen func(float64, float64) (int, int)) {
	for _, b := range snap.Birds {
		x, y := toScreen(b.X, b.Y)
		char := birdCharUp
		if int(b.Phase*2)%2 == 0 {
			char = birdCharDown
		}
		dst.SetCell(x, y, char, core.ColorBrightRed)
	}
}

func (g *Game) drawClimber(dst *core.Screen, snap Snapshot, toScreen func(float64, float64) (int, int)) {
	stage := Stages[snap.Stage]
	x, y := toScreen(snap.Climber.X, snap.Climber.Y)
	dst.SetCell(x, y, stage.Glyph, stage.Color)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot, w int) {
	stage := Stages[snap.Stage]
	left := fmt.Sprintf(" %dm  best %dm ", snap.Score, snap.HighScore)
	right := fmt.Sprintf(" %s  xp %d ", stage.Name, int(snap.Experience))
	dst.DrawText(1, 0, left)
	dst.DrawTextColored(w-len(right)-1, 0, right, stage.Color)

	switch {
	case snap.PerfectLeft > 0:
		dst.DrawTextCentered(0, "PERFECT!")
	case snap.EvolutionLeft > 0:
		dst.DrawTextCentered(0, fmt.Sprintf("EVOLVED: %s", stage.Name))
	case snap.LandingCue == CueExperience && snap.LandingCueLeft > 0:
		dst.DrawTextCentered(0, fmt.Sprintf("+%d XP", int(g.tuning.Progression.LandingXP)))
	case snap.LandingCue == CueSafe && snap.LandingCueLeft > 0:
		dst.DrawTextCentered(0, "safe landing")
	}
}

func (g *Game) drawPowerBar(dst *core.Screen, snap Snapshot, w, h int) {
	y := h - 1
	barW := w - 12
	if barW < 4 {
		return
	}

	dst.DrawText(1, y, "Power")
	filled := int(snap.Power / 100 * float64(barW))

	color := core.ColorGreen
	if snap.Power >= g.tuning.Physics.PerfectPower {
		color = core.ColorBrightMagenta
	} else if snap.Power > 70 {
		color = core.ColorBrightYellow
	}

	for i := 0; i < barW; i++ {
		char := '░'
		c := core.ColorGray
		if i < filled {
			char = '█'
			c = color
		}
		dst.SetCell(7+i, y, char, c)
	}
	dst.DrawText(8+barW, y, fmt.Sprintf("%3d", int(snap.Power)))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// hueColor maps a particle hue hint to the nearest terminal color.
func hueColor(hue int) core.Color {
	switch {
	case hue == hueDemote:
		return core.ColorGray
	case hue < 30:
		return core.ColorBrightRed
	case hue < 70:
		return core.ColorBrightYellow
	case hue < 180:
		return core.ColorBrightGreen
	case hue < 280:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightMagenta
	}
}
