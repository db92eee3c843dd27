package pedal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
)

// Layout of the cockpit, in logical pixels on the 800x600 surface.
const (
	pedalX       = 350
	pedalY       = 520
	pedalWidth   = 100
	pedalHeight  = 30
	pedalTravel  = 25 // One terminal row at 80x24
	wheelX       = 400
	wheelY       = 500
	wheelRadius  = 96
	hubRadius    = 30
	dashLength   = 40
	dashGap      = 30
	dashRows     = 20
	streakCount  = 10
	streakMinVel = 2
)

// Scene holds what the renderer needs besides the simulation state.
type Scene struct {
	Backdrop *Backdrop // nil while loading; the fallback ridge is drawn instead
	Streaks  *rand.Rand
	Paused   bool
}

// Render turns a state into an ordered draw list. It reads the state only;
// the streak RNG affects pixels, never the simulation.
func Render(s State, cfg config.PedalConfig, sc Scene) *core.DrawList {
	w, h := cfg.Surface.Width, cfg.Surface.Height
	d := core.NewDrawList(w, h)

	drawSky(d, w, h)
	drawMountains(d, s, sc.Backdrop, w, h)
	drawRoad(d, s, w, h)
	drawPedals(d, s.Pedal)
	drawWheel(d)
	drawStreaks(d, s, cfg, sc.Streaks, w, h)
	drawHUD(d, s, cfg, w)

	if sc.Paused {
		d.Layer(core.LayerOverlay).
			Rect(w/2-120, h/2-40, 240, 80, ' ', core.ColorDefault).
			Text(w/2, h/2-15, "PAUSED", core.ColorBrightWhite, core.AlignCenter).
			Text(w/2, h/2+10, "P to resume", core.ColorGray, core.AlignCenter)
	}
	return d
}

func drawSky(d *core.DrawList, w, h float64) {
	d.Layer(core.LayerSky).
		Gradient(0, 0, w, h/2, '░', core.ColorSky, core.ColorBrightCyan, core.ColorBrightWhite)
}

func drawMountains(d *core.DrawList, s State, b *Backdrop, w, h float64) {
	d.Layer(core.LayerParallax)
	horizon := h / 2

	if b == nil || len(b.Ridge) == 0 {
		// Sine ridge until the art is in
		shift := math.Mod(s.RoadOffset*0.1, 100)
		var prevX, prevH float64
		for i := 0.0; i < w+100; i += 50 {
			x := i + shift - 100
			mh := 80 + math.Sin(i*0.01)*20
			if i > 0 {
				d.Triangle(prevX, horizon-prevH, x, horizon-mh, x, horizon, '▒', core.ColorOrange)
				d.Triangle(prevX, horizon-prevH, x, horizon, prevX, horizon, '▒', core.ColorOrange)
			}
			prevX, prevH = x, mh
		}
		return
	}

	cols := float64(len(b.Ridge))
	colW := w / cols
	offset := core.Wrap(s.RoadOffset*0.05, w)
	for tile := 0.0; tile < 2; tile++ {
		for c, r := range b.Ridge {
			if r <= 0 {
				continue
			}
			x := tile*w + float64(c)*colW - offset
			if x+colW <= 0 || x >= w {
				continue
			}
			mh := r * horizon * 0.7
			d.Rect(x, horizon-mh, colW, mh, '▓', core.ColorDusk)
		}
	}
}

func drawRoad(d *core.DrawList, s State, w, h float64) {
	d.Layer(core.LayerTrack)
	horizon := h / 2

	// Asphalt
	d.Triangle(w/2-2, horizon, w/2+2, horizon, w, h, '▒', core.ColorAsphalt).
		Triangle(w/2-2, horizon, w, h, 0, h, '▒', core.ColorAsphalt)

	// Grass verges
	d.Triangle(0, horizon, w/2-1, horizon, 50, h, '▓', core.ColorGrass).
		Triangle(0, horizon, 50, h, 0, h, '▓', core.ColorGrass).
		Triangle(w, horizon, w/2+1, horizon, w-50, h, '▓', core.ColorGrass).
		Triangle(w, horizon, w-50, h, w, h, '▓', core.ColorGrass)

	// Road edges
	d.Line(w/2-1, horizon, 50, h, '/', core.ColorBrightWhite).
		Line(w/2+1, horizon, w-50, h, '\\', core.ColorBrightWhite)

	// Centre dashes flow toward the driver
	rowH := (h - horizon) / dashRows
	period := float64(dashLength + dashGap)
	for i := range dashRows {
		progress := float64(i) / dashRows
		y := horizon + (h-horizon)*progress
		if core.Wrap(float64(i)*period/2-s.RoadOffset*2, period) >= dashLength {
			continue
		}
		dw := 4 + 8*progress
		d.Rect(w/2-dw/2, y, dw, rowH, '█', core.ColorYellow)
	}
}

func drawPedals(d *core.DrawList, a Animation) {
	d.Layer(core.LayerActors)

	offset := 0.0
	if a.Active {
		offset = -pedalTravel
		if a.Frame == 1 {
			offset = pedalTravel
		}
	}

	d.Rect(pedalX-10, pedalY+offset, pedalWidth/2-5, pedalHeight, '█', core.ColorGray).
		Rect(pedalX+pedalWidth/2+5, pedalY-offset, pedalWidth/2-5, pedalHeight, '█', core.ColorGray)
}

func drawWheel(d *core.DrawList) {
	d.Layer(core.LayerActors)

	const segments = 24
	for i := range segments {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		d.Line(wheelX+math.Cos(a0)*wheelRadius, wheelY+math.Sin(a0)*wheelRadius,
			wheelX+math.Cos(a1)*wheelRadius, wheelY+math.Sin(a1)*wheelRadius,
			'●', core.ColorOrange)
	}
	for i := range 4 {
		a := float64(i) * math.Pi / 2
		d.Line(wheelX+math.Cos(a)*hubRadius, wheelY+math.Sin(a)*hubRadius,
			wheelX+math.Cos(a)*(wheelRadius-6), wheelY+math.Sin(a)*(wheelRadius-6),
			'·', core.ColorOrange)
	}
	d.Circle(wheelX, wheelY, hubRadius, '█', core.ColorOrange).
		Text(wheelX, wheelY, "RP", core.ColorGold, core.AlignCenter)
}

func drawStreaks(d *core.DrawList, s State, cfg config.PedalConfig, rng *rand.Rand, w, h float64) {
	if rng == nil || s.ScrollSpeed <= streakMinVel {
		return
	}
	d.Layer(core.LayerActors)

	color := core.ColorGray
	if s.ScrollSpeed/cfg.Physics.MaxScrollSpeed > 0.8 {
		color = core.ColorBrightWhite
	}
	length := s.ScrollSpeed * 10
	for range streakCount {
		x := rng.Float64() * w
		y := rng.Float64() * h
		d.Line(x, y, x, y+length, '│', color)
	}
}

func drawHUD(d *core.DrawList, s State, cfg config.PedalConfig, w float64) {
	d.Layer(core.LayerHUD)

	d.Text(20, 30, fmt.Sprintf("Speed: %d km/h", s.SpeedKMH()), core.ColorBrightWhite, core.AlignLeft).
		Text(w/2, 30, fmt.Sprintf("Time %.1fs", s.GameTime), core.ColorBrightWhite, core.AlignCenter).
		Text(w-20, 30, fmt.Sprintf("Pedals: %d", s.ClickCounter), core.ColorBrightWhite, core.AlignRight).
		Text(w-20, 60, fmt.Sprintf("Best: %d", s.HighScore), core.ColorGold, core.AlignRight)

	// Speed bar, green to red in thirds
	const barX, barY, barW, barH = 20, 55, 200, 20
	d.Rect(barX, barY, barW, barH, '░', core.ColorGray)
	filled := 0.0
	if cfg.Physics.MaxScrollSpeed > 0 {
		filled = barW * s.ScrollSpeed / cfg.Physics.MaxScrollSpeed
	}
	bands := []core.Color{core.ColorBrightGreen, core.ColorBrightYellow, core.ColorBrightRed}
	third := float64(barW) / 3
	for i, c := range bands {
		start := float64(i) * third
		if filled <= start {
			break
		}
		d.Rect(barX+start, barY, min(third, filled-start), barH, '█', c)
	}

	if s.NewRecord() {
		d.Text(w/2, 90, "NEW RECORD!", core.ColorGold, core.AlignCenter)
	}
}
