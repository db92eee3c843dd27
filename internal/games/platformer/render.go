package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pedal-arcade/internal/config"
	"github.com/vovakirdan/pedal-arcade/internal/core"
)

const (
	cloudCount   = 5
	cloudSpacing = 200
	tuftSpacing  = 20
	heartSpacing = 35
)

// Scene holds what the renderer needs besides the simulation state.
type Scene struct {
	Best   int
	Paused bool
}

// Render turns a state into an ordered draw list without touching it.
func Render(s State, cfg config.PlatformerConfig, sc Scene) *core.DrawList {
	w, h := cfg.Surface.Width, cfg.Surface.Height
	d := core.NewDrawList(w, h)

	ground := cfg.Physics.GroundY

	d.Layer(core.LayerSky).
		Gradient(0, 0, w, ground, '░', core.ColorSky, core.ColorBrightCyan)

	drawClouds(d, s.Background.Layer1X, w)
	drawGround(d, s.Background.Layer2X, ground, w, h)

	d.Layer(core.LayerActors)
	for _, o := range s.Obstacles {
		drawObstacle(d, o)
	}
	drawStickman(d, s, cfg)

	drawHUD(d, s, sc.Best, w)

	switch {
	case s.GameOver:
		d.Layer(core.LayerOverlay).
			Fill(' ', core.ColorDefault).
			Text(w/2, h/2-50, "Game Over!", core.ColorBrightWhite, core.AlignCenter).
			Text(w/2, h/2, fmt.Sprintf("Final score: %d", s.Score), core.ColorBrightWhite, core.AlignCenter).
			Text(w/2, h/2+50, "Press R to restart", core.ColorGray, core.AlignCenter)
	case sc.Paused:
		d.Layer(core.LayerOverlay).
			Rect(w/2-120, h/2-40, 240, 80, ' ', core.ColorDefault).
			Text(w/2, h/2-10, "PAUSED", core.ColorBrightWhite, core.AlignCenter).
			Text(w/2, h/2+20, "P to resume", core.ColorGray, core.AlignCenter)
	}
	return d
}

func drawClouds(d *core.DrawList, offset, w float64) {
	d.Layer(core.LayerParallax)
	for i := range cloudCount {
		x := core.Wrap(offset*0.5+float64(i*cloudSpacing), w+100) - 50
		y := 50 + float64(i*20)
		d.Circle(x, y, 20, '█', core.ColorBrightWhite).
			Circle(x+25, y, 25, '█', core.ColorBrightWhite).
			Circle(x+50, y, 20, '█', core.ColorBrightWhite)
	}
}

func drawGround(d *core.DrawList, offset, ground, w, h float64) {
	d.Layer(core.LayerTrack).
		Rect(0, ground, w, h-ground, '▓', core.ColorBrightGreen)

	for i := 0.0; i < w+50; i += tuftSpacing {
		x := core.Wrap(offset+i, w+50)
		d.Line(x, ground, x+5, ground-10, '/', core.ColorForest)
	}
}

func drawObstacle(d *core.DrawList, o Obstacle) {
	switch o.Kind {
	case Spike:
		d.Triangle(o.X+o.W/2, o.Y, o.X, o.Y+o.H, o.X+o.W, o.Y+o.H, '▲', core.ColorBrightRed)
	case Enemy:
		cx := o.X + o.W/2
		c := core.ColorGray
		d.Circle(cx, o.Y+10, 8, 'o', c).
			Line(cx, o.Y+18, cx, o.Y+40, '|', c).
			Line(cx, o.Y+28, cx-12, o.Y+25, '-', c).
			Line(cx, o.Y+28, cx+12, o.Y+25, '-', c).
			Line(cx, o.Y+40, cx-8, o.Y+55, '/', c).
			Line(cx, o.Y+40, cx+8, o.Y+55, '\\', c)
	}
}

func drawStickman(d *core.DrawList, s State, cfg config.PlatformerConfig) {
	p := s.Player
	x, y := p.X, p.Y
	cx := x + cfg.Player.Width/2
	armY := y + 35
	legY := y + 45

	c := core.ColorBrightYellow
	// Blink during the grace period
	if p.Invulnerable && int(p.InvulnerableTime*10)%2 == 1 {
		c = core.ColorGray
	}
	if p.Anim == AnimHit {
		c = core.ColorBrightRed
	}

	d.Circle(cx, y+15, 10, 'O', c).
		Line(cx, y+25, cx, y+45, '|', c)

	switch p.Anim {
	case AnimRun:
		swing := math.Sin(s.Elapsed*10) * 5
		stride := math.Sin(s.Elapsed*15) * 8
		d.Line(cx, armY, cx-15+swing, armY-5, '-', c).
			Line(cx, armY, cx+15-swing, armY-5, '-', c).
			Line(cx, legY, cx-8+stride, legY+15, '/', c).
			Line(cx, legY, cx+8-stride, legY+15, '\\', c)
	case AnimJump:
		d.Line(cx, armY, cx-15, armY-15, '\\', c).
			Line(cx, armY, cx+15, armY-15, '/', c).
			Line(cx, legY, cx-8, legY+15, '/', c).
			Line(cx, legY, cx+8, legY+15, '\\', c)
	case AnimDuck:
		d.Line(cx, armY, cx-15, armY+5, '-', c).
			Line(cx, armY, cx+15, armY+5, '-', c).
			Line(cx, legY, cx-10, legY+10, '/', c).
			Line(cx-10, legY+10, cx-15, legY+15, '_', c).
			Line(cx, legY, cx+10, legY+10, '\\', c).
			Line(cx+10, legY+10, cx+15, legY+15, '_', c)
	case AnimIdle, AnimHit:
		d.Line(cx, armY, cx-15, armY+5, '/', c).
			Line(cx, armY, cx+15, armY+5, '\\', c).
			Line(cx, legY, cx-8, legY+15, '/', c).
			Line(cx, legY, cx+8, legY+15, '\\', c)
	}
}

func drawHUD(d *core.DrawList, s State, best int, w float64) {
	d.Layer(core.LayerHUD)

	for i := range max(s.Lives, 0) {
		x := 20 + float64(i*heartSpacing)
		const y = 30
		d.Circle(x, y, 8, '█', core.ColorBrightRed).
			Circle(x+12, y, 8, '█', core.ColorBrightRed).
			Triangle(x-8, y+5, x+6, y+18, x+20, y+5, '█', core.ColorBrightRed)
	}

	d.Text(w-200, 30, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite, core.AlignLeft).
		Text(w-200, 55, fmt.Sprintf("Best: %d", max(best, s.Score)), core.ColorGold, core.AlignLeft)
}
