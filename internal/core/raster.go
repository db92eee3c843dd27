package core

import "math"

// Rasterize paints a draw list onto a screen, scaling the logical surface
// to the screen's cell grid. Ops are painted in list order.
func Rasterize(d *DrawList, dst *Screen) {
	if d == nil || d.Width <= 0 || d.Height <= 0 {
		return
	}
	r := rasterizer{
		dst: dst,
		sx:  float64(dst.Width()) / d.Width,
		sy:  float64(dst.Height()) / d.Height,
	}
	for _, op := range d.Ops {
		r.paint(op)
	}
}

// epsilon absorbs float error when logical edges land exactly on cell edges.
const epsilon = 1e-9

type rasterizer struct {
	dst    *Screen
	sx, sy float64
}

func (r rasterizer) cellX(x float64) int { return int(math.Floor(x*r.sx + epsilon)) }
func (r rasterizer) cellY(y float64) int { return int(math.Floor(y*r.sy + epsilon)) }

// span converts a logical [start, start+size) range to cells, never
// collapsing a visible primitive to zero cells.
func span(start, size, scale float64) (int, int) {
	a := int(math.Floor(start*scale + epsilon))
	b := int(math.Ceil((start+size)*scale - epsilon))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (r rasterizer) paint(op DrawOp) {
	switch op.Kind {
	case OpFill:
		r.dst.Fill(op.Rune, op.Color)
	case OpRect:
		x0, x1 := span(op.X, op.W, r.sx)
		y0, y1 := span(op.Y, op.H, r.sy)
		r.dst.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), op.Rune, op.Color)
	case OpGradient:
		r.gradient(op)
	case OpLine:
		r.line(r.cellX(op.X), r.cellY(op.Y), r.cellX(op.X2), r.cellY(op.Y2), op.Rune, op.Color)
	case OpTriangle:
		r.triangle(op)
	case OpCircle:
		r.circle(op)
	case OpText:
		r.text(op)
	}
}

func (r rasterizer) gradient(op DrawOp) {
	if len(op.Colors) == 0 {
		return
	}
	x0, x1 := span(op.X, op.W, r.sx)
	y0, y1 := span(op.Y, op.H, r.sy)
	rows := y1 - y0
	for y := y0; y < y1; y++ {
		band := (y - y0) * len(op.Colors) / rows
		r.dst.DrawHLine(x0, y, x1-x0, op.Rune, op.Colors[band])
	}
}

// line uses Bresenham's algorithm in cell space.
func (r rasterizer) line(x0, y0, x1, y1 int, ch rune, c Color) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	errAcc := dx + dy
	for {
		r.dst.SetCell(x0, y0, ch, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += stepX
		}
		if e2 <= dx {
			errAcc += dx
			y0 += stepY
		}
	}
}

func (r rasterizer) triangle(op DrawOp) {
	minX := math.Min(op.X, math.Min(op.X2, op.X3))
	maxX := math.Max(op.X, math.Max(op.X2, op.X3))
	minY := math.Min(op.Y, math.Min(op.Y2, op.Y3))
	maxY := math.Max(op.Y, math.Max(op.Y2, op.Y3))
	x0, x1 := span(minX, maxX-minX, r.sx)
	y0, y1 := span(minY, maxY-minY, r.sy)

	painted := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			// Sample the logical point at the cell center.
			px := (float64(cx) + 0.5) / r.sx
			py := (float64(cy) + 0.5) / r.sy
			if insideTriangle(px, py, op) {
				r.dst.SetCell(cx, cy, op.Rune, op.Color)
				painted = true
			}
		}
	}
	if !painted {
		// No cell center falls inside; mark the centroid's cell so it stays visible.
		cx := (op.X + op.X2 + op.X3) / 3
		cy := (op.Y + op.Y2 + op.Y3) / 3
		r.dst.SetCell(r.cellX(cx), r.cellY(cy), op.Rune, op.Color)
	}
}

func insideTriangle(px, py float64, op DrawOp) bool {
	d1 := edge(px, py, op.X, op.Y, op.X2, op.Y2)
	d2 := edge(px, py, op.X2, op.Y2, op.X3, op.Y3)
	d3 := edge(px, py, op.X3, op.Y3, op.X, op.Y)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func (r rasterizer) circle(op DrawOp) {
	x0, x1 := span(op.X-op.Radius, 2*op.Radius, r.sx)
	y0, y1 := span(op.Y-op.Radius, 2*op.Radius, r.sy)
	r2 := op.Radius * op.Radius

	painted := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx)+0.5)/r.sx - op.X
			py := (float64(cy)+0.5)/r.sy - op.Y
			if px*px+py*py <= r2 {
				r.dst.SetCell(cx, cy, op.Rune, op.Color)
				painted = true
			}
		}
	}
	if !painted {
		r.dst.SetCell(r.cellX(op.X), r.cellY(op.Y), op.Rune, op.Color)
	}
}

func (r rasterizer) text(op DrawOp) {
	n := len([]rune(op.Text))
	x := r.cellX(op.X)
	switch op.Align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	r.dst.DrawText(x, r.cellY(op.Y), op.Text, op.Color)
}
