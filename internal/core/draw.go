package core

// Layer orders drawing within a frame. Renderers emit layers in ascending
// order: sky first, terminal overlay last.
type Layer int

const (
	LayerSky Layer = iota
	LayerParallax
	LayerTrack
	LayerActors
	LayerHUD
	LayerOverlay
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerSky:
		return "sky"
	case LayerParallax:
		return "parallax"
	case LayerTrack:
		return "track"
	case LayerActors:
		return "actors"
	case LayerHUD:
		return "hud"
	case LayerOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpFill OpKind = iota
	OpGradient
	OpRect
	OpLine
	OpTriangle
	OpCircle
	OpText
)

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawOp is a single drawing primitive in logical surface coordinates.
// Which coordinate fields are meaningful depends on Kind.
type DrawOp struct {
	Kind  OpKind
	Layer Layer

	X, Y   float64 // Anchor, top-left, first point or circle center
	X2, Y2 float64 // Second point
	X3, Y3 float64 // Third point
	W, H   float64 // Rect and gradient size
	Radius float64

	Rune   rune
	Color  Color
	Colors []Color // Gradient bands, top to bottom
	Text   string
	Align  Align
}

// DrawList is the ordered output of a renderer: a pure description of one
// frame over a fixed-size logical surface. It never reads back pixels.
type DrawList struct {
	Width  float64
	Height float64
	Ops    []DrawOp
	layer  Layer
}

// NewDrawList creates an empty list for a logical surface of the given size.
func NewDrawList(width, height float64) *DrawList {
	return &DrawList{
		Width:  width,
		Height: height,
		Ops:    make([]DrawOp, 0, 64),
	}
}

// Layer switches the layer that subsequent primitives are tagged with.
func (d *DrawList) Layer(l Layer) *DrawList {
	d.layer = l
	return d
}

func (d *DrawList) push(op DrawOp) *DrawList {
	op.Layer = d.layer
	d.Ops = append(d.Ops, op)
	return d
}

// Fill covers the whole surface.
func (d *DrawList) Fill(r rune, c Color) *DrawList {
	return d.push(DrawOp{Kind: OpFill, Rune: r, Color: c})
}

// Gradient fills a rectangle with horizontal bands of colors, top to bottom.
func (d *DrawList) Gradient(x, y, w, h float64, r rune, colors ...Color) *DrawList {
	return d.push(DrawOp{Kind: OpGradient, X: x, Y: y, W: w, H: h, Rune: r, Colors: colors})
}

// Rect fills a rectangle.
func (d *DrawList) Rect(x, y, w, h float64, r rune, c Color) *DrawList {
	return d.push(DrawOp{Kind: OpRect, X: x, Y: y, W: w, H: h, Rune: r, Color: c})
}

// Line strokes a segment.
func (d *DrawList) Line(x1, y1, x2, y2 float64, r rune, c Color) *DrawList {
	return d.push(DrawOp{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Rune: r, Color: c})
}

// Triangle fills a triangle.
func (d *DrawList) Triangle(x1, y1, x2, y2, x3, y3 float64, r rune, c Color) *DrawList {
	return d.push(DrawOp{Kind: OpTriangle, X: x1, Y: y1, X2: x2, Y2: y2, X3: x3, Y3: y3, Rune: r, Color: c})
}

// Circle fills a disc.
func (d *DrawList) Circle(cx, cy, radius float64, r rune, c Color) *DrawList {
	return d.push(DrawOp{Kind: OpCircle, X: cx, Y: cy, Radius: radius, Rune: r, Color: c})
}

// Text draws a string anchored at (x, y). Text is laid out in cells, not
// scaled with the surface.
func (d *DrawList) Text(x, y float64, text string, c Color, align Align) *DrawList {
	return d.push(DrawOp{Kind: OpText, X: x, Y: y, Text: text, Color: c, Align: align})
}

// Layers returns the layer of every op, in order.
func (d *DrawList) Layers() []Layer {
	out := make([]Layer, len(d.Ops))
	for i, op := range d.Ops {
		out[i] = op.Layer
	}
	return out
}
