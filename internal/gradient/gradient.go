package gradient

import (
	"math"

	"github.com/rastercore/compositor/internal/colorspace"
	"github.com/rastercore/compositor/internal/transform"
)

// Kind identifies which gradient projection variant is active.
type Kind int

const (
	Linear Kind = iota
	Radial
	Conic
)

// Gradient is a sum type over Linear/Radial/Conic projections, sharing
// a sorted stop list and an inverse affine transform (§9: "store the
// inverse of the user-supplied transformation so that per-pixel
// evaluation is a forward multiply-add").
type Gradient struct {
	Kind  Kind
	Stops *StopList

	// inverse transform, set once at construction or via
	// SetTransformation.
	inverse *transform.TransAffine

	// lut, when set via UseLUT, short-circuits the stop list's exact
	// binary-search lookup with a precomputed, quantized table.
	lut *LUT

	// Linear
	startX, startY, endX, endY float64

	// Radial (two-circle projection); derived constants captured at
	// construction per §4.3.3.
	c1x, c1y, r1 float64
	c2x, c2y, r2 float64
	cdx, cdy     float64
	dr           float64
	minDr        float64
	a            float64
	invA         float64
	aIsZero      bool

	// Conic
	centerX, centerY, startAngle float64
}

// NewLinear builds a linear gradient between (x1,y1) and (x2,y2).
func NewLinear(x1, y1, x2, y2 float64, stops *StopList) *Gradient {
	return &Gradient{
		Kind: Linear, Stops: stops,
		startX: x1, startY: y1, endX: x2, endY: y2,
		inverse: transform.NewTransAffine(),
	}
}

// NewRadial builds a two-circle radial gradient. Negative radii are
// clamped to 0.
func NewRadial(c1x, c1y, r1, c2x, c2y, r2 float64, stops *StopList) *Gradient {
	if r1 < 0 {
		r1 = 0
	}
	if r2 < 0 {
		r2 = 0
	}
	g := &Gradient{
		Kind: Radial, Stops: stops,
		c1x: c1x, c1y: c1y, r1: r1,
		c2x: c2x, c2y: c2y, r2: r2,
		inverse: transform.NewTransAffine(),
	}
	g.cdx = c2x - c1x
	g.cdy = c2y - c1y
	g.dr = r2 - r1
	g.minDr = -r1
	g.a = g.cdx*g.cdx + g.cdy*g.cdy - g.dr*g.dr
	g.aIsZero = g.a == 0
	if !g.aIsZero {
		g.invA = 1 / g.a
	}
	return g
}

// NewConic builds a conic (angular sweep) gradient centered at (cx,cy)
// with the given start angle in radians, normalized into [0, 2π).
func NewConic(cx, cy, startAngle float64, stops *StopList) *Gradient {
	const twoPi = 2 * math.Pi
	a := math.Mod(startAngle, twoPi)
	if a < 0 {
		a += twoPi
	}
	return &Gradient{
		Kind: Conic, Stops: stops,
		centerX: cx, centerY: cy, startAngle: a,
		inverse: transform.NewTransAffine(),
	}
}

// SetTransformation computes and stores the inverse of the given
// forward transform. Returns an error if the matrix is not invertible.
func (g *Gradient) SetTransformation(t *transform.TransAffine) error {
	if math.Abs(t.Determinant()) < 1.0e-10 {
		return errNonInvertible
	}
	inv := *t
	inv.Invert()
	g.inverse = &inv
	return nil
}

// point transforms a pixel center (x+0.5, y+0.5) through the stored
// inverse transformation.
func (g *Gradient) point(x, y int) (px, py float64) {
	px, py = float64(x)+0.5, float64(y)+0.5
	g.inverse.Transform(&px, &py)
	return
}

// GetOffset computes the projection-specific offset in [0,1], or -1 if
// the point does not map onto the gradient (§4.3.2–§4.3.4).
func (g *Gradient) GetOffset(x, y int) float64 {
	px, py := g.point(x, y)
	switch g.Kind {
	case Linear:
		return g.linearOffset(px, py)
	case Radial:
		return g.radialOffset(px, py)
	case Conic:
		return g.conicOffset(px, py)
	default:
		return -1
	}
}

// GetPixel resolves the projected offset to a premultiplied RGBA8
// pixel via the stop list.
func (g *Gradient) GetPixel(x, y int) colorspace.RGBA8 {
	off := g.GetOffset(x, y)
	if off < 0 {
		off = 0
	}
	if g.lut != nil {
		return g.lut.At(off)
	}
	c := g.Stops.ColorAt(float32(off))
	return colorspace.EncodeRGBA(c)
}

// UseLUT precomputes a size-entry lookup table from the current stop
// list and switches GetPixel to O(1) quantized evaluation. Call after
// all stops are added; later AddStop calls require rebuilding via a
// fresh UseLUT call to take effect.
func (g *Gradient) UseLUT(size int) {
	g.lut = NewLUT(g.Stops, size)
}

func (g *Gradient) linearOffset(px, py float64) float64 {
	dx, dy := g.endX-g.startX, g.endY-g.startY
	denom := dx*dx + dy*dy
	if denom == 0 {
		return -1
	}
	num := dx*(px-g.startX) + dy*(py-g.startY)
	off := num / denom
	if off < 0 {
		off = 0
	}
	if off > 1 {
		off = 1
	}
	return off
}

func (g *Gradient) radialOffset(px, py float64) float64 {
	if g.r1 == 0 && g.r2 == 0 {
		return -1
	}
	pdx, pdy := px-g.c1x, py-g.c1y

	b := pdx*g.cdx + pdy*g.cdy + g.r1*g.dr
	c := pdx*pdx + pdy*pdy - g.r1*g.r1

	qualifies := func(t float64) bool { return t*g.dr >= g.minDr }

	if g.aIsZero {
		if b == 0 {
			return -1
		}
		t := 0.5 * c / b
		if qualifies(t) {
			return clamp01(t)
		}
		return -1
	}

	d := b*b - g.a*c
	if d < 0 {
		return -1
	}
	sqrtD := math.Sqrt(d)
	t0 := (b + sqrtD) * g.invA
	if qualifies(t0) {
		return clamp01(t0)
	}
	t1 := (b - sqrtD) * g.invA
	if qualifies(t1) {
		return clamp01(t1)
	}
	return -1
}

func (g *Gradient) conicOffset(px, py float64) float64 {
	const twoPi = 2 * math.Pi
	dx, dy := px-g.centerX, py-g.centerY
	angle := math.Atan2(dy, dx) - g.startAngle
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	return angle / twoPi
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
