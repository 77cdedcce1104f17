// Package colorspace implements the color model: a closed sum type over
// linear RGB, gamma-encoded sRGB, and HSL, with gamma apply/remove,
// premultiply/demultiply, and rectangular/polar interpolation.
//
// Values are always stored de-multiplied; pixel memory (package pixfmt)
// is always stored premultiplied. Conversion between the two happens at
// decode/encode boundaries only.
package colorspace

import "math"

// Space identifies which of the three color variants a Color holds.
type Space int

const (
	LinearRGB Space = iota
	SRGB
	HSL
)

func (s Space) String() string {
	switch s {
	case LinearRGB:
		return "LinearRGB"
	case SRGB:
		return "SRGB"
	case HSL:
		return "HSL"
	default:
		return "unknown"
	}
}

// Gamma handling uses the fixed, nominal fast-gamma approximation of
// the sRGB curve (internal/gamma.NominalGamma, a single power-law
// exponent), not a configurable or ICC-profile-driven curve: arbitrary
// color management is explicitly excluded as a non-goal, and only this
// one fixed approximation is supported.

// Color is a closed sum type over LinearRGB, SRGB, and HSL, each with
// four float32 fields. For LinearRGB/SRGB the fields are (r,g,b,a); for
// HSL they are (h,s,l,a). Values are always de-multiplied.
type Color struct {
	Space      Space
	C0, C1, C2 float32 // r,g,b or h,s,l
	A          float32
}

// NewLinearRGB constructs a LinearRGB color, clamping channels to [0,1].
func NewLinearRGB(r, g, b, a float32) Color {
	c := Color{Space: LinearRGB, C0: r, C1: g, C2: b, A: a}
	c.init()
	return c
}

// NewSRGB constructs an SRGB color (gamma-encoded at rest), clamping
// channels to [0,1].
func NewSRGB(r, g, b, a float32) Color {
	c := Color{Space: SRGB, C0: r, C1: g, C2: b, A: a}
	c.init()
	return c
}

// NewHSL constructs an HSL color. Hue outside [0,360] is wrapped modulo
// 360, except that exactly 360 is preserved so the full circle remains
// interpolable. Saturation, lightness, and alpha are clamped to [0,1].
func NewHSL(h, s, l, a float32) Color {
	c := Color{Space: HSL, C0: h, C1: s, C2: l, A: a}
	c.init()
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrapHue(h float32) float32 {
	if h == 360 {
		return 360
	}
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return h
}

// init clamps/normalizes channels in place, matching the §4.2 `init`
// contract: rectangular spaces clamp to [0,1]; HSL wraps hue and clamps
// s/l/a to [0,1].
func (c *Color) init() {
	switch c.Space {
	case HSL:
		c.C0 = wrapHue(c.C0)
		c.C1 = clamp01(c.C1)
		c.C2 = clamp01(c.C2)
		c.A = clamp01(c.A)
	default:
		c.C0 = clamp01(c.C0)
		c.C1 = clamp01(c.C1)
		c.C2 = clamp01(c.C2)
		c.A = clamp01(c.A)
	}
}
