package compositor

import "github.com/rastercore/compositor/internal/colorspace"

// ParamKind selects which source a stride-compositor operation's
// parameter draws from (§4.5).
type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamPixel
	ParamStride
	ParamGradient
	ParamDither
)

// GradientSource evaluates a color at a destination pixel coordinate.
// *gradient.Gradient satisfies this; it is expressed as an interface
// here so the compositor package does not need to import gradient's
// full construction API, only its evaluation contract.
type GradientSource interface {
	GetPixel(x, y int) colorspace.RGBA8
}

// DitherSource is the dither-pattern collaborator named (but not
// implemented) by the spec: "dither patterns beyond their interface"
// are out of scope. Any stateless per-pixel color source can serve.
type DitherSource interface {
	ColorAt(x, y int) colorspace.RGBA8
}

// Param is one operation parameter: none (reuse the working value),
// a broadcast pixel, a stride view, or a per-column gradient/dither
// evaluation anchored at (X0,Y0).
type Param struct {
	Kind     ParamKind
	Pixel    RGBA8
	Stride   Stride
	Gradient GradientSource
	Dither   DitherSource
	X0, Y0   int
}

func NoneParam() Param                { return Param{Kind: ParamNone} }
func PixelParam(p RGBA8) Param         { return Param{Kind: ParamPixel, Pixel: p} }
func StrideParam(s Stride) Param       { return Param{Kind: ParamStride, Stride: s} }
func GradientParam(g GradientSource, x0, y0 int) Param {
	return Param{Kind: ParamGradient, Gradient: g, X0: x0, Y0: y0}
}
func DitherParam(d DitherSource, x0, y0 int) Param {
	return Param{Kind: ParamDither, Dither: d, X0: x0, Y0: y0}
}

// Operation is one step of a stride-compositor batch: an operator and
// its destination/source parameters.
type Operation struct {
	Operator Operator
	Dst      Param
	Src      Param
}

func csToRGBA8(c colorspace.RGBA8) RGBA8 { return RGBA8{R: c.R, G: c.G, B: c.B, A: c.A} }
