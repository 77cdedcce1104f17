package gradient

import (
	"github.com/rastercore/compositor/internal/colorspace"
	"github.com/rastercore/compositor/internal/span"
)

// pixelInterpolator linearly interpolates premultiplied RGBA8 bytes
// between two colors directly, the fast byte-space interpolation a
// precomputed LUT uses internally; it is a resolution/speed tradeoff
// against the stop list's exact, gamma-aware Interpolate and is never
// substituted for it in StopList.ColorAt.
type pixelInterpolator struct {
	c0, c1 colorspace.RGBA8
	length uint
	step   uint
}

func newPixelInterpolator(c0, c1 colorspace.RGBA8, length uint) *pixelInterpolator {
	if length == 0 {
		length = 1
	}
	return &pixelInterpolator{c0: c0, c1: c1, length: length}
}

func (p *pixelInterpolator) Inc() { p.step++ }

func (p *pixelInterpolator) Color() colorspace.RGBA8 {
	if p.step >= p.length {
		return p.c1
	}
	t := float64(p.step) / float64(p.length)
	return colorspace.RGBA8{
		R: lerpByte(p.c0.R, p.c1.R, t),
		G: lerpByte(p.c0.G, p.c1.G, t),
		B: lerpByte(p.c0.B, p.c1.B, t),
		A: lerpByte(p.c0.A, p.c1.A, t),
	}
}

func lerpByte(a, b byte, t float64) byte {
	return byte(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// LUT is a fixed-size precomputed lookup table over a stop list's
// offsets, trading the stop list's exact binary-search lookup for O(1)
// evaluation at quantized resolution, built on internal/span.GradientLUT
// specialized to colorspace.RGBA8. The precompute-once, byte-granularity
// lookup idea follows the same shape as the teacher's own sRGB gamma
// LUT (internal/color/lut.go), applied here to gradient color lookup.
type LUT struct {
	table *span.GradientLUT[colorspace.RGBA8, *pixelInterpolator]
}

// NewLUT builds a LUT of the given size (typically 256-1024) from a
// stop list's current stops, encoded through the stop list's
// interpolation method at each sampled offset so hue handling (polar
// vs rectangular) survives quantization.
func NewLUT(stops *StopList, size int) *LUT {
	t := span.NewGradientLUT[colorspace.RGBA8, *pixelInterpolator](size)
	for i := 0; i < size; i++ {
		offset := float32(i) / float32(size-1)
		c := stops.ColorAt(offset)
		t.AddColor(float64(offset), colorspace.EncodeRGBA(c))
	}
	t.BuildLUT(newPixelInterpolator)
	return &LUT{table: t}
}

// At returns the color nearest the given offset in [0,1].
func (l *LUT) At(offset float64) colorspace.RGBA8 {
	i := int(offset*float64(l.table.Size()) + 0.5)
	return l.table.At(i)
}
