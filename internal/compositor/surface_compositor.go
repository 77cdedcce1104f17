package compositor

// SurfaceParamKind selects which source a surface-compositor operation
// draws from, per §4.6. It is a superset of ParamKind at the surface
// level: a Surface parameter stands in for a full 2-D pixel source and
// is converted to a Stride per scanline when the batch is handed down
// to the stride compositor.
type SurfaceParamKind int

const (
	SurfaceParamNone SurfaceParamKind = iota
	SurfaceParamPixel
	SurfaceParamSurface
	SurfaceParamGradient
	SurfaceParamDither
)

// SurfaceParam is one surface-compositor operation parameter.
type SurfaceParam struct {
	Kind     SurfaceParamKind
	Pixel    RGBA8
	Surface  *Surface
	Gradient GradientSource
	Dither   DitherSource
}

func NoneSurfaceParam() SurfaceParam            { return SurfaceParam{Kind: SurfaceParamNone} }
func PixelSurfaceParam(p RGBA8) SurfaceParam    { return SurfaceParam{Kind: SurfaceParamPixel, Pixel: p} }
func SurfaceSurfaceParam(s *Surface) SurfaceParam {
	return SurfaceParam{Kind: SurfaceParamSurface, Surface: s}
}
func GradientSurfaceParam(g GradientSource) SurfaceParam {
	return SurfaceParam{Kind: SurfaceParamGradient, Gradient: g}
}
func DitherSurfaceParam(d DitherSource) SurfaceParam {
	return SurfaceParam{Kind: SurfaceParamDither, Dither: d}
}

// SurfaceOperation is one step of a surface-compositor batch.
type SurfaceOperation struct {
	Operator Operator
	Dst      SurfaceParam
	Src      SurfaceParam
}

// CompositeSurface orchestrates the stride compositor over a
// rectangular region of dst anchored at (dstX, dstY), per §4.6.
func CompositeSurface(dst *Surface, dstX, dstY int, ops []SurfaceOperation, precision Precision) {
	if len(ops) == 0 || dstX >= dst.Width() || dstY >= dst.Height() {
		return
	}

	for _, op := range ops {
		if op.Operator.RequiresFloat() {
			precision = Float
		}
	}

	first := ops[0].Src
	var srcW, srcH int
	switch first.Kind {
	case SurfaceParamPixel, SurfaceParamGradient, SurfaceParamDither:
		if dstX != 0 || dstY != 0 {
			return
		}
		srcW, srcH = dst.Width(), dst.Height()
	case SurfaceParamSurface:
		srcW, srcH = first.Surface.Width(), first.Surface.Height()
	case SurfaceParamNone:
		return
	}

	srcStartX := max0(-dstX)
	srcStartY := max0(-dstY)

	width := minInt(srcW, dst.Width()-dstX)
	height := minInt(srcH, dst.Height()-dstY)
	if srcStartX >= width || srcStartY >= height {
		return
	}

	for srcY := srcStartY; srcY < height; srcY++ {
		dstStartX := srcStartX + dstX
		dstStartY := srcY + dstY
		if dstStartX < 0 || dstStartY < 0 {
			panic("compositor: negative destination offset after clipping")
		}
		scanlineLen := width - srcStartX
		if scanlineLen <= 0 {
			continue
		}

		dstStride := dst.Stride(dstStartX, dstStartY, scanlineLen)
		if dstStride.Empty() {
			continue
		}
		n := dstStride.Len()

		batch := make([]Operation, len(ops))
		for i, op := range ops {
			batch[i] = Operation{
				Operator: op.Operator,
				Dst:      toStrideParam(op.Dst, dstStride, n, srcStartX, srcY),
				Src:      toStrideParam(op.Src, dstStride, n, srcStartX, srcY),
			}
		}
		CompositeStride(dstStride, batch, precision)
	}
}

func toStrideParam(p SurfaceParam, dstStride Stride, n, srcX, srcY int) Param {
	switch p.Kind {
	case SurfaceParamNone:
		return NoneParam()
	case SurfaceParamPixel:
		return PixelParam(p.Pixel)
	case SurfaceParamGradient:
		return GradientParam(p.Gradient, srcX, srcY)
	case SurfaceParamDither:
		return DitherParam(p.Dither, srcX, srcY)
	case SurfaceParamSurface:
		s := p.Surface.Stride(srcX, srcY, n)
		return StrideParam(s)
	}
	return NoneParam()
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
