package compositor

import "github.com/rastercore/compositor/internal/compositor/transpose"

// CompositeStride executes a batch of operations against one
// destination stride, per §4.5. Precision selects the intermediate
// representation; lane groups of LaneCount() pixels are processed
// together with a final partial lane group as the tail, per the
// "vector body plus tail" architecture of §4.4/§4.5/§9 and testable
// property 9.
//
// As a precondition (debug-assertable per §7), the first operation's
// source parameter MUST NOT be ParamNone.
func CompositeStride(dst Stride, ops []Operation, precision Precision) {
	n := dst.Len()
	if n == 0 || len(ops) == 0 {
		return
	}
	if debugAssertionsEnabled && ops[0].Src.Kind == ParamNone {
		panic("compositor: first operation's source must not be none")
	}

	lanes := LaneCount()
	for start := 0; start < n; start += lanes {
		groupLen := lanes
		if start+groupLen > n {
			groupLen = n - start
		}
		if precision == Float {
			runGroupFloat(dst, ops, start, groupLen)
		} else {
			runGroupInt(dst, ops, start, groupLen)
		}
	}
}

func runGroupInt(dst Stride, ops []Operation, start, groupLen int) {
	working := make([]RGBA8, groupLen)
	workingSrc := make([]RGBA8, groupLen)
	haveWorking := false

	for _, op := range ops {
		srcVec := resolveParamInt(op.Src, start, groupLen, workingSrc, haveWorking)
		dstVec := resolveDstParamInt(op.Dst, dst, start, groupLen, working, haveWorking)

		for i := 0; i < groupLen; i++ {
			working[i] = ApplyInt(op.Operator, dstVec[i], srcVec[i])
		}
		copy(workingSrc, srcVec)
		haveWorking = true
	}

	scatterInt(dst.Sub(start, groupLen), working)
}

func runGroupFloat(dst Stride, ops []Operation, start, groupLen int) {
	working := make([]RGBAF, groupLen)
	workingSrc := make([]RGBAF, groupLen)
	haveWorking := false

	for _, op := range ops {
		srcVec := resolveParamFloat(op.Src, start, groupLen, workingSrc, haveWorking)
		dstVec := resolveDstParamFloat(op.Dst, dst, start, groupLen, working, haveWorking)

		for i := 0; i < groupLen; i++ {
			working[i] = ApplyFloat(op.Operator, dstVec[i], srcVec[i])
		}
		copy(workingSrc, srcVec)
		haveWorking = true
	}

	scatterFloat(dst.Sub(start, groupLen), working)
}

// gatherInt transposes a stride sub-range's interleaved bytes into a
// planar RGBA8 vector via the transpose package's lane gather, per
// spec component 7.
func gatherInt(sub Stride, n int) []RGBA8 {
	r, g, b, a := transpose.Int16(sub.Bytes(), n)
	out := make([]RGBA8, n)
	for i := 0; i < n; i++ {
		out[i] = RGBA8{R: uint8(r[i]), G: uint8(g[i]), B: uint8(b[i]), A: uint8(a[i])}
	}
	return out
}

func scatterInt(sub Stride, vals []RGBA8) {
	n := len(vals)
	r := make([]uint16, n)
	g := make([]uint16, n)
	b := make([]uint16, n)
	a := make([]uint16, n)
	for i, v := range vals {
		r[i], g[i], b[i], a[i] = uint16(v.R), uint16(v.G), uint16(v.B), uint16(v.A)
	}
	transpose.ScatterInt16(sub.Bytes(), r, g, b, a)
}

func gatherFloat(sub Stride, n int) []RGBAF {
	r, g, b, a := transpose.Float32(sub.Bytes(), n)
	out := make([]RGBAF, n)
	for i := 0; i < n; i++ {
		out[i] = RGBAF{R: float64(r[i]), G: float64(g[i]), B: float64(b[i]), A: float64(a[i])}
	}
	return out
}

func scatterFloat(sub Stride, vals []RGBAF) {
	n := len(vals)
	r := make([]float32, n)
	g := make([]float32, n)
	b := make([]float32, n)
	a := make([]float32, n)
	for i, v := range vals {
		r[i], g[i], b[i], a[i] = float32(v.R), float32(v.G), float32(v.B), float32(v.A)
	}
	transpose.ScatterFloat32(sub.Bytes(), r, g, b, a)
}

func resolveParamInt(p Param, start, groupLen int, working []RGBA8, haveWorking bool) []RGBA8 {
	out := make([]RGBA8, groupLen)
	switch p.Kind {
	case ParamNone:
		if haveWorking {
			copy(out, working)
		}
	case ParamPixel:
		for i := range out {
			out[i] = p.Pixel
		}
	case ParamStride:
		out = gatherInt(p.Stride.Sub(start, groupLen), groupLen)
	case ParamGradient:
		for i := 0; i < groupLen; i++ {
			out[i] = csToRGBA8(p.Gradient.GetPixel(p.X0+start+i, p.Y0))
		}
	case ParamDither:
		for i := 0; i < groupLen; i++ {
			out[i] = csToRGBA8(p.Dither.ColorAt(p.X0+start+i, p.Y0))
		}
	}
	return out
}

func resolveDstParamInt(p Param, dst Stride, start, groupLen int, working []RGBA8, haveWorking bool) []RGBA8 {
	if p.Kind == ParamNone {
		if haveWorking {
			out := make([]RGBA8, groupLen)
			copy(out, working)
			return out
		}
		return gatherInt(dst.Sub(start, groupLen), groupLen)
	}
	return resolveParamInt(p, start, groupLen, working, haveWorking)
}

func resolveParamFloat(p Param, start, groupLen int, working []RGBAF, haveWorking bool) []RGBAF {
	out := make([]RGBAF, groupLen)
	switch p.Kind {
	case ParamNone:
		if haveWorking {
			copy(out, working)
		}
	case ParamPixel:
		v := DecodeFloat(p.Pixel)
		for i := range out {
			out[i] = v
		}
	case ParamStride:
		out = gatherFloat(p.Stride.Sub(start, groupLen), groupLen)
	case ParamGradient:
		for i := 0; i < groupLen; i++ {
			out[i] = DecodeFloat(csToRGBA8(p.Gradient.GetPixel(p.X0+start+i, p.Y0)))
		}
	case ParamDither:
		for i := 0; i < groupLen; i++ {
			out[i] = DecodeFloat(csToRGBA8(p.Dither.ColorAt(p.X0+start+i, p.Y0)))
		}
	}
	return out
}

func resolveDstParamFloat(p Param, dst Stride, start, groupLen int, working []RGBAF, haveWorking bool) []RGBAF {
	if p.Kind == ParamNone {
		if haveWorking {
			out := make([]RGBAF, groupLen)
			copy(out, working)
			return out
		}
		return gatherFloat(dst.Sub(start, groupLen), groupLen)
	}
	return resolveParamFloat(p, start, groupLen, working, haveWorking)
}
