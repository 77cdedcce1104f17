package compositor

import "math"

// RGBAF is a premultiplied pixel in float precision: channels in [0,1].
// Internal arithmetic uses float64 for accuracy; the public precision
// model (§3) is 32-bit float, so callers round-trip through float32 at
// the stride/surface boundary (see EncodeU8/DecodeFloat).
type RGBAF struct {
	R, G, B, A float64
}

func invf(x float64) float64 { return 1 - x }
func mulf(x, y float64) float64 { return x * y }

// ApplyFloat evaluates operator op on premultiplied src/dst in float
// precision and returns a premultiplied result, per §4.4.
func ApplyFloat(op Operator, dst, src RGBAF) RGBAF {
	sa, da := src.A, dst.A

	chan3 := func(sc, dc float64) float64 {
		switch op {
		case Clear:
			return 0
		case Src:
			return sc
		case Dst:
			return dc
		case SrcOver:
			return sc + dc*invf(sa)
		case DstOver:
			return dc + sc*invf(da)
		case SrcIn:
			return mulf(sc, da)
		case DstIn:
			return mulf(dc, sa)
		case SrcOut:
			return mulf(sc, invf(da))
		case DstOut:
			return mulf(dc, invf(sa))
		case SrcAtop:
			return mulf(sc, da) + mulf(dc, invf(sa))
		case DstAtop:
			return mulf(dc, sa) + mulf(sc, invf(da))
		case Xor:
			return mulf(sc, invf(da)) + mulf(dc, invf(sa))
		case Plus:
			v := sc + dc
			if v > 1 {
				v = 1
			}
			return v
		case Multiply:
			return mulf(sc, dc) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
		case Screen:
			return sc + dc - mulf(sc, dc)
		case Difference:
			return sc + dc - 2*math.Min(mulf(sc, da), mulf(dc, sa))
		case Exclusion:
			return (mulf(sc, da) + mulf(dc, sa) - 2*mulf(sc, dc)) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
		case Darken:
			return math.Min(mulf(sc, da), mulf(dc, sa)) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
		case Lighten:
			return math.Max(mulf(sc, da), mulf(dc, sa)) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
		case Overlay:
			if 2*dc <= da {
				return 2*mulf(sc, dc) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
			}
			return sc*(1+da) + dc*(1+sa) - 2*dc*sc - da*sa
		case HardLight:
			if 2*sc <= sa {
				return 2*mulf(sc, dc) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
			}
			return sc*(1+da) + dc*(1+sa) - sa*da - 2*sc*dc
		case ColorDodge:
			return colorDodge(sc, dc, sa, da)
		case ColorBurn:
			return colorBurn(sc, dc, sa, da)
		case SoftLight:
			return softLight(sc, dc, sa, da)
		default:
			return 0
		}
	}

	switch op {
	case Hue, Saturation, Color, Luminosity:
		return nonSeparable(op, dst, src)
	}

	out := RGBAF{
		R: chan3(src.R, dst.R),
		G: chan3(src.G, dst.G),
		B: chan3(src.B, dst.B),
	}
	out.A = alphaFor(op, sa, da)
	if op == Plus && out.A > 1 {
		out.A = 1
	}
	return out
}

func alphaFor(op Operator, sa, da float64) float64 {
	switch op {
	case Clear:
		return 0
	case Src:
		return sa
	case Dst:
		return da
	case SrcAtop:
		return da
	case DstAtop:
		return sa
	case Xor:
		return sa + da - 2*sa*da
	case Plus:
		v := sa + da
		if v > 1 {
			v = 1
		}
		return v
	default:
		return sa + da - sa*da
	}
}

func colorDodge(sc, dc, sa, da float64) float64 {
	switch {
	case sc == sa && dc == 0:
		return mulf(sc, invf(da))
	case sc == sa:
		return sa*da + mulf(sc, invf(da)) + mulf(dc, invf(sa))
	default:
		v := (dc / da) * sa / (sa - sc)
		if v > 1 {
			v = 1
		}
		return sa*da*v + mulf(sc, invf(da)) + mulf(dc, invf(sa))
	}
}

func colorBurn(sc, dc, sa, da float64) float64 {
	switch {
	case sc == 0 && dc == da:
		return sa*da + mulf(dc, invf(sa))
	case sc == 0:
		return mulf(dc, invf(sa))
	default:
		v := (1 - dc/da) * sa / sc
		if v > 1 {
			v = 1
		}
		return sa*da*(1-v) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
	}
}

func softLight(sc, dc, sa, da float64) float64 {
	if da == 0 {
		return sc
	}
	m := dc / da
	switch {
	case 2*sc <= sa:
		return dc*(sa+(2*sc-sa)*(1-m)) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
	case 4*dc <= da:
		return dc*sa + da*(2*sc-sa)*(4*m*(4*m+1)*(m-1)+7*m) + mulf(sc, invf(da)) + mulf(dc, invf(sa))
	default:
		return da*(2*sc-sa)*(math.Sqrt(m)-m) + sc - sc*da + dc
	}
}

// Non-separable HSL-luma blend helpers (PDF 8.7.4.4).

func lum(r, g, b float64) float64 { return 0.3*r + 0.59*g + 0.11*b }

func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

func clipColor(r, g, b, a float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := math.Min(r, math.Min(g, b))
	x := math.Max(r, math.Max(g, b))
	if n < 0 {
		if l-n != 0 {
			r = l + (r-l)*l/(l-n)
			g = l + (g-l)*l/(l-n)
			b = l + (b-l)*l/(l-n)
		} else {
			r, g, b = 0, 0, 0
		}
	}
	if x > a {
		if x-l != 0 {
			r = l + (r-l)*(a-l)/(x-l)
			g = l + (g-l)*(a-l)/(x-l)
			b = l + (b-l)*(a-l)/(x-l)
		} else {
			r, g, b = 0, 0, 0
		}
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return r + d, g + d, b + d
}

func setSat(r, g, b, s float64) (float64, float64, float64) {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	if mx == mn {
		return 0, 0, 0
	}
	scale := func(c float64) float64 { return (c - mn) * s / (mx - mn) }
	return scale(r), scale(g), scale(b)
}

// nonSeparable evaluates hue/saturation/color/luminosity, each of which
// mixes src and dst channels jointly rather than per-channel.
func nonSeparable(op Operator, dst, src RGBAF) RGBAF {
	sa, da := src.A, dst.A
	sr, sg, sb := src.R, src.G, src.B
	dr, dg, db := dst.R, dst.G, dst.B

	var cr, cg, cb float64
	switch op {
	case Hue:
		r, g, b := setSat(sr*sa, sg*sa, sb*sa, sat(dr, dg, db)*sa)
		cr, cg, cb = setLum(r, g, b, lum(dr, dg, db)*sa)
	case Saturation:
		r, g, b := setSat(dr*sa, dg*sa, db*sa, sat(sr, sg, sb)*da)
		cr, cg, cb = setLum(r, g, b, lum(dr, dg, db)*sa)
	case Color:
		cr, cg, cb = setLum(sr*da, sg*da, sb*da, lum(dr, dg, db)*sa)
	case Luminosity:
		cr, cg, cb = setLum(dr*sa, dg*sa, db*sa, lum(sr, sg, sb)*da)
	}
	cr, cg, cb = clipColor(cr, cg, cb, sa*da)

	out := RGBAF{
		R: mulf(sr, invf(da)) + mulf(dr, invf(sa)) + cr,
		G: mulf(sg, invf(da)) + mulf(dg, invf(sa)) + cg,
		B: mulf(sb, invf(da)) + mulf(db, invf(sa)) + cb,
		A: sa + da - sa*da,
	}
	return out
}
