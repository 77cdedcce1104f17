package pixfmt

import "github.com/rastercore/compositor/internal/basics"

// Multiply scales r,g,b by a/255, the integer-safe premultiply used
// when building RGBA pixel memory. a==0 forces channels to 0.
func Multiply(r, g, b, a basics.Int8u) (pr, pg, pb basics.Int8u) {
	if a == 0 {
		return 0, 0, 0
	}
	return mul8(r, a), mul8(g, a), mul8(b, a)
}

// Demultiply recovers straight-alpha channels from premultiplied
// storage. a==0 yields channels=0, avoiding a division by zero.
func Demultiply(r, g, b, a basics.Int8u) (dr, dg, db basics.Int8u) {
	if a == 0 {
		return 0, 0, 0
	}
	return div8(r, a), div8(g, a), div8(b, a)
}

func mul8(x, a basics.Int8u) basics.Int8u {
	return basics.Int8u((uint32(x) * uint32(a)) / 255)
}

func div8(x, a basics.Int8u) basics.Int8u {
	v := (uint32(x) * 255) / uint32(a)
	if v > 255 {
		v = 255
	}
	return basics.Int8u(v)
}

// Convert maps a pixel between any two formats, per the conversion
// rules of §4.1: multi-channel to alpha-only uses the alpha channel
// (or 255 for RGB, which is always opaque); alpha-only to RGBA yields
// black with the source alpha, and alpha-only to RGB yields opaque black.
func Convert(p Pixel, to Kind) Pixel {
	if p.Kind == to {
		return p
	}
	switch to {
	case KindRGB:
		return RGB(p.R, p.G, p.B)
	case KindRGBA:
		return RGBA(p.R, p.G, p.B, p.A)
	case KindAlpha8:
		return Alpha8(p.A)
	case KindAlpha4:
		return Pixel{Kind: KindAlpha4, A: broadcastBits(narrowBits(p.A, 4), 4)}
	case KindAlpha2:
		return Pixel{Kind: KindAlpha2, A: broadcastBits(narrowBits(p.A, 2), 2)}
	case KindAlpha1:
		if p.A >= 128 {
			return Alpha1(1)
		}
		return Alpha1(0)
	}
	return p
}
