package colorspace

import "github.com/rastercore/compositor/internal/gamma"

// applyGamma converts a linear [0,1] channel to its gamma-encoded
// (SRGB) representation under the fixed fast-gamma approximation
// (internal/gamma.NominalGamma), using the byte-granularity lookup
// table fast path in place of a math.Pow call per channel per pixel.
func applyGamma(x float32) float32 {
	return decode8(gamma.FromLinearFast(x))
}

// removeGamma converts a gamma-encoded (SRGB) channel to linear under
// the same fixed fast-gamma approximation.
func removeGamma(x float32) float32 {
	return gamma.ToLinearFast(encode8(x))
}

// RGBA8 is a premultiplied 8-bit-per-channel pixel, the boundary
// representation exchanged with pixel memory (package pixfmt).
type RGBA8 struct {
	R, G, B, A uint8
}

// encode8 rounds a [0,1] float to a uint8 using round-half-away-from-
// zero, per the library's fixed rounding policy (spec §6).
func encode8(x float32) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}

func decode8(v uint8) float32 {
	return float32(v) / 255
}

// demultiply converts premultiplied linear channels to straight
// (de-multiplied) channels; a==0 maps to (0,0,0,0).
func demultiply(r, g, b, a float32) (float32, float32, float32) {
	if a == 0 {
		return 0, 0, 0
	}
	return r / a, g / a, b / a
}

// premultiply converts straight (de-multiplied) linear channels back to
// premultiplied form.
func premultiply(r, g, b, a float32) (float32, float32, float32) {
	return r * a, g * a, b * a
}

// DecodeRGBA demultiplies an RGBA8 pixel, scales to float, and applies
// gamma encoding (applyGamma) when decoding into SRGB space. Decoding into LinearRGB
// skips gamma entirely (the pixel's premultiplied channels are already
// linear).
func DecodeRGBA(space Space, p RGBA8) Color {
	a := decode8(p.A)
	r, g, b := demultiply(decode8(p.R), decode8(p.G), decode8(p.B), a)
	switch space {
	case SRGB:
		return NewSRGB(applyGamma(r), applyGamma(g), applyGamma(b), a)
	default:
		return NewLinearRGB(r, g, b, a)
	}
}

// EncodeRGBA removes gamma (for SRGB), scales with round-to-nearest,
// then premultiplies, producing pixel memory's boundary representation.
func EncodeRGBA(c Color) RGBA8 {
	r, g, b := float32(c.C0), float32(c.C1), float32(c.C2)
	if c.Space == SRGB {
		r, g, b = removeGamma(r), removeGamma(g), removeGamma(b)
	}
	if c.Space == HSL {
		lr := c.AsLinearRGB()
		r, g, b = lr.C0, lr.C1, lr.C2
	}
	pr, pg, pb := premultiply(r, g, b, c.A)
	return RGBA8{R: encode8(pr), G: encode8(pg), B: encode8(pb), A: encode8(c.A)}
}

// DecodeRGBARaw demultiplies and scales without applying or removing
// gamma; used inside already-linear pipelines.
func DecodeRGBARaw(space Space, p RGBA8) Color {
	a := decode8(p.A)
	r, g, b := demultiply(decode8(p.R), decode8(p.G), decode8(p.B), a)
	return Color{Space: space, C0: r, C1: g, C2: b, A: a}
}

// EncodeRGBARaw scales and premultiplies without gamma handling.
func EncodeRGBARaw(c Color) RGBA8 {
	pr, pg, pb := premultiply(c.C0, c.C1, c.C2, c.A)
	return RGBA8{R: encode8(pr), G: encode8(pg), B: encode8(pb), A: encode8(c.A)}
}
