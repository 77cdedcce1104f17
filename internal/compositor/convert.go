package compositor

// to8 rounds a [0,1] float channel to uint8 using round-half-away-from-
// zero, the library's fixed rounding policy (§6).
func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// EncodeU8 converts a float-precision premultiplied pixel to its
// integer-precision representation.
func EncodeU8(c RGBAF) RGBA8 {
	return RGBA8{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// DecodeFloat converts an integer-precision premultiplied pixel to its
// float-precision representation.
func DecodeFloat(c RGBA8) RGBAF {
	return RGBAF{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
