package gamma

// toLinearLUT gives O(1) sRGB-byte to linear-float32 conversion under
// the fixed fast-gamma approximation. 256 entries, built once from
// ToLinear — the same precompute-once, byte-addressed table structure
// the teacher's internal/color/lut.go uses for its (exact) sRGB curve,
// adapted here to the library's single-exponent curve instead.
var toLinearLUT [256]float32

// fromLinearLUT gives O(1) linear-float32 to sRGB-byte conversion.
// 4096 entries (12-bit precision), built once from FromLinear.
var fromLinearLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		toLinearLUT[i] = ToLinear(float32(i) / 255)
	}
	for i := 0; i < 4096; i++ {
		fromLinearLUT[i] = encodeByte(FromLinear(float32(i) / 4095))
	}
}

func encodeByte(s float32) uint8 {
	v := int(s*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToLinearFast converts an sRGB byte to linear float32 via table lookup,
// avoiding a math.Pow call per pixel per channel.
func ToLinearFast(s uint8) float32 {
	return toLinearLUT[s]
}

// FromLinearFast converts a linear float32 to an sRGB byte via table
// lookup. Input is clamped to [0,1]. Inputs that land in the first 16
// table steps, where the curve is too steep for 12-bit quantization,
// are converted with FromLinear directly.
func FromLinearFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	idx := int(l*4095 + 0.5)
	if idx < 16 {
		return encodeByte(FromLinear(l))
	}
	if idx > 4095 {
		idx = 4095
	}
	return fromLinearLUT[idx]
}
