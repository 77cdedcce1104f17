// Package gamma implements the library's fixed fast-gamma approximation
// of the sRGB transfer curve, plus a byte-granularity lookup table fast
// path for it.
//
// This is a single-exponent (γ=2.2) approximation, not the IEC
// 61966-2-1 piecewise transfer function: the nominal exponent keeps the
// curve a single `pow` call in each direction, matching the library's
// explicit choice to support exactly one fixed sRGB approximation rather
// than ICC-accurate color management.
package gamma

import "math"

// NominalGamma is the fixed single-exponent approximation of the sRGB
// transfer curve used throughout the library.
const NominalGamma = 2.2

// ToLinear converts a gamma-encoded (sRGB) component to linear:
// x^NominalGamma. Input and output are in [0,1].
func ToLinear(x float32) float32 {
	return float32(math.Pow(float64(x), NominalGamma))
}

// FromLinear converts a linear component to its gamma-encoded (sRGB)
// representation: x^(1/NominalGamma). Input and output are in [0,1].
func FromLinear(x float32) float32 {
	return float32(math.Pow(float64(x), 1.0/NominalGamma))
}
