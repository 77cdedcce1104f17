package compositor

// Operator enumerates the 28 compositing modes. Values are part of the
// public ABI (§6) and MUST remain stable once assigned.
type Operator int

const (
	Clear Operator = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
	Plus
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
)

// Precision selects the intermediate representation a kernel evaluates
// in: 16-bit unsigned integer over premultiplied u8 values, or 32-bit
// float linear RGBA in [0,1].
type Precision int

const (
	Integer Precision = iota
	Float
)

// RequiresFloat reports whether an operator is float-only (§3: "each
// operator has two derived properties"). Integer-precision requests for
// these operators must return transparent black per §4.4's dispatch
// rule; the surface compositor avoids this by upgrading precision.
func (o Operator) RequiresFloat() bool {
	switch o {
	case ColorDodge, ColorBurn, SoftLight, Hue, Saturation, Color, Luminosity:
		return true
	default:
		return false
	}
}

// Bounded reports whether the operator's result outside the source's
// bounding box equals the destination unchanged. All operators are
// bounded except src_in, dst_in, src_out, dst_atop.
func (o Operator) Bounded() bool {
	switch o {
	case SrcIn, DstIn, SrcOut, DstAtop:
		return false
	default:
		return true
	}
}
