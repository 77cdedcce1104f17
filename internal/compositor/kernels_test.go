package compositor

import "testing"

func u8close(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// bg/fg from spec scenarios (a)-(c), already premultiplied per their
// stated alphas.
func premul(r, g, b, a float64) RGBA8 {
	return RGBA8{
		R: uint8(r*a*255 + 0.5),
		G: uint8(g*a*255 + 0.5),
		B: uint8(b*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func TestSrcOverFullAlpha(t *testing.T) {
	bg := premul(0.69, 0.23, 0.21, 1.0)
	fg := premul(0.56, 0.50, 0.89, 1.0)

	out := ApplyInt(SrcOver, bg, fg)
	want := RGBA8{R: 143, G: 128, B: 227, A: 255}
	if !u8close(out.R, want.R, 1) || !u8close(out.G, want.G, 1) ||
		!u8close(out.B, want.B, 1) || !u8close(out.A, want.A, 1) {
		t.Fatalf("got %+v, want %+v", out, want)
	}
}

func TestSrcOverPartialAlphaInt(t *testing.T) {
	bg := premul(0.69, 0.23, 0.21, 0.9)
	fg := premul(0.56, 0.50, 0.89, 0.8)

	out := ApplyInt(SrcOver, bg, fg)
	want := RGBA8{R: 145, G: 112, B: 190, A: 250}
	if !u8close(out.R, want.R, 1) || !u8close(out.G, want.G, 1) ||
		!u8close(out.B, want.B, 1) || !u8close(out.A, want.A, 1) {
		t.Fatalf("got %+v, want %+v", out, want)
	}
}

func TestSrcOverPartialAlphaFloat(t *testing.T) {
	bg := premulF(0.69, 0.23, 0.21, 0.9)
	fg := premulF(0.56, 0.50, 0.89, 0.8)

	out := ApplyFloat(SrcOver, bg, fg)
	got := encodeF(out)
	want := RGBA8{R: 146, G: 113, B: 191, A: 250}
	if !u8close(got.R, want.R, 1) || !u8close(got.G, want.G, 1) ||
		!u8close(got.B, want.B, 1) || !u8close(got.A, want.A, 1) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMultiplyFullAlphaInt(t *testing.T) {
	bg := premul(0.69, 0.23, 0.21, 1.0)
	fg := premul(0.56, 0.50, 0.89, 1.0)

	out := ApplyInt(Multiply, bg, fg)
	want := RGBA8{R: 98, G: 29, B: 48, A: 255}
	if !u8close(out.R, want.R, 1) || !u8close(out.G, want.G, 1) || !u8close(out.B, want.B, 1) {
		t.Fatalf("got %+v, want %+v", out, want)
	}
}

func TestMultiplyFullAlphaFloat(t *testing.T) {
	bg := premulF(0.69, 0.23, 0.21, 1.0)
	fg := premulF(0.56, 0.50, 0.89, 1.0)

	out := ApplyFloat(Multiply, bg, fg)
	got := encodeF(out)
	want := RGBA8{R: 99, G: 30, B: 48, A: 255}
	if !u8close(got.R, want.R, 1) || !u8close(got.G, want.G, 1) || !u8close(got.B, want.B, 1) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestColorDodgeSourceEqualsAlphaShortCircuit(t *testing.T) {
	bg := premulF(0.0, 0.23, 0.21, 0.9)
	fg := premulF(1.0, 0.5, 0.89, 0.8)

	out := ApplyFloat(ColorDodge, bg, fg)
	got := encodeF(out)
	want := RGBA8{R: 20, G: 105, B: 211, A: 250}
	if !u8close(got.R, want.R, 1) || !u8close(got.G, want.G, 1) ||
		!u8close(got.B, want.B, 1) || !u8close(got.A, want.A, 1) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyIntReturnsTransparentBlackForFloatOnlyOperators(t *testing.T) {
	bg := premul(0.5, 0.5, 0.5, 1.0)
	fg := premul(0.2, 0.2, 0.2, 1.0)

	for _, op := range []Operator{ColorDodge, ColorBurn, SoftLight, Hue, Saturation, Color, Luminosity} {
		if out := ApplyInt(op, bg, fg); out != (RGBA8{}) {
			t.Fatalf("operator %v: expected transparent black in integer precision, got %+v", op, out)
		}
	}
}

func TestRequiresFloatMatchesFloatOnlySet(t *testing.T) {
	floatOnly := map[Operator]bool{
		ColorDodge: true, ColorBurn: true, SoftLight: true,
		Hue: true, Saturation: true, Color: true, Luminosity: true,
	}
	for op := Clear; op <= Luminosity; op++ {
		if op.RequiresFloat() != floatOnly[op] {
			t.Errorf("operator %v: RequiresFloat()=%v, want %v", op, op.RequiresFloat(), floatOnly[op])
		}
	}
}

func TestBoundedExcludesExactlyTheFourUnboundedOperators(t *testing.T) {
	unbounded := map[Operator]bool{SrcIn: true, DstIn: true, SrcOut: true, DstAtop: true}
	for op := Clear; op <= Luminosity; op++ {
		if op.Bounded() == unbounded[op] {
			t.Errorf("operator %v: Bounded()=%v, want %v", op, op.Bounded(), !unbounded[op])
		}
	}
}

func premulF(r, g, b, a float64) RGBAF {
	return RGBAF{R: r * a, G: g * a, B: b * a, A: a}
}

func encodeF(c RGBAF) RGBA8 {
	return RGBA8{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
