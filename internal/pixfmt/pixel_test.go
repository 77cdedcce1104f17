package pixfmt

import "testing"

func TestMultiplyDemultiplyRoundTrip(t *testing.T) {
	r, g, b := Multiply(200, 100, 50, 128)
	if r == 0 || g == 0 || b == 0 {
		t.Fatalf("expected nonzero premultiplied channels, got %d %d %d", r, g, b)
	}
	dr, dg, db := Demultiply(r, g, b, 128)
	// Integer division is lossy; require the result is close, not exact.
	if absDiff(dr, 200) > 2 || absDiff(dg, 100) > 2 || absDiff(db, 50) > 2 {
		t.Fatalf("round trip drifted too far: got %d %d %d", dr, dg, db)
	}
}

func TestMultiplyZeroAlpha(t *testing.T) {
	r, g, b := Multiply(200, 100, 50, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected zeroed channels at a=0, got %d %d %d", r, g, b)
	}
}

func TestConvertMultiChannelToAlpha(t *testing.T) {
	p := RGBA(10, 20, 30, 77)
	a := Convert(p, KindAlpha8)
	if a.A != 77 {
		t.Fatalf("expected alpha 77, got %d", a.A)
	}

	rgb := RGB(1, 2, 3)
	a2 := Convert(rgb, KindAlpha8)
	if a2.A != 255 {
		t.Fatalf("RGB is opaque, expected alpha 255, got %d", a2.A)
	}
}

func TestConvertAlphaToRGBA(t *testing.T) {
	a := Alpha8(200)
	p := Convert(a, KindRGBA)
	if p.R != 0 || p.G != 0 || p.B != 0 || p.A != 200 {
		t.Fatalf("expected black with alpha 200, got %+v", p)
	}
}

func TestConvertNarrowWidenMonotone(t *testing.T) {
	prev := basics8(0)
	for v := 0; v <= 255; v += 5 {
		p := Alpha8(basics8(v))
		narrow := Convert(p, KindAlpha2)
		wide := Convert(narrow, KindAlpha8)
		if wide.A < prev {
			t.Fatalf("narrow-then-widen not monotone at v=%d: got %d after %d", v, wide.A, prev)
		}
		prev = wide.A
	}
}

func basics8(v int) uint8 { return uint8(v) }

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
