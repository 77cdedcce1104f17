package colorspace

import "testing"

func TestDecodeEncodeRGBARoundTrip(t *testing.T) {
	p := RGBA8{R: 128, G: 64, B: 32, A: 200}
	c := DecodeRGBA(LinearRGB, p)
	got := EncodeRGBA(c)

	if absDiffU8(got.R, p.R) > 1 || absDiffU8(got.G, p.G) > 1 ||
		absDiffU8(got.B, p.B) > 1 || absDiffU8(got.A, p.A) > 1 {
		t.Fatalf("round trip drifted beyond tolerance: got %+v want %+v", got, p)
	}
}

func TestDemultiplyZeroAlpha(t *testing.T) {
	c := DecodeRGBA(LinearRGB, RGBA8{R: 10, G: 20, B: 30, A: 0})
	if c.C0 != 0 || c.C1 != 0 || c.C2 != 0 {
		t.Fatalf("expected zeroed channels at a=0, got %+v", c)
	}
}

func TestEncodeRGBAPremultipliesOutput(t *testing.T) {
	c := NewLinearRGB(1, 1, 1, 0.5)
	p := EncodeRGBA(c)
	// A straight-alpha white at a=0.5 premultiplies to ~128 per channel.
	if p.R < 125 || p.R > 130 {
		t.Fatalf("expected premultiplied channel near 128, got %d", p.R)
	}
}

func TestSRGBGammaRoundTrip(t *testing.T) {
	p := RGBA8{R: 200, G: 150, B: 80, A: 255}
	c := DecodeRGBA(SRGB, p)
	if c.Space != SRGB {
		t.Fatalf("expected SRGB space, got %v", c.Space)
	}
	got := EncodeRGBA(c)
	if absDiffU8(got.R, p.R) > 1 || absDiffU8(got.G, p.G) > 1 || absDiffU8(got.B, p.B) > 1 {
		t.Fatalf("sRGB round trip drifted: got %+v want %+v", got, p)
	}
}

func absDiffU8(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
