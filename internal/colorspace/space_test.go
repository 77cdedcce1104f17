package colorspace

import "testing"

func TestHueWrapping(t *testing.T) {
	c := NewHSL(-30, 0.5, 0.5, 1)
	if c.C0 != 330 {
		t.Fatalf("expected -30 wrapped to 330, got %v", c.C0)
	}

	c = NewHSL(720, 0.5, 0.5, 1)
	if c.C0 != 0 {
		t.Fatalf("expected 720 wrapped to 0, got %v", c.C0)
	}

	c = NewHSL(360, 0.5, 0.5, 1)
	if c.C0 != 360 {
		t.Fatalf("expected exactly 360 preserved, got %v", c.C0)
	}
}

func TestChannelClamping(t *testing.T) {
	c := NewLinearRGB(-1, 2, 0.5, 3)
	if c.C0 != 0 || c.C1 != 1 || c.C2 != 0.5 || c.A != 1 {
		t.Fatalf("expected clamped channels, got %+v", c)
	}
}
