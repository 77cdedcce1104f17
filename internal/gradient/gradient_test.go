package gradient

import (
	"math"
	"testing"

	"github.com/rastercore/compositor/internal/colorspace"
	"github.com/rastercore/compositor/internal/transform"
)

func stops() *StopList {
	sl := NewStopList(colorspace.LinearRGBMethod())
	sl.AddStop(0, colorspace.NewLinearRGB(1, 0, 0, 1))
	sl.AddStop(1, colorspace.NewLinearRGB(0, 0, 1, 1))
	return sl
}

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestLinearOffsetAlongAxis(t *testing.T) {
	g := NewLinear(0, 0, 100, 0, stops())
	if off := g.GetOffset(49, 0); !approxEqual(off, 0.495, 0.01) {
		t.Fatalf("expected offset near 0.5 at x=49, got %v", off)
	}
	if off := g.GetOffset(-10, 0); off != 0 {
		t.Fatalf("expected offset clamped to 0 before start, got %v", off)
	}
	if off := g.GetOffset(200, 0); off != 1 {
		t.Fatalf("expected offset clamped to 1 past end, got %v", off)
	}
}

func TestLinearOffsetZeroLengthVector(t *testing.T) {
	g := NewLinear(10, 10, 10, 10, stops())
	if off := g.GetOffset(10, 10); off != -1 {
		t.Fatalf("expected -1 for a zero-length gradient vector, got %v", off)
	}
}

func TestRadialOffsetConcentricCircles(t *testing.T) {
	g := NewRadial(49, 49, 0, 49, 49, 50, stops())

	if off := g.GetOffset(74, 74); !approxEqual(off, 0.721248, 0.0005) {
		t.Fatalf("expected offset near 0.721248 at (74,74), got %v", off)
	}
	if off := g.GetOffset(49, 74); !approxEqual(off, 0.510098, 0.0005) {
		t.Fatalf("expected offset near 0.510098 at (49,74), got %v", off)
	}
}

func TestRadialOffsetBothZeroRadiiDegenerate(t *testing.T) {
	g := NewRadial(0, 0, 0, 0, 0, 0, stops())
	if off := g.GetOffset(5, 5); off != -1 {
		t.Fatalf("expected -1 when both radii are zero, got %v", off)
	}
}

func TestRadialOffsetNegativeRadiusClampedToZero(t *testing.T) {
	g := NewRadial(0, 0, -5, 0, 0, 10, stops())
	if g.r1 != 0 {
		t.Fatalf("expected negative r1 clamped to 0, got %v", g.r1)
	}
}

func TestConicOffsetQuadrants(t *testing.T) {
	g := NewConic(49.5, 49, 0, stops())
	if off := g.GetOffset(49, 99); !approxEqual(off, 0.25, 1e-9) {
		t.Fatalf("expected offset exactly 0.25 at (49,99), got %v", off)
	}

	g2 := NewConic(49.5, 49, math.Pi/4, stops())
	if off := g2.GetOffset(49, 99); !approxEqual(off, 0.125, 1e-9) {
		t.Fatalf("expected offset exactly 0.125 with a pi/4 start angle, got %v", off)
	}
}

func TestConicOffsetWrapsToStartAngle(t *testing.T) {
	g := NewConic(0, 0.5, 0, stops())
	if off := g.GetOffset(10, 0); !approxEqual(off, 0, 1e-9) {
		t.Fatalf("expected offset exactly 0 along the start angle, got %v", off)
	}
}

func TestSetTransformationRejectsNonInvertible(t *testing.T) {
	g := NewLinear(0, 0, 100, 0, stops())
	degenerate := transform.NewTransAffineFromValues(0, 0, 0, 0, 0, 0)
	if err := g.SetTransformation(degenerate); err == nil {
		t.Fatal("expected an error for a non-invertible transformation")
	}
}

func TestSetTransformationScalesOffsets(t *testing.T) {
	g := NewLinear(0, 0, 100, 0, stops())
	scale := transform.NewTransAffineFromValues(2, 0, 0, 2, 0, 0)
	if err := g.SetTransformation(scale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A forward 2x scale means the inverse halves coordinates before
	// projection, so a point twice as far out now lands at the same offset.
	off := g.GetOffset(99, 0)
	if !approxEqual(off, 0.495, 0.01) {
		t.Fatalf("expected offset near 0.5 after inverse-scaling, got %v", off)
	}
}

func TestUseLUTApproximatesExactColorAt(t *testing.T) {
	g := NewLinear(0, 0, 100, 0, stops())
	g.UseLUT(256)

	for x := 0; x <= 100; x += 10 {
		exact := g.Stops.ColorAt(float32(g.GetOffset(x, 0)))
		wantR := colorspace.EncodeRGBA(exact).R

		lutPixel := g.GetPixel(x, 0)
		if d := int(lutPixel.R) - int(wantR); d > 2 || d < -2 {
			t.Fatalf("LUT diverged from exact at x=%d: got R=%d want R=%d", x, lutPixel.R, wantR)
		}
	}
}
