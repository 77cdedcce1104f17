package span

import "testing"

type floatInterpolator struct {
	c0, c1 float64
	length uint
	step   uint
}

func newFloatInterpolator(c0, c1 float64, length uint) *floatInterpolator {
	if length == 0 {
		length = 1
	}
	return &floatInterpolator{c0: c0, c1: c1, length: length}
}

func (fi *floatInterpolator) Inc() { fi.step++ }

func (fi *floatInterpolator) Color() float64 {
	if fi.step >= fi.length {
		return fi.c1
	}
	t := float64(fi.step) / float64(fi.length)
	return fi.c0 + (fi.c1-fi.c0)*t
}

func TestGradientLUTEndpoints(t *testing.T) {
	lut := NewGradientLUT[float64, *floatInterpolator](256)
	lut.AddColor(0, 0)
	lut.AddColor(1, 100)
	lut.BuildLUT(newFloatInterpolator)

	if lut.At(0) != 0 {
		t.Fatalf("expected 0 at start, got %v", lut.At(0))
	}
	if lut.At(255) != 100 {
		t.Fatalf("expected 100 at end, got %v", lut.At(255))
	}
	mid := lut.At(127)
	if mid < 40 || mid > 60 {
		t.Fatalf("expected midpoint near 50, got %v", mid)
	}
}

func TestGradientLUTClampsOutOfRangeIndex(t *testing.T) {
	lut := NewGradientLUT[float64, *floatInterpolator](16)
	lut.AddColor(0, 1)
	lut.AddColor(1, 2)
	lut.BuildLUT(newFloatInterpolator)

	if lut.At(-5) != lut.At(0) {
		t.Fatal("expected negative index clamped to first entry")
	}
	if lut.At(100) != lut.At(15) {
		t.Fatal("expected overflowing index clamped to last entry")
	}
}

func TestGradientLUTDeduplicatesStops(t *testing.T) {
	lut := NewGradientLUT[float64, *floatInterpolator](8)
	lut.AddColor(0.5, 1)
	lut.AddColor(0.5, 2)
	lut.BuildLUT(newFloatInterpolator)

	if len(lut.colorProfile) != 1 {
		t.Fatalf("expected duplicate offset removed, got %d stops", len(lut.colorProfile))
	}
}
