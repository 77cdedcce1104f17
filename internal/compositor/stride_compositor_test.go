package compositor

import (
	"testing"

	"github.com/rastercore/compositor/internal/colorspace"
)

type constGradient struct{ c colorspace.RGBA8 }

func (g constGradient) GetPixel(x, y int) colorspace.RGBA8 { return g.c }

func newTestStride(n int) Stride {
	return Stride{pixels: make([]uint8, n*4)}
}

func TestCompositeStrideNoOpOnEmptyInputs(t *testing.T) {
	s := newTestStride(4)
	CompositeStride(s, nil, Integer) // must not panic
	CompositeStride(Stride{}, []Operation{{Operator: Src, Src: PixelParam(RGBA8{R: 1})}}, Integer)
}

func TestCompositeStridePanicsWhenFirstSourceIsNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when the first operation's source is none")
		}
	}()
	s := newTestStride(4)
	CompositeStride(s, []Operation{{Operator: Src, Src: NoneParam()}}, Integer)
}

func TestCompositeStrideSrcOverWritesThrough(t *testing.T) {
	n := 6
	s := newTestStride(n)
	bg := RGBA8{R: 176, G: 59, B: 54, A: 255}
	fg := RGBA8{R: 143, G: 128, B: 227, A: 255}
	for i := 0; i < n; i++ {
		s.Set(i, bg)
	}

	CompositeStride(s, []Operation{{Operator: SrcOver, Src: PixelParam(fg)}}, Integer)

	for i := 0; i < n; i++ {
		if got := s.At(i); got != fg {
			t.Fatalf("pixel %d: got %+v, want %+v (opaque src_over replaces dst)", i, got, fg)
		}
	}
}

func TestCompositeStrideWorkingValueCarriesBetweenOps(t *testing.T) {
	n := 4
	s := newTestStride(n)
	bg := RGBA8{R: 10, G: 20, B: 30, A: 255}
	fg := RGBA8{R: 200, G: 100, B: 50, A: 255}
	for i := 0; i < n; i++ {
		s.Set(i, bg)
	}

	ops := []Operation{
		{Operator: SrcOver, Dst: StrideParam(s), Src: PixelParam(fg)},
		{Operator: Src, Dst: NoneParam(), Src: NoneParam()},
	}
	CompositeStride(s, ops, Integer)

	for i := 0; i < n; i++ {
		if got := s.At(i); got != fg {
			t.Fatalf("pixel %d: expected the second op's none/none to reuse op1's src (%+v), got %+v", i, fg, got)
		}
	}
}

func TestCompositeStrideNoneDstReadsDestinationWhenNoWorkingValueYet(t *testing.T) {
	n := 3
	s := newTestStride(n)
	bg := RGBA8{R: 50, G: 60, B: 70, A: 255}
	for i := 0; i < n; i++ {
		s.Set(i, bg)
	}

	// Dst=None as the very first op, with no prior working value, must
	// read straight from the destination stride.
	CompositeStride(s, []Operation{{Operator: Dst, Dst: NoneParam(), Src: PixelParam(RGBA8{A: 255})}}, Integer)

	for i := 0; i < n; i++ {
		if got := s.At(i); got != bg {
			t.Fatalf("pixel %d: got %+v, want dst unchanged %+v", i, got, bg)
		}
	}
}

func TestCompositeStrideHandlesPartialTailGroup(t *testing.T) {
	n := LaneCount()*2 + 3
	s := newTestStride(n)
	fg := RGBA8{R: 9, G: 8, B: 7, A: 255}

	CompositeStride(s, []Operation{{Operator: Src, Src: PixelParam(fg)}}, Integer)

	for i := 0; i < n; i++ {
		if got := s.At(i); got != fg {
			t.Fatalf("pixel %d (of %d, lane count %d): got %+v, want %+v", i, n, LaneCount(), got, fg)
		}
	}
}

func TestCompositeStrideFloatPrecisionRoundTrips(t *testing.T) {
	n := 2
	s := newTestStride(n)
	bg := RGBA8{R: 0, G: 0, B: 0, A: 255}
	fg := RGBA8{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < n; i++ {
		s.Set(i, bg)
	}

	CompositeStride(s, []Operation{{Operator: SrcOver, Src: PixelParam(fg)}}, Float)

	for i := 0; i < n; i++ {
		if got := s.At(i); got != fg {
			t.Fatalf("pixel %d: got %+v, want %+v", i, got, fg)
		}
	}
}

func TestCompositeStrideGradientParamEvaluatesPerLane(t *testing.T) {
	n := 4
	s := newTestStride(n)
	g := constGradient{c: colorspace.RGBA8{R: 7, G: 8, B: 9, A: 255}}

	CompositeStride(s, []Operation{{Operator: Src, Src: GradientParam(g, 100, 5)}}, Integer)

	want := RGBA8{R: 7, G: 8, B: 9, A: 255}
	for i := 0; i < n; i++ {
		if got := s.At(i); got != want {
			t.Fatalf("pixel %d: got %+v, want %+v", i, got, want)
		}
	}
}
