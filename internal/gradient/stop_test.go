package gradient

import (
	"testing"

	"github.com/rastercore/compositor/internal/colorspace"
)

func TestAddStopSortsByOffsetThenInsertion(t *testing.T) {
	sl := NewStopList(colorspace.LinearRGBMethod())
	sl.AddStop(1, colorspace.NewLinearRGB(1, 0, 0, 1))
	sl.AddStop(0, colorspace.NewLinearRGB(0, 1, 0, 1))
	sl.AddStop(0.5, colorspace.NewLinearRGB(0, 0, 1, 1))

	if sl.stops[0].Offset != 0 || sl.stops[1].Offset != 0.5 || sl.stops[2].Offset != 1 {
		t.Fatalf("expected stops sorted by offset, got %+v", sl.stops)
	}
}

func TestAddStopClampsOffset(t *testing.T) {
	sl := NewStopList(colorspace.LinearRGBMethod())
	sl.AddStop(-0.5, colorspace.NewLinearRGB(1, 0, 0, 1))
	sl.AddStop(1.5, colorspace.NewLinearRGB(0, 1, 0, 1))

	if sl.stops[0].Offset != 0 || sl.stops[1].Offset != 1 {
		t.Fatalf("expected offsets clamped to [0,1], got %+v", sl.stops)
	}
}

func TestLookupEmptyListNotOK(t *testing.T) {
	sl := NewStopList(colorspace.LinearRGBMethod())
	_, _, _, ok := sl.Lookup(0.5)
	if ok {
		t.Fatal("expected lookup on empty list to report not ok")
	}
}

func TestLookupHardStop(t *testing.T) {
	sl := NewStopList(colorspace.LinearRGBMethod())
	red := colorspace.NewLinearRGB(1, 0, 0, 1)
	blue := colorspace.NewLinearRGB(0, 0, 1, 1)
	sl.AddStop(0.5, red)
	sl.AddStop(0.5, blue)

	c0, c1, rel, ok := sl.Lookup(0.5)
	if !ok {
		t.Fatal("expected hard stop lookup to succeed")
	}
	if rel != 0 {
		t.Fatalf("expected rel 0 at a hard stop, got %v", rel)
	}
	if c0 != red || c1 != blue {
		t.Fatalf("expected bracketing stops in insertion order, got %+v %+v", c0, c1)
	}
}

func TestLookupBeforeFirstStop(t *testing.T) {
	sl := NewStopList(colorspace.LinearRGBMethod())
	sl.AddStop(0.5, colorspace.NewLinearRGB(1, 1, 1, 1))

	_, _, rel, ok := sl.Lookup(0.25)
	if !ok {
		t.Fatal("expected lookup before the first stop to succeed")
	}
	if rel != 0.5 {
		t.Fatalf("expected rel 0.5 (0.25/0.5), got %v", rel)
	}
}

func TestLookupPastLastStop(t *testing.T) {
	sl := NewStopList(colorspace.LinearRGBMethod())
	white := colorspace.NewLinearRGB(1, 1, 1, 1)
	sl.AddStop(0.5, white)

	c0, c1, rel, ok := sl.Lookup(1)
	if !ok || rel != 0.5 || c0 != white || c1 != white {
		t.Fatalf("expected last-stop extrapolation, got c0=%+v c1=%+v rel=%v ok=%v", c0, c1, rel, ok)
	}
}
