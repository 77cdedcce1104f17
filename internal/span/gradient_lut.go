// Package span provides a generic, fixed-size color lookup table
// (GradientLUT), the optional precomputed fast-path behind
// internal/gradient.LUT. No teacher or pack repo defines an equivalent
// generic LUT; this package exists because internal/gradient needs an
// O(1) quantized alternative to its exact binary-search stop lookup.
package span

import (
	"github.com/rastercore/compositor/internal/array"
	"github.com/rastercore/compositor/internal/basics"
)

// ColorInterpolator advances through a precomputed color ramp one step
// at a time, used while filling a GradientLUT's table.
type ColorInterpolator[T any] interface {
	Inc()
	Color() T
}

// ColorPoint is one color stop in a gradient profile.
type ColorPoint[T any] struct {
	Offset float64
	Color  T
}

// NewColorPoint creates a color point with offset clamped to [0,1].
func NewColorPoint[T any](offset float64, c T) ColorPoint[T] {
	if offset < 0.0 {
		offset = 0.0
	}
	if offset > 1.0 {
		offset = 1.0
	}
	return ColorPoint[T]{Offset: offset, Color: c}
}

// GradientLUT precomputes a fixed-size table of colors from a sparse
// color profile, trading exact stop-list lookup for O(1) evaluation.
type GradientLUT[T any, CI ColorInterpolator[T]] struct {
	lutSize      int
	colorProfile []ColorPoint[T]
	colorLUT     []T
}

// NewGradientLUT creates a lookup table with the given resolution.
func NewGradientLUT[T any, CI ColorInterpolator[T]](lutSize int) *GradientLUT[T, CI] {
	return &GradientLUT[T, CI]{
		lutSize:  lutSize,
		colorLUT: make([]T, lutSize),
	}
}

// RemoveAll clears the color profile.
func (gl *GradientLUT[T, CI]) RemoveAll() {
	gl.colorProfile = gl.colorProfile[:0]
}

// AddColor appends a color stop to the profile.
func (gl *GradientLUT[T, CI]) AddColor(offset float64, c T) {
	gl.colorProfile = append(gl.colorProfile, NewColorPoint(offset, c))
}

// BuildLUT sorts and deduplicates the profile by offset, then fills the
// table by interpolating between adjacent stops with newInterpolator.
func (gl *GradientLUT[T, CI]) BuildLUT(newInterpolator func(T, T, uint) CI) {
	array.QuickSortSlice(gl.colorProfile, func(a, b ColorPoint[T]) bool {
		return a.Offset < b.Offset
	})

	newSize := array.RemoveDuplicatesSlice(gl.colorProfile, func(a, b ColorPoint[T]) bool {
		return a.Offset == b.Offset
	})
	gl.colorProfile = gl.colorProfile[:newSize]

	if len(gl.colorProfile) < 2 {
		return
	}

	start := int(basics.URound(gl.colorProfile[0].Offset * float64(gl.lutSize)))
	var end int

	c := gl.colorProfile[0].Color
	for i := 0; i < start; i++ {
		gl.colorLUT[i] = c
	}

	for i := 1; i < len(gl.colorProfile); i++ {
		end = int(basics.URound(gl.colorProfile[i].Offset * float64(gl.lutSize)))
		if end > gl.lutSize {
			end = gl.lutSize
		}

		isLastStop := i == len(gl.colorProfile)-1
		actualEnd := end
		if isLastStop && end == gl.lutSize {
			actualEnd = end - 1
		}

		ci := newInterpolator(
			gl.colorProfile[i-1].Color,
			gl.colorProfile[i].Color,
			uint(actualEnd-start+1),
		)

		for start < actualEnd {
			gl.colorLUT[start] = ci.Color()
			ci.Inc()
			start++
		}

		if isLastStop && end == gl.lutSize {
			gl.colorLUT[gl.lutSize-1] = gl.colorProfile[i].Color
			start = gl.lutSize
		}
	}

	c = gl.colorProfile[len(gl.colorProfile)-1].Color
	for end < gl.lutSize {
		gl.colorLUT[end] = c
		end++
	}
}

// Size returns the table's resolution.
func (gl *GradientLUT[T, CI]) Size() int {
	return gl.lutSize
}

// At returns the color at index i, clamped to the table's bounds.
func (gl *GradientLUT[T, CI]) At(i int) T {
	if i < 0 {
		return gl.colorLUT[0]
	}
	if i >= gl.lutSize {
		return gl.colorLUT[gl.lutSize-1]
	}
	return gl.colorLUT[i]
}
