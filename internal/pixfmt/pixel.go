// Package pixfmt implements the closed pixel-format variant set and
// the stride-building contract of §4.1: conversion between RGB, RGBA,
// and the packed alpha-only widths, multiply/demultiply, and carving a
// sub-range of a scanline into a Stride.
package pixfmt

import "github.com/rastercore/compositor/internal/basics"

// Kind identifies one of the six concrete pixel variants.
type Kind int

const (
	KindRGB Kind = iota
	KindRGBA
	KindAlpha8
	KindAlpha4
	KindAlpha2
	KindAlpha1
)

// Pixel is a closed sum type over the six formats. Only the fields
// relevant to Kind are meaningful; RGBA pixels are premultiplied.
type Pixel struct {
	Kind       Kind
	R, G, B, A basics.Int8u
}

func RGB(r, g, b basics.Int8u) Pixel {
	return Pixel{Kind: KindRGB, R: r, G: g, B: b, A: 255}
}

func RGBA(r, g, b, a basics.Int8u) Pixel {
	return Pixel{Kind: KindRGBA, R: r, G: g, B: b, A: a}
}

func Alpha8(a basics.Int8u) Pixel { return Pixel{Kind: KindAlpha8, A: a} }

// Alpha4/Alpha2/Alpha1 store their value scaled into the full 8-bit
// range so a Pixel is comparable across widths without knowing which
// one produced it; Width reports the originating packed width.
func Alpha4(nibble basics.Int8u) Pixel {
	return Pixel{Kind: KindAlpha4, A: broadcastBits(nibble&0xF, 4)}
}

func Alpha2(crumb basics.Int8u) Pixel {
	return Pixel{Kind: KindAlpha2, A: broadcastBits(crumb&0x3, 2)}
}

func Alpha1(bit basics.Int8u) Pixel {
	v := basics.Int8u(0)
	if bit != 0 {
		v = 255
	}
	return Pixel{Kind: KindAlpha1, A: v}
}

// Width reports the packed width in bits of alpha-only formats.
func (k Kind) Width() int {
	switch k {
	case KindAlpha4:
		return 4
	case KindAlpha2:
		return 2
	case KindAlpha1:
		return 1
	default:
		return 8
	}
}

// broadcastBits replicates an n-bit value across all 8 bits, the
// "wide to narrow to wide is monotone, need not be exact" broadcast
// rule of §4.1.
func broadcastBits(v basics.Int8u, n int) basics.Int8u {
	max := basics.Int8u((1 << uint(n)) - 1)
	if max == 0 {
		return 0
	}
	return basics.Int8u((uint32(v) * 255) / uint32(max))
}

// narrowBits floor-divides an 8-bit value down to an n-bit value.
func narrowBits(v basics.Int8u, n int) basics.Int8u {
	max := uint32((1 << uint(n)) - 1)
	return basics.Int8u((uint32(v) * max) / 255)
}
