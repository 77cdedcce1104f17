package pixfmt

import (
	"github.com/rastercore/compositor/internal/basics"
	"github.com/rastercore/compositor/internal/buffer"
)

// Stride is a typed reference to a contiguous pixel sub-range of one
// scanline, variant over the same six kinds as Pixel. For sub-byte
// alpha formats it carries the backing byte slice plus a pixel offset
// into it rather than a byte-aligned window, since a run need not
// start on a byte boundary.
type Stride struct {
	kind       Kind
	row        []basics.Int8u
	pixOffset  int // pixel index of the first pixel, for packed formats
	length     int
	bytesPerPx int // 0 for packed (< 1 byte/pixel) formats
}

func (s Stride) Kind() Kind  { return s.kind }
func (s Stride) Len() int    { return s.length }
func (s Stride) Empty() bool { return s.length == 0 }

// NewStride builds a view over [x, x+length) of one scanline row,
// returning an empty Stride if (x,y) falls outside [0,width) or
// length<=0, per the stride constructor contract (§4.1/§6). width is
// the surface's pixel width, used to clamp the run to the row.
func NewStride(rb *buffer.RenderingBuffer[basics.Int8u], kind Kind, width, x, y, length int) Stride {
	if x < 0 || y < 0 || x >= width || length <= 0 {
		return Stride{}
	}
	if length > width-x {
		length = width - x
	}

	bpp := bytesPerPixel(kind)
	if bpp >= 1 {
		row := buffer.RowU8(rb, y)
		off := x * bpp
		end := off + length*bpp
		if row == nil || end > len(row) {
			return Stride{}
		}
		return Stride{kind: kind, row: row[off:end], length: length, bytesPerPx: bpp}
	}

	// Packed sub-byte format: address by pixel offset into the row's
	// byte buffer; byteLen rounds up to cover the partial trailing byte.
	perByte := 8 / kind.Width()
	byteLen := (x+length+perByte-1)/perByte - x/perByte
	row := buffer.RowU8(rb, y)
	startByte := x / perByte
	if row == nil || startByte+byteLen > len(row) {
		return Stride{}
	}
	return Stride{kind: kind, row: row[startByte : startByte+byteLen], pixOffset: x % perByte, length: length}
}

func bytesPerPixel(k Kind) int {
	switch k {
	case KindRGB:
		return 3
	case KindRGBA:
		return 4
	case KindAlpha8:
		return 1
	default:
		return 0 // packed, less than one byte per pixel
	}
}

// At reads pixel i of the stride, unpacking sub-byte formats.
func (s Stride) At(i int) Pixel {
	switch s.kind {
	case KindRGB:
		off := i * 3
		return RGB(s.row[off], s.row[off+1], s.row[off+2])
	case KindRGBA:
		off := i * 4
		return RGBA(s.row[off], s.row[off+1], s.row[off+2], s.row[off+3])
	case KindAlpha8:
		return Alpha8(s.row[i])
	default:
		return s.getPacked(i)
	}
}

// Set writes pixel i of the stride, masking the surrounding bits for
// sub-byte formats so neighboring pixels in the same byte survive.
func (s Stride) Set(i int, p Pixel) {
	switch s.kind {
	case KindRGB:
		off := i * 3
		s.row[off], s.row[off+1], s.row[off+2] = p.R, p.G, p.B
	case KindRGBA:
		off := i * 4
		s.row[off], s.row[off+1], s.row[off+2], s.row[off+3] = p.R, p.G, p.B, p.A
	case KindAlpha8:
		s.row[i] = p.A
	default:
		s.setPacked(i, p)
	}
}

func (s Stride) getPacked(i int) Pixel {
	n := s.kind.Width()
	perByte := 8 / n
	pix := s.pixOffset + i
	b := s.row[pix/perByte]
	shift := uint((perByte - 1 - pix%perByte) * n)
	mask := basics.Int8u((1 << uint(n)) - 1)
	v := (b >> shift) & mask
	switch s.kind {
	case KindAlpha4:
		return Alpha4(v)
	case KindAlpha2:
		return Alpha2(v)
	default:
		return Alpha1(v)
	}
}

func (s Stride) setPacked(i int, p Pixel) {
	n := s.kind.Width()
	perByte := 8 / n
	pix := s.pixOffset + i
	shift := uint((perByte - 1 - pix%perByte) * n)
	mask := basics.Int8u((1 << uint(n)) - 1)
	v := narrowBits(p.A, n) & mask
	idx := pix / perByte
	s.row[idx] = (s.row[idx] &^ (mask << shift)) | (v << shift)
}
