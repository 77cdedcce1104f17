package compositor

import "github.com/rastercore/compositor/internal/buffer"

// Surface is an owned RGBA8 pixel buffer, 4 bytes per pixel,
// premultiplied at rest. It is the destination (and, as a source
// parameter, a read-only collaborator) for the surface compositor.
// Built on internal/buffer.RenderingBuffer (a row-stride-oriented byte
// buffer grounded on the teacher's *image.RGBA layout), specialized
// here to the compositor's fixed RGBA8 pixel layout.
type Surface struct {
	buf           *buffer.RenderingBuffer[uint8]
	width, height int
}

// NewSurface allocates a width×height RGBA8 surface, zero-initialized
// (transparent black).
func NewSurface(width, height int) *Surface {
	data := make([]uint8, width*height*4)
	rb := buffer.NewRenderingBufferWithData(data, width, height, width*4)
	return &Surface{buf: rb, width: width, height: height}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Stride returns a view into scanline y starting at column x, of
// length min(len, width-x). It returns an empty stride if (x,y) is
// outside the surface or len==0, per the stride constructor contract
// (§6).
func (s *Surface) Stride(x, y, length int) Stride {
	if x < 0 || y < 0 || x >= s.width || y >= s.height || length <= 0 {
		return Stride{}
	}
	if length > s.width-x {
		length = s.width - x
	}
	row := s.buf.RowPtr(x*4, y, length*4)
	if row == nil {
		return Stride{}
	}
	return Stride{pixels: row}
}

// Stride is a typed reference to a contiguous sub-range of one RGBA8
// scanline. It does not own memory.
type Stride struct {
	pixels []uint8 // length is a multiple of 4; len(pixels)/4 pixels
}

// Len reports the number of pixels this stride covers.
func (s Stride) Len() int { return len(s.pixels) / 4 }

// Empty reports whether this stride covers zero pixels.
func (s Stride) Empty() bool { return len(s.pixels) == 0 }

// At returns the premultiplied pixel at index i.
func (s Stride) At(i int) RGBA8 {
	off := i * 4
	return RGBA8{R: s.pixels[off], G: s.pixels[off+1], B: s.pixels[off+2], A: s.pixels[off+3]}
}

// Set writes the premultiplied pixel at index i.
func (s Stride) Set(i int, p RGBA8) {
	off := i * 4
	s.pixels[off], s.pixels[off+1], s.pixels[off+2], s.pixels[off+3] = p.R, p.G, p.B, p.A
}

// Bytes exposes the underlying interleaved byte slice, for the
// transpose package's gather/scatter.
func (s Stride) Bytes() []uint8 { return s.pixels }

// Sub returns the pixel sub-range [start, start+length) of this
// stride. The caller is responsible for staying in bounds; it is used
// internally to carve a stride parameter into lane groups.
func (s Stride) Sub(start, length int) Stride {
	return Stride{pixels: s.pixels[start*4 : (start+length)*4]}
}
