// Package transpose implements the pixel-vector transpose: gather/
// scatter between interleaved pixel memory (RGBA bytes) and planar
// vectors (one vector per channel), per spec component 7. A full
// lane-group is transposed in the vector body; a shorter tail uses the
// same byte-wise loop, which doubles as the "tail path" the spec calls
// for without needing a second masked implementation.
package transpose

// Int16 gathers the first n interleaved RGBA8 pixels into four planar
// uint16 vectors (R,G,B,A) of length n, widened from the 8-bit source.
// Callers pass partial lane groups by sizing n below L.
func Int16(pixels []uint8, n int) (r, g, b, a []uint16) {
	r = make([]uint16, n)
	g = make([]uint16, n)
	b = make([]uint16, n)
	a = make([]uint16, n)
	for i := 0; i < n; i++ {
		off := i * 4
		r[i] = uint16(pixels[off+0])
		g[i] = uint16(pixels[off+1])
		b[i] = uint16(pixels[off+2])
		a[i] = uint16(pixels[off+3])
	}
	return
}

// ScatterInt16 writes planar uint16 vectors (clamped to 0..255) back
// into interleaved RGBA8 pixel memory.
func ScatterInt16(pixels []uint8, r, g, b, a []uint16) {
	for i := range r {
		off := i * 4
		pixels[off+0] = clamp8(r[i])
		pixels[off+1] = clamp8(g[i])
		pixels[off+2] = clamp8(b[i])
		pixels[off+3] = clamp8(a[i])
	}
}

func clamp8(v uint16) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Float32 gathers interleaved RGBA8 pixels into four planar float32
// vectors in [0,1], for float-precision kernel execution.
func Float32(pixels []uint8, n int) (r, g, b, a []float32) {
	r = make([]float32, n)
	g = make([]float32, n)
	b = make([]float32, n)
	a = make([]float32, n)
	for i := 0; i < n; i++ {
		off := i * 4
		r[i] = float32(pixels[off+0]) / 255
		g[i] = float32(pixels[off+1]) / 255
		b[i] = float32(pixels[off+2]) / 255
		a[i] = float32(pixels[off+3]) / 255
	}
	return
}

// ScatterFloat32 writes planar float32 vectors (clamped to [0,1]) back
// into interleaved RGBA8 pixel memory using round-half-away-from-zero.
func ScatterFloat32(pixels []uint8, r, g, b, a []float32) {
	for i := range r {
		off := i * 4
		pixels[off+0] = encode8(r[i])
		pixels[off+1] = encode8(g[i])
		pixels[off+2] = encode8(b[i])
		pixels[off+3] = encode8(a[i])
	}
}

func encode8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
