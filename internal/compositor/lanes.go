package compositor

// laneCount is the fixed vector width L this package's stride compositor
// groups pixels into. Rather than detecting hardware SIMD width at
// runtime, lanes are a fixed-size Go array processed with a plain loop,
// relying on the compiler to auto-vectorize it on supported architectures
// (SSE/AVX/NEON) — the same design as the teacher's internal/wide
// package: U16x16 groups 16 uint16 lanes for integer blending, F32x8
// groups 8 float32 lanes for float blending, both plain `[N]T` arrays
// with no unsafe or assembly.
const laneCount = 16

// LaneCount returns the build-time vector width L. It is a fixed
// constant rather than a runtime CPU probe, per the teacher's stated
// design philosophy (internal/wide/doc.go): "use simple loops over
// fixed-size arrays for auto-vectorization; avoid unsafe and assembly".
func LaneCount() int {
	return laneCount
}
