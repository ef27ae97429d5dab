// Package dispatch picks a PoH verification backend from runtime capability
// and batch size: GPU when available, otherwise the widest SIMD lane width
// the CPU and the loaded native library support, otherwise scalar.
package dispatch

import "github.com/klauspost/cpuid/v2"

// Backend names a PoH slice-verification implementation.
type Backend int

const (
	// Scalar is the portable, dependency-free reference backend.
	Scalar Backend = iota
	// SIMD8 advances eight hash lanes per native call (AVX2).
	SIMD8
	// SIMD16 advances sixteen hash lanes per native call (AVX-512F).
	SIMD16
	// GPU offloads the hash walk to a native GPU entry point.
	GPU
)

func (b Backend) String() string {
	switch b {
	case Scalar:
		return "scalar"
	case SIMD8:
		return "simd8"
	case SIMD16:
		return "simd16"
	case GPU:
		return "gpu"
	default:
		return "unknown"
	}
}

const (
	// minSliceLenAVX512 is the slice length below which SIMD16 offers no
	// advantage over scalar.
	minSliceLenAVX512 = 128
	// minSliceLenAVX2 is the slice length below which SIMD8 offers no
	// advantage over scalar.
	minSliceLenAVX2 = 48
)

// Capabilities describes what the runtime can execute, independent of batch
// size: whether a native SIMD library is loaded and which CPU instruction
// sets it can target, and whether a GPU entry point is available.
type Capabilities struct {
	SIMDLibLoaded bool
	HasAVX2       bool
	HasAVX512F    bool
	GPUAvailable  bool
}

// DetectCPU reads CPU feature flags via cpuid. It does not probe for a
// loaded native library or GPU entry point — callers combine this with
// whatever pkg/verify/native reports.
func DetectCPU() (hasAVX2, hasAVX512F bool) {
	return cpuid.CPU.Supports(cpuid.AVX2), cpuid.CPU.Supports(cpuid.AVX512F)
}

// Config carries the thresholds the Select policy applies. The zero value
// is the default policy described in spec.md: GPU preferred unconditionally
// whenever available, and the reference SIMD length floors (128 / 48).
type Config struct {
	// MinGPUSliceLen is the smallest slice length that will select GPU.
	// Zero (the default) means no floor: GPU is preferred whenever
	// available, matching the reference implementation's behavior.
	MinGPUSliceLen int
	// MinAVX512SliceLen overrides minSliceLenAVX512 when non-zero.
	MinAVX512SliceLen int
	// MinAVX2SliceLen overrides minSliceLenAVX2 when non-zero.
	MinAVX2SliceLen int
}

// Select deterministically picks a backend from caps, cfg and sliceLen,
// following the priority order GPU > SIMD16 > SIMD8 > Scalar.
func Select(caps Capabilities, cfg Config, sliceLen int) Backend {
	avx512Floor := minSliceLenAVX512
	if cfg.MinAVX512SliceLen != 0 {
		avx512Floor = cfg.MinAVX512SliceLen
	}
	avx2Floor := minSliceLenAVX2
	if cfg.MinAVX2SliceLen != 0 {
		avx2Floor = cfg.MinAVX2SliceLen
	}

	if caps.GPUAvailable && sliceLen >= cfg.MinGPUSliceLen {
		return GPU
	}
	if caps.SIMDLibLoaded && caps.HasAVX512F && sliceLen >= avx512Floor {
		return SIMD16
	}
	if caps.SIMDLibLoaded && caps.HasAVX2 && sliceLen >= avx2Floor {
		return SIMD8
	}
	return Scalar
}
