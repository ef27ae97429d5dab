// Package native defines the stable interface to optional, externally
// loaded SIMD and GPU PoH acceleration libraries. The reference shared
// library contracts are:
//
//	void poh_verify_many_simd_avx2(uint8_t *hashes, const uint64_t *num_hashes)
//	void poh_verify_many_simd_avx512skx(uint8_t *hashes, const uint64_t *num_hashes)
//	int  poh_verify_many(uint8_t *hashes, const uint64_t *num_hashes, size_t length, size_t ignore_mismatch)
//
// The SIMD entry points advance each 32-byte hash lane in place by its
// corresponding num_hashes count. poh_verify_many does the same on a GPU and
// returns non-zero on unrecoverable device failure — the caller treats that
// as fatal (spec §7), never as a verification failure.
package native

// Capability is the handle a loaded native acceleration library exposes.
// A nil Capability, or one whose Loaded and GPUAvailable methods both
// return false, means no native library is available and callers fall back
// to the scalar backend.
type Capability interface {
	// Loaded reports whether a native library was opened and exposes at
	// least one of the SIMD entry points. A library exposing only the GPU
	// entry point reports false here and true from GPUAvailable.
	Loaded() bool
	// VerifyManySIMDAVX2 advances each 32-byte hash in hashes by the
	// corresponding entry in numHashes, in place. len(hashes) must be a
	// multiple of 32 and len(hashes)/32 == len(numHashes).
	VerifyManySIMDAVX2(hashes []byte, numHashes []uint64) error
	// VerifyManySIMDAVX512 is the AVX-512F lane-width-16 analog of
	// VerifyManySIMDAVX2.
	VerifyManySIMDAVX512(hashes []byte, numHashes []uint64) error
	// GPUAvailable reports whether a GPU entry point was found.
	GPUAvailable() bool
	// VerifyManyGPU advances each 32-byte hash in hashes by the
	// corresponding entry in numHashes on the GPU, in place. It returns
	// fatal == true when the device returns a non-zero code, a condition
	// the caller panics on. A malformed call (e.g. mismatched lengths) or a
	// missing GPU entry point returns false without advancing any lane.
	VerifyManyGPU(hashes []byte, numHashes []uint64) (fatal bool)
}

// unavailable is the Capability used whenever no native library could be
// loaded, on any platform.
type unavailable struct{}

func (unavailable) Loaded() bool      { return false }
func (unavailable) GPUAvailable() bool { return false }

func (unavailable) VerifyManySIMDAVX2([]byte, []uint64) error {
	return errUnavailable
}

func (unavailable) VerifyManySIMDAVX512([]byte, []uint64) error {
	return errUnavailable
}

func (unavailable) VerifyManyGPU([]byte, []uint64) bool {
	return false
}
