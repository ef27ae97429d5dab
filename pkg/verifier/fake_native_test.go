package verifier

import (
	"crypto/sha256"
	"errors"
)

var errUnsupported = errors.New("verifier test: SIMD not supported by fakeCapability")

// fakeCapability stands in for a loaded native SIMD/GPU library so the GPU
// dispatch path can be exercised without a real shared library.
type fakeCapability struct {
	gpuOK bool
}

func (f fakeCapability) Loaded() bool       { return false }
func (f fakeCapability) GPUAvailable() bool { return f.gpuOK }

func (f fakeCapability) VerifyManySIMDAVX2([]byte, []uint64) error {
	return errUnsupported
}

func (f fakeCapability) VerifyManySIMDAVX512([]byte, []uint64) error {
	return errUnsupported
}

func (f fakeCapability) VerifyManyGPU(hashes []byte, numHashes []uint64) bool {
	for lane, n := range numHashes {
		off := lane * 32
		var h [32]byte
		copy(h[:], hashes[off:off+32])
		for i := uint64(0); i < n; i++ {
			h = sha256.Sum256(h[:])
		}
		copy(hashes[off:off+32], h[:])
	}
	return false
}
