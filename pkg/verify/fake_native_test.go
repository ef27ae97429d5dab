package verify

import "crypto/sha256"

// fakeCapability is a software stand-in for a loaded native SIMD/GPU
// library: it performs the same in-place lane advance the real shared
// library would, using plain sha256 so tests can exercise the chunking and
// finalization logic without a real dlopen'd library.
type fakeCapability struct {
	simdOK bool
	gpuOK  bool
}

func (f fakeCapability) Loaded() bool      { return f.simdOK }
func (f fakeCapability) GPUAvailable() bool { return f.gpuOK }

func (f fakeCapability) VerifyManySIMDAVX2(hashes []byte, numHashes []uint64) error {
	return advanceLanes(hashes, numHashes)
}

func (f fakeCapability) VerifyManySIMDAVX512(hashes []byte, numHashes []uint64) error {
	return advanceLanes(hashes, numHashes)
}

func (f fakeCapability) VerifyManyGPU(hashes []byte, numHashes []uint64) bool {
	_ = advanceLanes(hashes, numHashes)
	return false
}

func advanceLanes(hashes []byte, numHashes []uint64) error {
	for lane, n := range numHashes {
		off := lane * 32
		var h [32]byte
		copy(h[:], hashes[off:off+32])
		for i := uint64(0); i < n; i++ {
			h = sha256.Sum256(h[:])
		}
		copy(hashes[off:off+32], h[:])
	}
	return nil
}
