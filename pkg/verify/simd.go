package verify

import (
	"context"
	"time"

	"github.com/certen/poh-verifier/internal/workerpool"
	"github.com/certen/poh-verifier/pkg/entry"
	"github.com/certen/poh-verifier/pkg/poh"
	"github.com/certen/poh-verifier/pkg/verify/native"
)

// SIMD is the wide-SIMD backend: it batches entries into lane-width chunks,
// advances every lane's hash in place with one native call per chunk, then
// finalizes and compares each lane against its reference entry in Go.
type SIMD struct {
	Cap   native.Capability
	Lanes int // 8 (AVX2) or 16 (AVX-512F)
	Pool  *workerpool.Pool
}

// Verify advances and checks every entry's hash using the configured lane
// width. If the native capability cannot service the requested lane width,
// the slice is reported as not verified; the returned error is always nil.
func (s SIMD) Verify(ctx context.Context, entries []entry.Entry, startHash entry.Hash) (Result, error) {
	start := time.Now()

	pool := s.Pool
	if pool == nil {
		pool = workerpool.Default()
	}

	aligned := ((len(entries) + s.Lanes - 1) / s.Lanes) * s.Lanes
	hashBytes := make([]byte, aligned*entry.HashSize)

	gen := genesis(startHash)
	prevHashesOf(entries, gen, hashBytes)

	numHashes := make([]uint64, aligned)
	for i, e := range entries {
		numHashes[i] = saturatingSub1(e.NumHashes)
	}

	numChunks := aligned / s.Lanes
	ok := pool.All(ctx, numChunks, func(chunkIdx int) bool {
		off := chunkIdx * s.Lanes
		hashChunk := hashBytes[off*entry.HashSize : (off+s.Lanes)*entry.HashSize]
		countChunk := numHashes[off : off+s.Lanes]

		var err error
		switch s.Lanes {
		case 16:
			err = s.Cap.VerifyManySIMDAVX512(hashChunk, countChunk)
		case 8:
			err = s.Cap.VerifyManySIMDAVX2(hashChunk, countChunk)
		default:
			return false
		}
		if err != nil {
			return false
		}

		entryEnd := off + s.Lanes
		if entryEnd > len(entries) {
			entryEnd = len(entries)
		}
		for j := off; j < entryEnd; j++ {
			var lane entry.Hash
			copy(lane[:], hashChunk[(j-off)*entry.HashSize:(j-off+1)*entry.HashSize])
			if !compareHash(lane, entries[j]) {
				return false
			}
		}
		return true
	})

	return Result{Verified: ok, DurationMicros: time.Since(start).Microseconds()}, nil
}

// prevHashesOf writes each entry's predecessor hash into dst, HashSize
// bytes at a time, with gen standing in for entries[0]'s predecessor.
func prevHashesOf(entries []entry.Entry, gen entry.Entry, dst []byte) {
	prev := gen.Hash
	for i := range entries {
		copy(dst[i*entry.HashSize:(i+1)*entry.HashSize], prev[:])
		prev = entries[i].Hash
	}
}

// compareHash applies the one finalizing hash iteration (tick or record)
// the SIMD native call does not perform, and compares the result against
// the reference entry's recorded hash.
func compareHash(advanced entry.Hash, ref entry.Entry) bool {
	if ref.NumHashes == 0 {
		return advanced == ref.Hash
	}
	walk := poh.New(advanced)
	if ref.IsTick() {
		return walk.Tick() == ref.Hash
	}
	return walk.Record(entry.HashTransactions(ref.Transactions)) == ref.Hash
}

func saturatingSub1(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return n - 1
}
