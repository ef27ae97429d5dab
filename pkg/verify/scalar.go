package verify

import (
	"context"
	"time"

	"github.com/certen/poh-verifier/internal/workerpool"
	"github.com/certen/poh-verifier/pkg/entry"
)

// Scalar is the portable reference backend: it pairs each entry with the
// one before it (the synthetic genesis entry standing in for the first
// pair's predecessor) and verifies every pair in parallel across the
// worker pool.
type Scalar struct {
	Pool *workerpool.Pool
}

// Verify checks that every entry's hash follows from its predecessor,
// starting at startHash.
func (s Scalar) Verify(ctx context.Context, entries []entry.Entry, startHash entry.Hash) (Result, error) {
	start := time.Now()

	pool := s.Pool
	if pool == nil {
		pool = workerpool.Default()
	}

	prevHashes := make([]entry.Hash, len(entries))
	prev := startHash
	for i := range entries {
		prevHashes[i] = prev
		prev = entries[i].Hash
	}

	ok := pool.All(ctx, len(entries), func(i int) bool {
		return entries[i].Verify(prevHashes[i])
	})

	return Result{Verified: ok, DurationMicros: time.Since(start).Microseconds()}, nil
}
