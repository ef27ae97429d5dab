// Package verify implements the three PoH slice-verification backends:
// scalar, wide-SIMD (AVX2/AVX-512), and GPU. Each backend answers the same
// question — does every entry's hash follow from the one before it,
// starting at a caller-supplied hash — using a different execution
// strategy chosen by pkg/dispatch.
package verify

import (
	"context"

	"github.com/certen/poh-verifier/pkg/entry"
)

// genesis synthesizes the zero-transaction sentinel entry the reference
// implementation pairs with startHash so the first real entry can be
// verified the same way as every other: against the entry immediately
// before it in a (genesis, e0), (e0, e1), ... pair stream.
func genesis(startHash entry.Hash) entry.Entry {
	return entry.Entry{NumHashes: 0, Hash: startHash}
}

// Result is the outcome of a synchronous (scalar or SIMD) backend run.
type Result struct {
	Verified bool
	// DurationMicros is the wall-clock time the hash-chain check took.
	DurationMicros int64
}

// Backend is implemented by the scalar and SIMD verification paths. GPU
// verification does not implement Backend because it is asynchronous — see
// StartGPU / Job.
type Backend interface {
	Verify(ctx context.Context, entries []entry.Entry, startHash entry.Hash) (Result, error)
}
