package verify

import (
	"context"
	"time"

	"github.com/certen/poh-verifier/internal/metrics"
	"github.com/certen/poh-verifier/internal/recycler"
	"github.com/certen/poh-verifier/internal/workerpool"
	"github.com/certen/poh-verifier/pkg/entry"
	"github.com/certen/poh-verifier/pkg/poh"
	"github.com/certen/poh-verifier/pkg/verify/native"
)

// Job is an in-flight GPU verification started by StartGPU. The native GPU
// call runs on its own goroutine immediately; Finish blocks until it
// completes and then runs the finalizing tick/record comparison pass.
type Job struct {
	entries   []entry.Entry
	txHashes  []*entry.Hash
	hashes    []byte
	numHashes []uint64
	recyclers recycler.Recyclers
	done      chan gpuOutcome
}

type gpuOutcome struct {
	fatal          bool
	durationMicros int64
}

// StartGPU launches the GPU hash-advance call on its own goroutine and
// precomputes each entry's transaction-hash mixin on the worker pool while
// the GPU runs, mirroring the reference implementation's overlap of device
// work with host-side Merkle hashing. Call Job.Finish to join and verify.
func StartGPU(ctx context.Context, pool *workerpool.Pool, cap native.Capability, entries []entry.Entry, startHash entry.Hash, recyclers recycler.Recyclers) *Job {
	if pool == nil {
		pool = workerpool.Default()
	}

	n := len(entries)
	hashes := recyclers.Hashes.Get(n * entry.HashSize)
	gen := genesis(startHash)
	prevHashesOf(entries, gen, hashes)

	numHashes := recyclers.TickCounts.Get(n)
	for i, e := range entries {
		numHashes[i] = saturatingSub1(e.NumHashes)
	}

	job := &Job{
		entries:   entries,
		hashes:    hashes,
		numHashes: numHashes,
		recyclers: recyclers,
		done:      make(chan gpuOutcome, 1),
	}

	metrics.EntryVerifyNumEntries.Add(float64(n))

	go func() {
		gpuStart := time.Now()
		fatal := cap.VerifyManyGPU(job.hashes, job.numHashes)
		micros := time.Since(gpuStart).Microseconds()
		metrics.EntryVerifyGPUThreadMicros.Observe(float64(micros))
		job.done <- gpuOutcome{fatal: fatal, durationMicros: micros}
	}()

	job.txHashes = precomputeTxHashes(ctx, pool, entries)

	return job
}

// Finish blocks until the GPU call completes, then runs the Go-side
// finalizing comparison (tick or record-with-mixin) for every entry and
// returns whether every lane matched. A non-zero device return code is
// fatal: per spec §7 it panics rather than returning a failed Result.
func (j *Job) Finish(ctx context.Context, pool *workerpool.Pool) Result {
	if pool == nil {
		pool = workerpool.Default()
	}
	start := time.Now()

	outcome := <-j.done
	if outcome.fatal {
		panic("verify: GPU PoH verify many failed")
	}

	ok := pool.All(ctx, len(j.entries), func(i int) bool {
		var lane entry.Hash
		copy(lane[:], j.hashes[i*entry.HashSize:(i+1)*entry.HashSize])
		if j.entries[i].NumHashes == 0 {
			return lane == j.entries[i].Hash
		}
		walk := poh.New(lane)
		if mixin := j.txHashes[i]; mixin != nil {
			return walk.Record(*mixin) == j.entries[i].Hash
		}
		return walk.Tick() == j.entries[i].Hash
	})

	j.recyclers.Hashes.Put(j.hashes)
	j.recyclers.TickCounts.Put(j.numHashes)

	return Result{Verified: ok, DurationMicros: outcome.durationMicros + time.Since(start).Microseconds()}
}

func precomputeTxHashes(ctx context.Context, pool *workerpool.Pool, entries []entry.Entry) []*entry.Hash {
	out := make([]*entry.Hash, len(entries))
	_ = pool.Go(ctx, len(entries), func(_ context.Context, i int) error {
		if !entries[i].IsTick() {
			h := entry.HashTransactions(entries[i].Transactions)
			out[i] = &h
		}
		return nil
	})
	return out
}
