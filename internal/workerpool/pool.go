// Package workerpool provides the process-wide bounded-concurrency pool
// shared by every CPU-bound fan-out in the verifier: scalar PoH chaining,
// SIMD chunk dispatch, finalization comparisons, signature verification,
// and transaction-hash precompute. A single pool is installed once and
// reused everywhere rather than spun up per call.
package workerpool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool bounds the number of goroutines doing CPU-bound work at once.
type Pool struct {
	limit int
}

var (
	once    sync.Once
	process *Pool
)

// Default returns the process-wide pool, sized to runtime.GOMAXPROCS(0) on
// first use. Call Init before Default to override the size.
func Default() *Pool {
	once.Do(func() {
		process = New(runtime.GOMAXPROCS(0))
	})
	return process
}

// Init installs the process-wide pool with the given concurrency limit. It
// is a no-op if Default has already been called; callers that want a
// specific size must call Init before the first Default call, typically at
// startup from pkg/config.
func Init(limit int) {
	once.Do(func() {
		process = New(limit)
	})
}

// New creates a standalone pool with the given concurrency limit. limit <= 0
// is treated as 1.
func New(limit int) *Pool {
	if limit <= 0 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Go runs fn for each index in [0, n) across the pool and returns the first
// error. After an error the context passed to fn is canceled, but every
// index is still launched. It blocks until every launched task has returned.
func (p *Pool) Go(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// All runs fn for each index in [0, n) across the pool and reports whether
// every call returned true. Unlike Go, a false result from one call does
// not cancel the others — every index is always evaluated, matching the
// reference implementation's all() semantics over a parallel iterator.
func (p *Pool) All(ctx context.Context, n int, fn func(i int) bool) bool {
	results := make([]bool, n)
	_ = p.Go(ctx, n, func(_ context.Context, i int) error {
		results[i] = fn(i)
		return nil
	})
	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}
