// Package recycler pools the byte and uint64 buffers the GPU verification
// path allocates per call — the hash array handed to the native entry point
// and the per-entry hash-count array — so repeated slice verification does
// not churn the allocator on the hot path.
package recycler

import "sync"

// BytePool recycles []byte buffers keyed by a minimum capacity.
type BytePool struct {
	pool sync.Pool
}

// NewBytePool returns an empty byte buffer pool.
func NewBytePool() *BytePool {
	return &BytePool{pool: sync.Pool{New: func() any { return make([]byte, 0) }}}
}

// Get returns a buffer with length n, reusing a pooled allocation if one of
// sufficient capacity is available.
func (p *BytePool) Get(n int) []byte {
	buf := p.pool.Get().([]byte)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	return buf[:n]
}

// Put returns buf to the pool for reuse.
func (p *BytePool) Put(buf []byte) {
	p.pool.Put(buf[:0]) //nolint:staticcheck // intentionally truncate, not discard capacity
}

// Uint64Pool recycles []uint64 buffers keyed by a minimum capacity.
type Uint64Pool struct {
	pool sync.Pool
}

// NewUint64Pool returns an empty uint64 buffer pool.
func NewUint64Pool() *Uint64Pool {
	return &Uint64Pool{pool: sync.Pool{New: func() any { return make([]uint64, 0) }}}
}

// Get returns a buffer with length n, reusing a pooled allocation if one of
// sufficient capacity is available.
func (p *Uint64Pool) Get(n int) []uint64 {
	buf := p.pool.Get().([]uint64)
	if cap(buf) < n {
		buf = make([]uint64, n)
	}
	return buf[:n]
}

// Put returns buf to the pool for reuse.
func (p *Uint64Pool) Put(buf []uint64) {
	p.pool.Put(buf[:0])
}

// Recyclers bundles the two pools a GPU verification call needs, mirroring
// the reference implementation's VerifyRecyclers grouping.
type Recyclers struct {
	Hashes     *BytePool
	TickCounts *Uint64Pool
}

// NewRecyclers constructs a fresh, empty pair of pools.
func NewRecyclers() Recyclers {
	return Recyclers{Hashes: NewBytePool(), TickCounts: NewUint64Pool()}
}
