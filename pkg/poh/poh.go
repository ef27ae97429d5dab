// Package poh implements the stateful Proof-of-History hash walk: a single
// running SHA-256 digest that is advanced one iteration at a time, optionally
// mixing in external data at a given step.
//
// Poh is the primitive the entry hash kernel (pkg/entry) is built on top of.
// Its semantics must match the native SIMD/GPU implementations bit-for-bit:
// a plain step is hash = SHA256(hash); a mixin step is hash = SHA256(hash ||
// mixin).
package poh

import "crypto/sha256"

// HashBytes is the width of a PoH digest.
const HashBytes = 32

// Hash is a 32-byte PoH digest.
type Hash [HashBytes]byte

// Poh carries the current digest of an in-progress hash walk.
type Poh struct {
	hash Hash
}

// New starts a hash walk seeded at start.
func New(start Hash) *Poh {
	return &Poh{hash: start}
}

// Hash returns the current digest without advancing the walk.
func (p *Poh) Hash() Hash {
	return p.hash
}

// Advance performs n plain hash iterations and returns the resulting digest.
// Advance(0) is a no-op that returns the current digest.
func (p *Poh) Advance(n uint64) Hash {
	for i := uint64(0); i < n; i++ {
		p.hash = sha256.Sum256(p.hash[:])
	}
	return p.hash
}

// Tick performs one more plain hash iteration with no mixin and returns the
// resulting digest. It is the finalizing step for a tick entry.
func (p *Poh) Tick() Hash {
	p.hash = sha256.Sum256(p.hash[:])
	return p.hash
}

// Record performs one hash iteration mixing in a 32-byte digest and returns
// the resulting digest. It is the finalizing step for a transaction entry.
func (p *Poh) Record(mixin Hash) Hash {
	var buf [2 * HashBytes]byte
	copy(buf[:HashBytes], p.hash[:])
	copy(buf[HashBytes:], mixin[:])
	p.hash = sha256.Sum256(buf[:])
	return p.hash
}
