package entry

// VerifyTickHashCount checks that every tick entry in entries lands on an
// exact multiple of hashesPerTick, carrying the running count across calls
// via tickHashCount so a caller can check successive slices of the same
// chain. Hashing is considered disabled when hashesPerTick is zero, in which
// case verification trivially succeeds.
func VerifyTickHashCount(entries []Entry, tickHashCount *uint64, hashesPerTick uint64) bool {
	if hashesPerTick == 0 {
		return true
	}
	for i := range entries {
		*tickHashCount += entries[i].NumHashes
		if entries[i].IsTick() {
			if *tickHashCount != hashesPerTick {
				return false
			}
			*tickHashCount = 0
		}
	}
	// Strict: a trailing run that reaches hashesPerTick without a tick is invalid.
	return *tickHashCount < hashesPerTick
}

// TickCount returns the number of tick (transaction-free) entries in entries.
func TickCount(entries []Entry) uint64 {
	var n uint64
	for i := range entries {
		if entries[i].IsTick() {
			n++
		}
	}
	return n
}

// VerifyChain verifies that every entry's hash follows from the one before
// it, starting from startHash. It is the sequential reference
// implementation the scalar and SIMD/GPU verify backends must agree with.
func VerifyChain(entries []Entry, startHash Hash) bool {
	prev := startHash
	for i := range entries {
		if !entries[i].Verify(prev) {
			return false
		}
		prev = entries[i].Hash
	}
	return true
}
