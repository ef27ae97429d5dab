package entry

import "math/rand"

// CreateTicks builds numTicks consecutive tick entries (no transactions),
// each hashesPerTick after the last, starting from hash. It is the way a
// leader pads a slot with pure PoH ticks between transaction entries.
func CreateTicks(numTicks uint64, hashesPerTick uint64, hash Hash) []Entry {
	ticks := make([]Entry, 0, numTicks)
	for i := uint64(0); i < numTicks; i++ {
		numHashes := hashesPerTick
		tick := NewMut(&hash, &numHashes, nil)
		ticks = append(ticks, tick)
	}
	return ticks
}

// CreateRandomTicks builds numTicks tick entries whose hash counts are drawn
// uniformly from [1, maxHashesPerTick). It is used to synthesize PoH traffic
// for fuzz and load testing, not for production tick generation.
func CreateRandomTicks(numTicks uint64, maxHashesPerTick uint64, hash Hash, rng *rand.Rand) []Entry {
	ticks := make([]Entry, 0, numTicks)
	for i := uint64(0); i < numTicks; i++ {
		numHashes := uint64(1)
		if maxHashesPerTick > 1 {
			numHashes = 1 + uint64(rng.Int63n(int64(maxHashesPerTick-1)))
		}
		tick := NewMut(&hash, &numHashes, nil)
		ticks = append(ticks, tick)
	}
	return ticks
}
