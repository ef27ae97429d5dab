// Package entry implements the Proof-of-History entry chain: the unit that
// carries a hash count, the resulting digest, and the transactions observed
// while producing it. Entries cannot be reordered; verifying one recomputes
// its hash from the previous entry's hash and compares.
package entry

import (
	"github.com/certen/poh-verifier/pkg/merkle"
	"github.com/certen/poh-verifier/pkg/poh"
	"github.com/certen/poh-verifier/pkg/transaction"
)

// Hash is the 32-byte digest type shared by the PoH chain, its Merkle mixin,
// and the wire-level entry hash. It is an alias of poh.Hash so hash kernel
// code never needs a conversion between the two.
type Hash = poh.Hash

// HashSize is the width in bytes of a Hash.
const HashSize = poh.HashBytes

// HashTransactions computes the Merkle root over the flattened, ordered
// signatures of transactions. It is the mixin next_hash folds in for a
// transaction entry, and the reason swapping two transactions changes the
// resulting entry hash. An empty transaction list yields the zero hash.
func HashTransactions(transactions []transaction.Transaction) Hash {
	var leaves []merkle.Hash
	for _, tx := range transactions {
		for _, sig := range tx.Signatures {
			leaves = append(leaves, merkle.Hash(sig))
		}
	}
	if len(leaves) == 0 {
		return Hash{}
	}
	return Hash(merkle.RootOf(leaves))
}

// NextHash computes the hash numHashes after startHash. If transactions is
// non-empty, the final iteration mixes in HashTransactions(transactions)
// instead of a plain hash. If numHashes is zero and transactions is empty,
// startHash is returned unchanged.
func NextHash(startHash Hash, numHashes uint64, transactions []transaction.Transaction) Hash {
	if numHashes == 0 && len(transactions) == 0 {
		return startHash
	}

	walk := poh.New(startHash)
	walk.Advance(saturatingSub1(numHashes))
	if len(transactions) == 0 {
		return walk.Tick()
	}
	return walk.Record(HashTransactions(transactions))
}

// saturatingSub1 returns n-1, or 0 if n is 0. NextHash always performs at
// least one finalizing hash iteration (Tick or Record), so a numHashes of 0
// or 1 both advance zero times before that step.
func saturatingSub1(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return n - 1
}
