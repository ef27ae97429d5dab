package verifier

import (
	"context"

	"github.com/certen/poh-verifier/internal/workerpool"
	"github.com/certen/poh-verifier/pkg/entry"
)

// VerifyTransactionSignatures checks every transaction in every entry:
// Verify() must succeed, and when secp256k1Enabled, VerifyPrecompiles()
// must also succeed. Entries are checked concurrently on pool, the
// transactions of one entry in order; a single failure fails the whole slice.
func VerifyTransactionSignatures(ctx context.Context, pool *workerpool.Pool, entries []entry.Entry, secp256k1Enabled bool) bool {
	return pool.All(ctx, len(entries), func(i int) bool {
		for j := range entries[i].Transactions {
			tx := &entries[i].Transactions[j]
			if err := tx.Verify(); err != nil {
				return false
			}
			if secp256k1Enabled {
				if err := tx.VerifyPrecompiles(); err != nil {
					return false
				}
			}
		}
		return true
	})
}
