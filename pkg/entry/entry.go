package entry

import (
	"encoding/binary"
	"fmt"

	"github.com/certen/poh-verifier/pkg/transaction"
)

// Entry is one link of the Proof-of-History chain. NumHashes is the number
// of hash iterations performed since the previous entry's hash; Hash is the
// result of hashing the previous entry's hash NumHashes times, mixing in the
// transactions' Merkle root on the final iteration if any are present.
type Entry struct {
	NumHashes    uint64
	Hash         Hash
	Transactions []transaction.Transaction
}

// IsTick reports whether the entry carries no transactions.
func (e *Entry) IsTick() bool {
	return len(e.Transactions) == 0
}

// New creates the entry NumHashes after prevHash. If numHashes is zero but
// transactions is non-empty, numHashes is silently promoted to 1 — a zero
// hash count cannot carry a transaction mixin.
func New(prevHash Hash, numHashes uint64, transactions []transaction.Transaction) Entry {
	if numHashes == 0 && len(transactions) != 0 {
		numHashes = 1
	}
	return Entry{
		NumHashes:    numHashes,
		Hash:         NextHash(prevHash, numHashes, transactions),
		Transactions: transactions,
	}
}

// NewMut behaves like New but also advances the caller's running hash and
// resets its hash counter, the pattern a streaming entry producer uses to
// build a chain one entry at a time.
func NewMut(startHash *Hash, numHashes *uint64, transactions []transaction.Transaction) Entry {
	e := New(*startHash, *numHashes, transactions)
	*startHash = e.Hash
	*numHashes = 0
	return e
}

// Next creates the next tick or transaction entry numHashes after prevHash.
// Unlike New, it does not auto-correct: it panics if numHashes is zero while
// transactions is non-empty, since that combination can never produce a
// valid hash.
func Next(prevHash Hash, numHashes uint64, transactions []transaction.Transaction) Entry {
	if numHashes == 0 && len(transactions) != 0 {
		panic("entry: numHashes must be > 0 when transactions is non-empty")
	}
	return Entry{
		NumHashes:    numHashes,
		Hash:         NextHash(prevHash, numHashes, transactions),
		Transactions: transactions,
	}
}

// Verify reports whether e.Hash is the result of hashing startHash
// e.NumHashes times, mixing in e.Transactions on the final iteration.
func (e *Entry) Verify(startHash Hash) bool {
	return e.Hash == NextHash(startHash, e.NumHashes, e.Transactions)
}

// MarshalBinary encodes the entry as: NumHashes (8 bytes, little-endian),
// Hash (32 bytes), transaction count (4 bytes, little-endian), then each
// transaction's message length-prefixed, message bytes, signature count,
// and raw signature bytes. Signer keys and precompiles are not part of the
// wire format; they are reconstructed by the caller from the message.
func (e *Entry) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 8+32+4)
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], e.NumHashes)
	buf = append(buf, hdr[:]...)
	buf = append(buf, e.Hash[:]...)

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(e.Transactions)))
	buf = append(buf, count[:]...)

	for _, tx := range e.Transactions {
		var msgLen [4]byte
		binary.LittleEndian.PutUint32(msgLen[:], uint32(len(tx.Message)))
		buf = append(buf, msgLen[:]...)
		buf = append(buf, tx.Message...)

		var sigCount [4]byte
		binary.LittleEndian.PutUint32(sigCount[:], uint32(len(tx.Signatures)))
		buf = append(buf, sigCount[:]...)
		for _, sig := range tx.Signatures {
			buf = append(buf, sig[:]...)
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes an entry produced by MarshalBinary. Transaction
// signer keys and precompiles are left empty; callers that need signature
// verification must repopulate them from application context.
func (e *Entry) UnmarshalBinary(data []byte) error {
	const headerLen = 8 + 32 + 4
	if len(data) < headerLen {
		return fmt.Errorf("entry: truncated header, got %d bytes", len(data))
	}
	e.NumHashes = binary.LittleEndian.Uint64(data[:8])
	copy(e.Hash[:], data[8:40])
	count := binary.LittleEndian.Uint32(data[40:44])

	off := headerLen
	txs := make([]transaction.Transaction, 0, count)
	for i := uint32(0); i < count; i++ {
		if off+4 > len(data) {
			return fmt.Errorf("entry: truncated message length at transaction %d", i)
		}
		msgLen := int(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
		if off+msgLen > len(data) {
			return fmt.Errorf("entry: truncated message at transaction %d", i)
		}
		msg := make([]byte, msgLen)
		copy(msg, data[off:off+msgLen])
		off += msgLen

		if off+4 > len(data) {
			return fmt.Errorf("entry: truncated signature count at transaction %d", i)
		}
		sigCount := int(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
		sigs := make([][transaction.SignatureSize]byte, sigCount)
		for j := 0; j < sigCount; j++ {
			if off+transaction.SignatureSize > len(data) {
				return fmt.Errorf("entry: truncated signature %d at transaction %d", j, i)
			}
			copy(sigs[j][:], data[off:off+transaction.SignatureSize])
			off += transaction.SignatureSize
		}
		txs = append(txs, transaction.Transaction{Message: msg, Signatures: sigs})
	}
	e.Transactions = txs
	return nil
}
