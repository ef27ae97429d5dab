// Package transaction provides the minimal transaction model the entry
// chain embeds: a signed message plus the signature data the PoH hash kernel
// folds into the chain and the verifier checks before ever touching a hash.
//
// Transaction-signature cryptography is treated by the wider spec as an
// external collaborator; this package is the concrete stand-in for it, using
// Ed25519 for the primary signer set and an optional secp256k1 "precompile"
// check modeled on Solana's secp256k1 native program.
package transaction

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureSize is the width of an Ed25519 signature.
const SignatureSize = ed25519.SignatureSize

// ErrNoSignatures is returned when a transaction has no signatures to verify.
var ErrNoSignatures = errors.New("transaction: no signatures present")

// Transaction is a signed message carried by an entry.
//
// Signatures and SignerKeys are parallel slices: Signatures[i] must verify
// against SignerKeys[i] over Message. Order matters for hash_transactions
// (pkg/entry) — it is the basis of the entry's anti-reorder defense.
type Transaction struct {
	Message     []byte
	Signatures  [][ed25519.SignatureSize]byte
	SignerKeys  []ed25519.PublicKey
	Precompiles []Secp256k1Precompile
}

// Secp256k1Precompile models one secp256k1 signature-verification
// instruction embedded in the transaction, analogous to Solana's secp256k1
// native program: it asserts that Signature recovers to ExpectedAddress over
// MessageHash.
type Secp256k1Precompile struct {
	MessageHash     [32]byte
	Signature       [65]byte // r(32) || s(32) || v(1), v in {0,1}
	ExpectedAddress [20]byte
}

// Verify checks every Ed25519 signature against its signer key and the
// transaction message. It returns an error naming the first signature that
// fails, or ErrNoSignatures if there is nothing to check.
func (tx *Transaction) Verify() error {
	if len(tx.Signatures) == 0 {
		return ErrNoSignatures
	}
	if len(tx.Signatures) != len(tx.SignerKeys) {
		return fmt.Errorf("transaction: %d signatures but %d signer keys", len(tx.Signatures), len(tx.SignerKeys))
	}
	for i, sig := range tx.Signatures {
		key := tx.SignerKeys[i]
		if len(key) != ed25519.PublicKeySize {
			return fmt.Errorf("transaction: signer %d has invalid key size %d", i, len(key))
		}
		if !ed25519.Verify(key, tx.Message, sig[:]) {
			return fmt.Errorf("transaction: signature %d failed verification", i)
		}
	}
	return nil
}

// VerifyPrecompiles recovers the secp256k1 signer for every embedded
// precompile instruction and checks it against the expected address. An
// empty Precompiles list trivially succeeds.
func (tx *Transaction) VerifyPrecompiles() error {
	for i, pc := range tx.Precompiles {
		pub, err := crypto.SigToPub(pc.MessageHash[:], pc.Signature[:])
		if err != nil {
			return fmt.Errorf("transaction: precompile %d signature recovery failed: %w", i, err)
		}
		addr := [20]byte(crypto.PubkeyToAddress(*pub))
		if addr != pc.ExpectedAddress {
			return fmt.Errorf("transaction: precompile %d recovered address %x, want %x", i, addr, pc.ExpectedAddress)
		}
	}
	return nil
}
