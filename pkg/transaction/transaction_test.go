package transaction

import (
	"crypto/ed25519"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func newSignedTransaction(t *testing.T, msg []byte) *Transaction {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	var sig [ed25519.SignatureSize]byte
	copy(sig[:], ed25519.Sign(priv, msg))
	return &Transaction{
		Message:    msg,
		Signatures: [][ed25519.SignatureSize]byte{sig},
		SignerKeys: []ed25519.PublicKey{pub},
	}
}

func TestVerifySucceedsForValidSignature(t *testing.T) {
	tx := newSignedTransaction(t, []byte("transfer 1"))
	if err := tx.Verify(); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestVerifyFailsWhenSignatureCleared(t *testing.T) {
	tx := newSignedTransaction(t, []byte("transfer 1"))
	tx.Signatures[0] = [ed25519.SignatureSize]byte{}
	if err := tx.Verify(); err == nil {
		t.Fatalf("Verify() = nil, want error for cleared signature")
	}
}

func TestVerifyFailsOnTruncatedSignatureSet(t *testing.T) {
	tx := newSignedTransaction(t, []byte("transfer 1"))
	tx.Signatures = tx.Signatures[:0]
	if err := tx.Verify(); err != ErrNoSignatures {
		t.Fatalf("Verify() = %v, want ErrNoSignatures", err)
	}
}

func TestVerifyPrecompilesRoundTrip(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	var msgHash [32]byte
	copy(msgHash[:], crypto.Keccak256([]byte("precompile payload")))

	sig, err := crypto.Sign(msgHash[:], priv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	var sigArr [65]byte
	copy(sigArr[:], sig)

	addr := crypto.PubkeyToAddress(priv.PublicKey)
	tx := &Transaction{
		Precompiles: []Secp256k1Precompile{{
			MessageHash:     msgHash,
			Signature:       sigArr,
			ExpectedAddress: [20]byte(addr),
		}},
	}
	if err := tx.VerifyPrecompiles(); err != nil {
		t.Fatalf("VerifyPrecompiles() = %v, want nil", err)
	}

	tx.Precompiles[0].ExpectedAddress[0] ^= 0xFF
	if err := tx.VerifyPrecompiles(); err == nil {
		t.Fatalf("VerifyPrecompiles() = nil, want error for mismatched address")
	}
}
