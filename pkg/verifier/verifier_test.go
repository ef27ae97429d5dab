package verifier

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/certen/poh-verifier/pkg/entry"
	"github.com/certen/poh-verifier/pkg/transaction"
)

func TestVerifyAcceptsValidTickChain(t *testing.T) {
	start := entry.Hash{}
	entries := entry.CreateTicks(15, 4, start)

	ok := Verify(context.Background(), entries, start, Options{})
	if !ok {
		t.Fatalf("Verify() = false, want true")
	}
}

func TestVerifyRejectsTamperedHashChain(t *testing.T) {
	start := entry.Hash{}
	entries := entry.CreateTicks(15, 4, start)
	entries[7].Hash = entry.Hash{0x42}

	ok := Verify(context.Background(), entries, start, Options{})
	if ok {
		t.Fatalf("Verify() = true, want false for a tampered chain")
	}
}

func TestVerifyRejectsBadSignatureBeforeCheckingHashes(t *testing.T) {
	start := entry.Hash{}
	tx := signedTx(t, "payload")
	e := entry.New(start, 0, []transaction.Transaction{tx})
	e.Transactions[0].Signatures[0] = [ed25519.SignatureSize]byte{}

	ok := Verify(context.Background(), []entry.Entry{e}, start, Options{})
	if ok {
		t.Fatalf("Verify() = true, want false for a cleared signature")
	}
}

func TestStartVerifyReturnsTerminalStateOnCPU(t *testing.T) {
	start := entry.Hash{}
	entries := entry.CreateTicks(5, 2, start)

	state := StartVerify(context.Background(), entries, start, Options{})
	if state.Status() == Pending {
		t.Fatalf("StartVerify without a GPU capability should not return Pending")
	}
	if state.Status() != Success {
		t.Fatalf("Status() = %v, want Success", state.Status())
	}
}

func TestFinishVerifyOnTerminalStateIsNoop(t *testing.T) {
	state := &State{status: Success}
	if !state.FinishVerify(context.Background(), nil) {
		t.Fatalf("FinishVerify on a Success state should return true")
	}
	state2 := &State{status: Failure}
	if state2.FinishVerify(context.Background(), nil) {
		t.Fatalf("FinishVerify on a Failure state should return false")
	}
}

func TestVerifyUsesGPUPathWhenCapabilityAvailable(t *testing.T) {
	start := entry.Hash{}
	entries := entry.CreateTicks(8, 3, start)

	ok := Verify(context.Background(), entries, start, Options{NativeCap: fakeCapability{gpuOK: true}})
	if !ok {
		t.Fatalf("Verify() over the GPU path = false, want true")
	}
}

func TestVerifyGPUPathRejectsTamperedChain(t *testing.T) {
	start := entry.Hash{}
	entries := entry.CreateTicks(8, 3, start)
	entries[4].Hash = entry.Hash{0x99}

	ok := Verify(context.Background(), entries, start, Options{NativeCap: fakeCapability{gpuOK: true}})
	if ok {
		t.Fatalf("Verify() over the GPU path = true, want false for a tampered chain")
	}
}

func TestStartVerifyReturnsPendingForGPU(t *testing.T) {
	start := entry.Hash{}
	entries := entry.CreateTicks(8, 3, start)

	state := StartVerify(context.Background(), entries, start, Options{NativeCap: fakeCapability{gpuOK: true}})
	if state.Status() != Pending {
		t.Fatalf("Status() = %v, want Pending when a GPU capability is available", state.Status())
	}
	if !state.FinishVerify(context.Background(), nil) {
		t.Fatalf("FinishVerify() = false, want true")
	}
}

func signedTx(t *testing.T, msg string) transaction.Transaction {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	var sig [ed25519.SignatureSize]byte
	copy(sig[:], ed25519.Sign(priv, []byte(msg)))
	return transaction.Transaction{
		Message:    []byte(msg),
		Signatures: [][ed25519.SignatureSize]byte{sig},
		SignerKeys: []ed25519.PublicKey{pub},
	}
}
