package poh

import (
	"crypto/sha256"
	"testing"
)

func TestAdvanceZeroIsNoop(t *testing.T) {
	start := Hash{1, 2, 3}
	p := New(start)
	if got := p.Advance(0); got != start {
		t.Fatalf("Advance(0) = %x, want %x", got, start)
	}
}

func TestAdvanceMatchesRepeatedSha256(t *testing.T) {
	start := Hash{9}
	p := New(start)
	got := p.Advance(3)

	want := start
	for i := 0; i < 3; i++ {
		want = sha256.Sum256(want[:])
	}
	if got != want {
		t.Fatalf("Advance(3) = %x, want %x", got, want)
	}
}

func TestTickIsOneMorePlainHash(t *testing.T) {
	start := Hash{7}
	p := New(start)
	p.Advance(2)
	got := p.Tick()

	want := start
	for i := 0; i < 3; i++ {
		want = sha256.Sum256(want[:])
	}
	if got != want {
		t.Fatalf("Tick() = %x, want %x", got, want)
	}
}

func TestRecordMixesInDigest(t *testing.T) {
	start := Hash{5}
	mixin := Hash{6}
	p := New(start)
	got := p.Record(mixin)

	var buf [64]byte
	copy(buf[:32], start[:])
	copy(buf[32:], mixin[:])
	want := sha256.Sum256(buf[:])
	if got != want {
		t.Fatalf("Record() = %x, want %x", got, want)
	}
}
