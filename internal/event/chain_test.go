package event_test

import (
	"crypto/sha256"
	"testing"

	"HedgeRouter/internal/event"
)

// ============================================================================
// Test: audit hash chain
// ============================================================================

func TestChainHasher_StartsAtGenesis(t *testing.T) {
	h := event.NewChainHasher()

	want := sha256.Sum256([]byte(event.GenesisHashSeed))
	if h.GetPrevHash() != want {
		t.Error("fresh hasher tip is not the genesis hash")
	}
}

func TestChainHasher_AdvancesTip(t *testing.T) {
	h := event.NewChainHasher()

	first := h.ComputeHash(0, []byte(`{"a":1}`))
	if h.GetPrevHash() != first {
		t.Error("tip did not advance to the first event's hash")
	}

	second := h.ComputeHash(1, []byte(`{"b":2}`))
	if second == first {
		t.Error("consecutive events produced identical hashes")
	}
	if h.GetPrevHash() != second {
		t.Error("tip did not advance to the second event's hash")
	}
}

func TestChainHasher_Deterministic(t *testing.T) {
	a := event.NewChainHasher()
	b := event.NewChainHasher()

	payloads := [][]byte{[]byte(`{"a":1}`), []byte(`{"b":2}`), []byte(`{"c":3}`)}
	for i, p := range payloads {
		ha := a.ComputeHash(int64(i), p)
		hb := b.ComputeHash(int64(i), p)
		if ha != hb {
			t.Fatalf("hash mismatch at sequence %d", i)
		}
	}
}

func TestChainHasher_SequenceBindsHash(t *testing.T) {
	a := event.NewChainHasher()
	b := event.NewChainHasher()

	payload := []byte(`{"a":1}`)
	if a.ComputeHash(0, payload) == b.ComputeHash(1, payload) {
		t.Error("same payload at different sequences hashed identically")
	}
}

func TestChainHasher_HistoryBindsHash(t *testing.T) {
	// The same (sequence, payload) must hash differently under a different
	// predecessor, otherwise a spliced history would verify.
	a := event.NewChainHasher()
	b := event.NewChainHasher()

	a.ComputeHash(0, []byte(`{"a":1}`))
	b.ComputeHash(0, []byte(`{"tampered":true}`))

	if a.ComputeHash(1, []byte(`{"b":2}`)) == b.ComputeHash(1, []byte(`{"b":2}`)) {
		t.Error("diverged histories produced the same hash")
	}
}
