package event

import (
	"crypto/sha256"
	"encoding/binary"
)

const GenesisHashSeed = "HedgeRouter:genesis:v1"

// ChainHasher computes the tamper-evident hash chain over the audit log.
// Not thread-safe — owned by the single goroutine that assigns sequences.
type ChainHasher struct {
	prevHash [32]byte
}

// NewChainHasher initializes with the genesis hash.
func NewChainHasher() *ChainHasher {
	genesis := sha256.Sum256([]byte(GenesisHashSeed))
	return &ChainHasher{
		prevHash: genesis,
	}
}

// ComputeHash calculates event_hash[N] = SHA-256(prev_hash || sequence || payload)
func (h *ChainHasher) ComputeHash(sequence int64, payload []byte) [32]byte {
	hasher := sha256.New()

	hasher.Write(h.prevHash[:])

	var seqBuf [8]byte
	binary.LittleEndian.PutUint64(seqBuf[:], uint64(sequence))
	hasher.Write(seqBuf[:])

	hasher.Write(payload)

	var hash [32]byte
	copy(hash[:], hasher.Sum(nil))

	// Advance the chain tip
	h.prevHash = hash

	return hash
}

// GetPrevHash returns the current chain tip.
func (h *ChainHasher) GetPrevHash() [32]byte {
	return h.prevHash
}
