package generator

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Uint64() uint64
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick(r Rand, tokens []string) string {
	return tokens[r.IntN(len(tokens))]
}

// randomHex renders 16 random bytes as 32 lowercase hex characters.
func randomHex(r Rand) string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], r.Uint64())
	binary.BigEndian.PutUint64(b[8:], r.Uint64())
	return hex.EncodeToString(b[:])
}
