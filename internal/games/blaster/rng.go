package blaster

import (
	"math/rand"
	"time"
)

// RNG is the randomness the simulation draws on. *rand.Rand satisfies it,
// and tests supply scripted sequences.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// NewRNG returns a deterministic generator for the given seed.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
}

// Clock reports the current wall-clock time. Only the movement gate reads it.
type Clock func() time.Time
