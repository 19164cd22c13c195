// Package randutil derives reproducible math/rand/v2 sources from int64 seeds.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Shuffles, tie-breaks and simulation seeds all go through here so that a
// fixed seed replays the same games.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Fork draws a child seed from rng and returns a source seeded with it, so
// independent consumers do not share one stream.
func Fork(rng *rand.Rand) *rand.Rand {
	return New(rng.Int64())
}

// FreshSeed returns a non-deterministic seed for callers that did not pick one.
func FreshSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("randutil: reading entropy: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
