// Package simulate - RNG stream derivation.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical grids across platforms.
//   - Independence: each run draws from its own substream, so results do
//     not depend on worker count or execution order.
//   - Encapsulation: a single derivation point; no time-based sources
//     hidden anywhere.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Every run partition derives its
//     own generator via runRNG; generators are never shared.
package simulate

import "golang.org/x/exp/rand"

// defaultSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// mixSeed mixes the base seed and a run index into a new 64-bit seed
// with a SplitMix64-style avalanche, eliminating correlations between
// adjacent run streams.
//
// Complexity: O(1).
func mixSeed(parent, stream uint64) uint64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// runRNG returns the deterministic generator owned by one run.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func runRNG(seed uint64, run int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(mixSeed(seed, uint64(run))))
}
