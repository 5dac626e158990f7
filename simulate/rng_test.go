package simulate

import "testing"

// TestMixSeed_Distinct: adjacent run indices must map to well-separated
// seeds, and stream 0 must not collapse onto the parent.
func TestMixSeed_Distinct(t *testing.T) {
	const parent = 42
	seen := make(map[uint64]int, 1000)
	for run := 0; run < 1000; run++ {
		s := mixSeed(parent, uint64(run))
		if prev, dup := seen[s]; dup {
			t.Fatalf("mixSeed collision: runs %d and %d both map to %d", prev, run, s)
		}
		seen[s] = run
	}
	if mixSeed(parent, 0) == parent {
		t.Error("mixSeed(parent, 0) must not equal parent")
	}
}

// TestRunRNG_ZeroSeedPolicy: Seed==0 falls back to the fixed default so
// the zero-value Config stays reproducible.
func TestRunRNG_ZeroSeedPolicy(t *testing.T) {
	a := runRNG(0, 3).Uint64()
	b := runRNG(defaultSeed, 3).Uint64()
	if a != b {
		t.Errorf("seed 0 must alias defaultSeed: got %d vs %d", a, b)
	}
}

// TestRunRNG_StreamIndependence: distinct runs yield distinct streams,
// identical runs yield identical streams.
func TestRunRNG_StreamIndependence(t *testing.T) {
	if runRNG(7, 1).Uint64() == runRNG(7, 2).Uint64() {
		t.Error("runs 1 and 2 produced identical first draws")
	}
	if runRNG(7, 5).Uint64() != runRNG(7, 5).Uint64() {
		t.Error("re-deriving the same run stream must reproduce it")
	}
}
