package sampler

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// StrainPool is the immutable population of observed isolates. Draws are
// uniform with replacement, so duplicated identifiers carry their
// observed frequency weight.
type StrainPool struct {
	isolates []string
}

// NewStrainPool copies the isolate list into an immutable pool.
// Returns ErrEmptyPool for an empty list.
func NewStrainPool(isolates []string) (*StrainPool, error) {
	if len(isolates) == 0 {
		return nil, ErrEmptyPool
	}
	p := &StrainPool{isolates: make([]string, len(isolates))}
	copy(p.isolates, isolates)

	return p, nil
}

// Len reports the number of observed isolates.
func (p *StrainPool) Len() int { return len(p.isolates) }

// Draw returns one isolate's strain identifier, uniformly at random.
func (p *StrainPool) Draw(rng *rand.Rand) string {
	return p.isolates[rng.Intn(len(p.isolates))]
}

// Sampler draws initial conditions under a fixed contamination model.
// Immutable once built; safe for concurrent use as long as each caller
// supplies its own rng.
type Sampler struct {
	pool *StrainPool
	opts Options
}

// New validates opts and returns a Sampler over the given pool.
func New(pool *StrainPool, opts Options) (*Sampler, error) {
	if pool == nil || pool.Len() == 0 {
		return nil, ErrEmptyPool
	}
	if opts.ContainerVolume <= 0 {
		return nil, ErrBadVolume
	}
	if opts.DetectionLimit <= 0 {
		return nil, ErrBadDetectionLimit
	}
	if opts.LogMPNSD < 0 {
		return nil, ErrBadSpread
	}

	return &Sampler{pool: pool, opts: opts}, nil
}

// SampleRun draws one simulation run's initial state for nUnits
// containers.
//
// Draw order is fixed: one Normal(LogMPNMean, LogMPNSD) bulk draw, then
// per container a Poisson count followed by a strain identifier. The
// bulk draw is exponentiated to MPN/mL and scaled by ContainerVolume
// into the shared Poisson expectation; containers share the expectation
// but draw independently.
//
// Complexity: O(nUnits) draws, O(nUnits) space.
func (s *Sampler) SampleRun(nUnits int, rng *rand.Rand) RunDraw {
	logMPN := distuv.Normal{Mu: s.opts.LogMPNMean, Sigma: s.opts.LogMPNSD, Src: rng}.Rand()
	expected := math.Pow(10, logMPN) * s.opts.ContainerVolume

	run := RunDraw{
		LogMPN:   logMPN,
		Expected: expected,
		Units:    make([]UnitDraw, nUnits),
	}
	for u := range run.Units {
		count := s.drawCount(expected, rng)
		run.Units[u] = UnitDraw{
			Count:        count,
			Strain:       s.pool.Draw(rng),
			InitialLog10: s.initialLog10(count),
		}
	}

	return run
}

// drawCount samples a Poisson count with the run's expectation.
// A zero expectation (possible only if the bulk draw underflows to zero)
// deterministically yields zero spores.
func (s *Sampler) drawCount(expected float64, rng *rand.Rand) int {
	if expected <= 0 {
		return 0
	}

	return int(distuv.Poisson{Lambda: expected, Src: rng}.Rand())
}

// initialLog10 converts a container count to log10 concentration,
// flooring to the detection limit so a sterile container never yields -Inf.
func (s *Sampler) initialLog10(count int) float64 {
	conc := float64(count) / s.opts.ContainerVolume
	if conc < s.opts.DetectionLimit {
		conc = s.opts.DetectionLimit
	}

	return math.Log10(conc)
}
