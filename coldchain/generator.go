package coldchain

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ValidateStages verifies that stages, in order, exactly and contiguously
// cover the inclusive day range [startDay, startDay+nDay-1].
//
// Checks, in order per stage: non-negative SDTemp, non-inverted interval,
// exact abutment with the previous stage (no gap, no overlap). The first
// stage must begin at startDay and the last must end at startDay+nDay-1.
//
// Returns ErrNoStages, ErrNegativeSD, or a *CoverageError wrapping
// ErrStageCoverage.
//
// Complexity: O(S).
func ValidateStages(stages []Stage, startDay, nDay int) error {
	if len(stages) == 0 {
		return ErrNoStages
	}
	if nDay <= 0 {
		return &CoverageError{Index: -1, Detail: fmt.Sprintf("day range must be positive, got nDay=%d", nDay)}
	}

	endDay := startDay + nDay - 1
	next := startDay // day the current stage must begin on
	for i, s := range stages {
		if s.SDTemp < 0 {
			return fmt.Errorf("%w: stage %d has sd %g", ErrNegativeSD, i, s.SDTemp)
		}
		if s.EndDay < s.BeginDay {
			return &CoverageError{Index: i, Detail: fmt.Sprintf("inverted interval [%d,%d]", s.BeginDay, s.EndDay)}
		}
		if s.BeginDay > next {
			return &CoverageError{Index: i, Detail: fmt.Sprintf("gap: days %d..%d uncovered", next, s.BeginDay-1)}
		}
		if s.BeginDay < next {
			return &CoverageError{Index: i, Detail: fmt.Sprintf("overlap: day %d already covered", s.BeginDay)}
		}
		next = s.EndDay + 1
	}
	if next != endDay+1 {
		if next <= endDay {
			return &CoverageError{Index: -1, Detail: fmt.Sprintf("gap: days %d..%d uncovered", next, endDay)}
		}

		return &CoverageError{Index: -1, Detail: fmt.Sprintf("stages extend past final day %d", endDay)}
	}

	return nil
}

// Generator produces per-container temperature trajectories from a
// validated stage list. Immutable once built; safe for concurrent use as
// long as each caller supplies its own rng.
type Generator struct {
	stages   []Stage
	startDay int
	nDay     int
}

// NewGenerator validates stages against [startDay, startDay+nDay-1] and
// returns a trajectory generator over that range.
func NewGenerator(stages []Stage, startDay, nDay int) (*Generator, error) {
	if err := ValidateStages(stages, startDay, nDay); err != nil {
		return nil, err
	}
	g := &Generator{
		stages:   make([]Stage, len(stages)),
		startDay: startDay,
		nDay:     nDay,
	}
	copy(g.stages, stages)

	return g, nil
}

// NDay reports the trajectory length in days.
func (g *Generator) NDay() int { return g.nDay }

// StartDay reports the first simulated day.
func (g *Generator) StartDay() int { return g.startDay }

// Trajectory draws one container's temperature history: a single
// Normal(MeanTemp, SDTemp) draw per stage, replicated across the stage's
// days. The returned slice has length NDay, index 0 = StartDay.
//
// Exactly len(stages) values are consumed from rng per call.
//
// Complexity: O(S + D) time, O(D) space.
func (g *Generator) Trajectory(rng *rand.Rand) []float64 {
	traj := make([]float64, g.nDay)
	for _, s := range g.stages {
		temp := distuv.Normal{Mu: s.MeanTemp, Sigma: s.SDTemp, Src: rng}.Rand()
		for day := s.BeginDay; day <= s.EndDay; day++ {
			traj[day-g.startDay] = temp
		}
	}

	return traj
}
