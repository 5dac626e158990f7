package coldchain

import (
	"errors"
	"fmt"
)

// Sentinel errors for cold-chain stage handling.
var (
	// ErrNoStages indicates an empty stage list.
	ErrNoStages = errors.New("coldchain: at least one temperature stage is required")

	// ErrStageCoverage indicates the stages do not exactly and contiguously
	// cover the simulated day range.
	ErrStageCoverage = errors.New("coldchain: stages must contiguously cover the day range")

	// ErrNegativeSD indicates a stage with a negative temperature standard deviation.
	ErrNegativeSD = errors.New("coldchain: stage temperature standard deviation must be non-negative")
)

// Stage is one cold-chain segment: an inclusive day interval and the
// Gaussian parameters of its storage temperature.
type Stage struct {
	// BeginDay and EndDay bound the segment, both inclusive.
	BeginDay, EndDay int
	// MeanTemp and SDTemp parameterize the per-container Normal draw (°C).
	MeanTemp, SDTemp float64
}

// CoverageError pinpoints a stage-coverage violation.
type CoverageError struct {
	// Index is the position of the offending stage in the input list,
	// or -1 when the defect concerns the range as a whole.
	Index int
	// Detail describes the specific violation (gap, overlap, bounds).
	Detail string
}

// Error formats the stage index and violation detail.
func (e *CoverageError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("coldchain: stage coverage: %s", e.Detail)
	}

	return fmt.Sprintf("coldchain: stage coverage: stage %d: %s", e.Index, e.Detail)
}

// Unwrap ties CoverageError to the ErrStageCoverage sentinel.
func (e *CoverageError) Unwrap() error { return ErrStageCoverage }
