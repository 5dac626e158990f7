package simulate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sporesim/kinetics"
	"github.com/katalvlaran/sporesim/sampler"
)

// Sentinel errors for simulation configuration and grid access.
var (
	// ErrUnknownStrain indicates a sampled strain with no parameter record.
	ErrUnknownStrain = errors.New("simulate: strain absent from growth-parameter table")

	// ErrNoParams indicates an empty growth-parameter table.
	ErrNoParams = errors.New("simulate: growth-parameter table is empty")

	// ErrBadReplicates indicates a non-positive replicate count.
	ErrBadReplicates = errors.New("simulate: nSim must be positive")

	// ErrBadUnits indicates a non-positive containers-per-run count.
	ErrBadUnits = errors.New("simulate: nHalfGal must be positive")

	// ErrBadDays indicates a non-positive simulated day count.
	ErrBadDays = errors.New("simulate: nDay must be positive")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("simulate: workers must be non-negative")

	// ErrCellIndex indicates a grid access outside (run, unit, day) bounds.
	ErrCellIndex = errors.New("simulate: grid cell index out of range")
)

// UnknownStrainError reports the strain that failed parameter lookup.
type UnknownStrainError struct {
	// Strain is the sampled identifier with no table record.
	Strain string
}

// Error names the offending strain identifier.
func (e *UnknownStrainError) Error() string {
	return fmt.Sprintf("simulate: strain %q absent from growth-parameter table", e.Strain)
}

// Unwrap ties UnknownStrainError to the ErrUnknownStrain sentinel.
func (e *UnknownStrainError) Unwrap() error { return ErrUnknownStrain }

// Config is the engine's full configuration surface.
type Config struct {
	// Seed drives every random draw; 0 selects a fixed default so the
	// zero value stays reproducible.
	Seed uint64
	// NSim is the number of Monte Carlo replicates (runs).
	NSim int
	// NHalfGal is the number of containers per run.
	NHalfGal int
	// NDay and StartDay define the inclusive simulated day range
	// [StartDay, StartDay+NDay-1].
	NDay     int
	StartDay int
	// Model selects the growth curve (buchanan, gompertz, baranyi).
	Model kinetics.Model
	// RefTemp is the temperature the parameter table was measured at;
	// TNot is the square-root model's minimum growth temperature.
	RefTemp float64
	TNot    float64
	// Bulk is the contamination model for initial-condition sampling.
	Bulk sampler.Options
	// Workers caps the number of concurrent run partitions; 0 or 1 runs
	// sequentially. Results do not depend on this value.
	Workers int
}

// DefaultConfig returns the baseline half-gallon shelf-life scenario:
// 1000 replicates of 10 containers over days 1..24, Buchanan growth.
func DefaultConfig() Config {
	return Config{
		Seed:     1,
		NSim:     1000,
		NHalfGal: 10,
		NDay:     24,
		StartDay: 1,
		Model:    kinetics.ModelBuchanan,
		RefTemp:  kinetics.DefaultRefTemp,
		TNot:     kinetics.DefaultTNot,
		Bulk:     sampler.DefaultOptions(),
		Workers:  1,
	}
}

// validate rejects nonsensical dimensions and a degenerate reference
// temperature before any sampling work.
func (c Config) validate() error {
	if c.NSim <= 0 {
		return fmt.Errorf("%w, got %d", ErrBadReplicates, c.NSim)
	}
	if c.NHalfGal <= 0 {
		return fmt.Errorf("%w, got %d", ErrBadUnits, c.NHalfGal)
	}
	if c.NDay <= 0 {
		return fmt.Errorf("%w, got %d", ErrBadDays, c.NDay)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w, got %d", ErrBadWorkers, c.Workers)
	}
	if c.RefTemp == c.TNot {
		return &kinetics.TempError{Temp: c.RefTemp, TNot: c.TNot}
	}

	return nil
}
