package sampler

import "errors"

// Sentinel errors for initial-condition sampling.
var (
	// ErrEmptyPool indicates a strain pool with no isolates.
	ErrEmptyPool = errors.New("sampler: strain pool must contain at least one isolate")

	// ErrBadVolume indicates a non-positive container volume.
	ErrBadVolume = errors.New("sampler: container volume must be positive")

	// ErrBadDetectionLimit indicates a non-positive detection-limit floor.
	ErrBadDetectionLimit = errors.New("sampler: detection limit must be positive")

	// ErrBadSpread indicates a negative logMPN standard deviation.
	ErrBadSpread = errors.New("sampler: logMPN standard deviation must be non-negative")
)

// Defaults for the contamination model. Volume is a US half-gallon in mL;
// the detection limit sits well below the concentration of a single spore
// in one container, so flooring never masks a real count.
const (
	// DefaultContainerVolume is the filled container volume in mL.
	DefaultContainerVolume = 1892.5
	// DefaultDetectionLimit is the concentration floor (MPN/mL) applied
	// before taking log10 of a zero count.
	DefaultDetectionLimit = 1e-5
	// DefaultLogMPNMean and DefaultLogMPNSD parameterize the bulk-tank
	// log10(MPN/mL) Normal draw.
	DefaultLogMPNMean = -0.72
	DefaultLogMPNSD   = 0.99
)

// Options configures the contamination model.
type Options struct {
	// LogMPNMean and LogMPNSD parameterize the per-run Normal draw of
	// bulk-tank log10(MPN/mL).
	LogMPNMean float64
	LogMPNSD   float64
	// ContainerVolume (mL) scales MPN/mL to an expected per-container count
	// and converts a sampled count back to a concentration.
	ContainerVolume float64
	// DetectionLimit (MPN/mL) floors a zero concentration before log10.
	DetectionLimit float64
}

// DefaultOptions returns the half-gallon fluid-milk contamination model.
func DefaultOptions() Options {
	return Options{
		LogMPNMean:      DefaultLogMPNMean,
		LogMPNSD:        DefaultLogMPNSD,
		ContainerVolume: DefaultContainerVolume,
		DetectionLimit:  DefaultDetectionLimit,
	}
}

// UnitDraw is one container's sampled initial condition.
type UnitDraw struct {
	// Count is the sampled number of spores in the container.
	Count int
	// Strain is the sampled allelic-type identifier.
	Strain string
	// InitialLog10 is log10 of the container's starting concentration
	// (MPN/mL), detection-limit floored.
	InitialLog10 float64
}

// RunDraw is one simulation run's sampled state: the bulk-tank level and
// every container's derived initial condition.
type RunDraw struct {
	// LogMPN is the run's bulk-tank log10(MPN/mL) draw.
	LogMPN float64
	// Expected is the per-container expected count implied by LogMPN.
	Expected float64
	// Units holds one draw per container, in container order.
	Units []UnitDraw
}
