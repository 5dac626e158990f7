package simulate

// DaySample is the atomic result cell: one container's simulated state
// on one day of one replicate.
type DaySample struct {
	// Run, Unit and Day locate the cell. Run and Unit are zero-based;
	// Day is the absolute simulated day (StartDay-based).
	Run, Unit, Day int
	// Temperature is the container's storage temperature that day (°C).
	Temperature float64
	// Strain is the container's sampled allelic type.
	Strain string
	// InitialLog10 is the container's detection-limit-floored starting
	// level, log10 MPN/mL.
	InitialLog10 float64
	// Log10N is the simulated log10 population on Day.
	Log10N float64
}

// ResultGrid is the complete (run, unit, day) sample table, laid out
// row-major (run outermost, day innermost). Populated exactly once by
// Run and immutable afterward.
type ResultGrid struct {
	nSim     int
	nUnits   int
	nDay     int
	startDay int
	samples  []DaySample
}

// newGrid allocates an unpopulated grid with the given dimensions.
func newGrid(nSim, nUnits, nDay, startDay int) *ResultGrid {
	return &ResultGrid{
		nSim:     nSim,
		nUnits:   nUnits,
		nDay:     nDay,
		startDay: startDay,
		samples:  make([]DaySample, nSim*nUnits*nDay),
	}
}

// NSim reports the replicate count.
func (g *ResultGrid) NSim() int { return g.nSim }

// NUnits reports containers per replicate.
func (g *ResultGrid) NUnits() int { return g.nUnits }

// NDay reports the simulated day count.
func (g *ResultGrid) NDay() int { return g.nDay }

// StartDay reports the first simulated day.
func (g *ResultGrid) StartDay() int { return g.startDay }

// Len reports the total cell count, nSim × nUnits × nDay.
func (g *ResultGrid) Len() int { return len(g.samples) }

// Samples exposes the backing cell slice in row-major order.
// Callers must treat it as read-only.
func (g *ResultGrid) Samples() []DaySample { return g.samples }

// At returns the cell for zero-based run and unit on absolute day.
// Out-of-range coordinates return ErrCellIndex.
func (g *ResultGrid) At(run, unit, day int) (DaySample, error) {
	d := day - g.startDay
	if run < 0 || run >= g.nSim || unit < 0 || unit >= g.nUnits || d < 0 || d >= g.nDay {
		return DaySample{}, ErrCellIndex
	}

	return g.samples[g.index(run, unit, d)], nil
}

// index maps (run, unit, day-offset) to the flat sample position.
func (g *ResultGrid) index(run, unit, dayOffset int) int {
	return (run*g.nUnits+unit)*g.nDay + dayOffset
}
