package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sporesim/simulate"
)

// DayStat summarizes one simulated day across every (run, unit) pair.
type DayStat struct {
	// Day is the absolute simulated day.
	Day int
	// MeanLog10N is the mean simulated log10 count.
	MeanLog10N float64
	// PctOverThreshold is the percentage of containers at or above the
	// spoilage threshold, in [0, 100].
	PctOverThreshold float64
}

// Summarize computes the per-day statistics of a populated grid against
// the given spoilage threshold. The returned slice is ordered by day,
// one entry per simulated day.
//
// Complexity: O(cells) time, O(nDay × nSim × nUnits) transient space.
func Summarize(grid *simulate.ResultGrid, threshold float64) []DayStat {
	var (
		nDay   = grid.NDay()
		perDay = make([][]float64, nDay)
		over   = make([]int, nDay)
	)
	for d := range perDay {
		perDay[d] = make([]float64, 0, grid.NSim()*grid.NUnits())
	}

	for _, cell := range grid.Samples() {
		d := cell.Day - grid.StartDay()
		perDay[d] = append(perDay[d], cell.Log10N)
		if cell.Log10N >= threshold {
			over[d]++
		}
	}

	stats := make([]DayStat, nDay)
	for d := range stats {
		stats[d] = DayStat{
			Day:              grid.StartDay() + d,
			MeanLog10N:       stat.Mean(perDay[d], nil),
			PctOverThreshold: 100 * float64(over[d]) / float64(len(perDay[d])),
		}
	}

	return stats
}
