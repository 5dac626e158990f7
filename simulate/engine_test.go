package simulate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sporesim/coldchain"
	"github.com/katalvlaran/sporesim/kinetics"
	"github.com/katalvlaran/sporesim/sampler"
	"github.com/katalvlaran/sporesim/simulate"
)

// EngineSuite groups end-to-end tests of the grid fill.
type EngineSuite struct {
	suite.Suite

	pool   *sampler.StrainPool
	params simulate.ParamTable
	stages []coldchain.Stage
	cfg    simulate.Config
}

func (s *EngineSuite) SetupTest() {
	var err error
	s.pool, err = sampler.NewStrainPool([]string{"ST-1", "ST-21", "ST-21", "ST-23"})
	require.NoError(s.T(), err)

	s.params = simulate.ParamTable{
		"ST-1":  {Lag: 3.2, MuMax: 0.8, LogNmax: 8.4},
		"ST-21": {Lag: 1.9, MuMax: 1.1, LogNmax: 9.0},
		"ST-23": {Lag: 2.6, MuMax: 0.9, LogNmax: 8.8},
	}
	s.stages = []coldchain.Stage{
		{BeginDay: 1, EndDay: 10, MeanTemp: 4, SDTemp: 1},
		{BeginDay: 11, EndDay: 24, MeanTemp: 6, SDTemp: 1},
	}

	s.cfg = simulate.DefaultConfig()
	s.cfg.Seed = 20240817
	s.cfg.NSim = 8
	s.cfg.NHalfGal = 5
}

func (s *EngineSuite) run(cfg simulate.Config) *simulate.ResultGrid {
	grid, err := simulate.Run(cfg, s.pool, s.params, s.stages)
	require.NoError(s.T(), err)

	return grid
}

// TestGridComplete: dimensions, day numbering, and per-cell sanity of a
// full fill.
func (s *EngineSuite) TestGridComplete() {
	grid := s.run(s.cfg)

	require.Equal(s.T(), s.cfg.NSim*s.cfg.NHalfGal*s.cfg.NDay, grid.Len())
	require.Equal(s.T(), s.cfg.NDay, grid.NDay())

	for _, cell := range grid.Samples() {
		require.GreaterOrEqual(s.T(), cell.Day, s.cfg.StartDay)
		require.Less(s.T(), cell.Day, s.cfg.StartDay+s.cfg.NDay)
		require.Contains(s.T(), s.params, cell.Strain)
		require.False(s.T(), math.IsNaN(cell.Log10N) || math.IsInf(cell.Log10N, 0))
		require.GreaterOrEqual(s.T(), cell.Log10N, cell.InitialLog10,
			"growth curves never drop below the initial level")
		require.LessOrEqual(s.T(), cell.Log10N, s.params[cell.Strain].LogNmax+1e-9)
	}
}

// TestAtAccessor: At agrees with the flat layout and rejects bad indices.
func (s *EngineSuite) TestAtAccessor() {
	grid := s.run(s.cfg)

	cell, err := grid.At(2, 3, 14)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, cell.Run)
	require.Equal(s.T(), 3, cell.Unit)
	require.Equal(s.T(), 14, cell.Day)

	for _, bad := range [][3]int{{-1, 0, 1}, {0, -1, 1}, {0, 0, 0}, {8, 0, 1}, {0, 5, 1}, {0, 0, 25}} {
		_, err = grid.At(bad[0], bad[1], bad[2])
		require.True(s.T(), errors.Is(err, simulate.ErrCellIndex), "coords %v", bad)
	}
}

// TestDeterminism: identical config ⇒ bit-identical grids; a different
// seed diverges.
func (s *EngineSuite) TestDeterminism() {
	a := s.run(s.cfg)
	b := s.run(s.cfg)
	require.Equal(s.T(), a.Samples(), b.Samples())

	other := s.cfg
	other.Seed = s.cfg.Seed + 1
	c := s.run(other)
	require.NotEqual(s.T(), a.Samples(), c.Samples())
}

// TestWorkerInvariance: the grid is bit-identical across worker counts.
func (s *EngineSuite) TestWorkerInvariance() {
	sequential := s.run(s.cfg)

	for _, workers := range []int{2, 4, 16} {
		cfg := s.cfg
		cfg.Workers = workers
		parallel := s.run(cfg)
		require.Equal(s.T(), sequential.Samples(), parallel.Samples(), "workers=%d", workers)
	}
}

// TestSeedsStatisticallyConsistent: different seeds shift individual
// cells but not the distribution — mean log10N at a fixed (unit, day)
// agrees across seeds within sampling error.
func (s *EngineSuite) TestSeedsStatisticallyConsistent() {
	cfg := s.cfg
	cfg.NSim = 500
	cfg.NHalfGal = 2
	cfg.Bulk.LogMPNSD = 0.5

	meanAt := func(seed uint64) float64 {
		cfg.Seed = seed
		grid := s.run(cfg)
		sum := 0.0
		for run := 0; run < cfg.NSim; run++ {
			cell, err := grid.At(run, 1, 12)
			require.NoError(s.T(), err)
			sum += cell.Log10N
		}

		return sum / float64(cfg.NSim)
	}

	require.InDelta(s.T(), meanAt(101), meanAt(202), 0.25)
}

// TestFailFast: each invalid input aborts with its sentinel before any
// grid is produced.
func (s *EngineSuite) TestFailFast() {
	cases := []struct {
		name   string
		mutate func(*simulate.Config)
		stages []coldchain.Stage
		params simulate.ParamTable
		err    error
	}{
		{"BogusModel", func(c *simulate.Config) { c.Model = "bogus" }, s.stages, s.params, kinetics.ErrUnknownModel},
		{"ZeroReplicates", func(c *simulate.Config) { c.NSim = 0 }, s.stages, s.params, simulate.ErrBadReplicates},
		{"ZeroUnits", func(c *simulate.Config) { c.NHalfGal = 0 }, s.stages, s.params, simulate.ErrBadUnits},
		{"ZeroDays", func(c *simulate.Config) { c.NDay = 0 }, s.stages, s.params, simulate.ErrBadDays},
		{"NegativeWorkers", func(c *simulate.Config) { c.Workers = -1 }, s.stages, s.params, simulate.ErrBadWorkers},
		{"RefTempAtTNot", func(c *simulate.Config) { c.RefTemp = c.TNot }, s.stages, s.params, kinetics.ErrReferenceTemp},
		{"StageGap", func(c *simulate.Config) {}, []coldchain.Stage{
			{BeginDay: 1, EndDay: 9, MeanTemp: 4, SDTemp: 1},
			{BeginDay: 11, EndDay: 24, MeanTemp: 6, SDTemp: 1},
		}, s.params, coldchain.ErrStageCoverage},
		{"EmptyParams", func(c *simulate.Config) {}, s.stages, simulate.ParamTable{}, simulate.ErrNoParams},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			cfg := s.cfg
			tc.mutate(&cfg)
			grid, err := simulate.Run(cfg, s.pool, tc.params, tc.stages)
			require.Nil(s.T(), grid)
			require.True(s.T(), errors.Is(err, tc.err), "got %v", err)
		})
	}
}

// TestUnknownStrain: a pool strain missing from the table is fatal and
// the error names the run and unit.
func (s *EngineSuite) TestUnknownStrain() {
	params := simulate.ParamTable{
		"ST-1": {Lag: 3.2, MuMax: 0.8, LogNmax: 8.4},
		// ST-21 and ST-23 deliberately absent.
	}
	grid, err := simulate.Run(s.cfg, s.pool, params, s.stages)
	require.Nil(s.T(), grid)
	require.True(s.T(), errors.Is(err, simulate.ErrUnknownStrain))
	require.Contains(s.T(), err.Error(), "run ")
	require.Contains(s.T(), err.Error(), "unit ")
}

// TestMonotoneUnderConstantCold: with one zero-spread stage the adjusted
// parameters are constant, so every container's series is non-decreasing
// and capped at its strain's ceiling.
func (s *EngineSuite) TestMonotoneUnderConstantCold() {
	cfg := s.cfg
	cfg.NSim = 3
	stages := []coldchain.Stage{{BeginDay: 1, EndDay: 24, MeanTemp: 8, SDTemp: 0}}

	grid, err := simulate.Run(cfg, s.pool, s.params, stages)
	require.NoError(s.T(), err)

	for run := 0; run < cfg.NSim; run++ {
		for unit := 0; unit < cfg.NHalfGal; unit++ {
			prev := math.Inf(-1)
			for day := 1; day <= 24; day++ {
				cell, err := grid.At(run, unit, day)
				require.NoError(s.T(), err)
				require.Equal(s.T(), 8.0, cell.Temperature)
				require.GreaterOrEqual(s.T(), cell.Log10N, prev, "run %d unit %d day %d", run, unit, day)
				prev = cell.Log10N
			}
		}
	}
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

//----------------------------------------------------------------------------//
// CellValue
//----------------------------------------------------------------------------//

// TestCellValue_ShelfLifeScenario pins the canonical single-container
// scenario: lag=1, mumax=1, ceiling 9, starting level 2, storage held at
// the reference temperature, Buchanan model. Day 1 sits exactly at the
// lag boundary; later days climb and saturate at the ceiling.
func TestCellValue_ShelfLifeScenario(t *testing.T) {
	rec := simulate.ParamRecord{Lag: 1, MuMax: 1, LogNmax: 9}

	day1, err := simulate.CellValue(kinetics.ModelBuchanan, 1, 6, rec, 2, 6, kinetics.DefaultTNot)
	require.NoError(t, err)
	require.Equal(t, 2.0, day1)

	day2, err := simulate.CellValue(kinetics.ModelBuchanan, 2, 6, rec, 2, 6, kinetics.DefaultTNot)
	require.NoError(t, err)
	require.Greater(t, day2, day1)

	day3, err := simulate.CellValue(kinetics.ModelBuchanan, 3, 6, rec, 2, 6, kinetics.DefaultTNot)
	require.NoError(t, err)
	require.Greater(t, day3, day2)

	far, err := simulate.CellValue(kinetics.ModelBuchanan, 60, 6, rec, 2, 6, kinetics.DefaultTNot)
	require.NoError(t, err)
	require.Equal(t, 9.0, far)
}

// TestCellValue_WarmAbuse: warmer storage accelerates growth relative to
// the reference temperature at the same day.
func TestCellValue_WarmAbuse(t *testing.T) {
	rec := simulate.ParamRecord{Lag: 2, MuMax: 0.9, LogNmax: 9}

	cold, err := simulate.CellValue(kinetics.ModelGompertz, 8, 4, rec, 2, 6, kinetics.DefaultTNot)
	require.NoError(t, err)
	warm, err := simulate.CellValue(kinetics.ModelGompertz, 8, 10, rec, 2, 6, kinetics.DefaultTNot)
	require.NoError(t, err)
	require.Greater(t, warm, cold)
}

// TestCellValue_TempAtTNot surfaces the adjustment's domain error.
func TestCellValue_TempAtTNot(t *testing.T) {
	rec := simulate.ParamRecord{Lag: 2, MuMax: 0.9, LogNmax: 9}
	_, err := simulate.CellValue(kinetics.ModelBuchanan, 5, kinetics.DefaultTNot, rec, 2, 6, kinetics.DefaultTNot)
	require.True(t, errors.Is(err, kinetics.ErrReferenceTemp))
}
