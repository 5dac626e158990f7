package simulate

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/sporesim/coldchain"
	"github.com/katalvlaran/sporesim/kinetics"
	"github.com/katalvlaran/sporesim/sampler"
)

// Run executes the full Monte Carlo and returns the populated grid.
//
// Validation happens strictly before any sampling, in failure-severity
// order: configuration dimensions, growth-model name, stage coverage,
// contamination options, parameter-table presence. Only then are draws
// made, so an aborted call has consumed no randomness.
//
// Per run: derive the run's substream, sample the bulk tank and every
// container, then per container resolve its strain's parameters, draw
// its temperature trajectory, and evaluate the growth model for each
// day with temperature-adjusted lag and mumax.
//
// Errors carry the (run, unit, day) coordinates that produced them; see
// the package doc for the failure modes.
//
// Complexity: O(NSim × NHalfGal × NDay) time and space.
func Run(cfg Config, pool *sampler.StrainPool, params ParamTable, stages []coldchain.Stage) (*ResultGrid, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if _, err := kinetics.ParseModel(string(cfg.Model)); err != nil {
		return nil, err
	}
	gen, err := coldchain.NewGenerator(stages, cfg.StartDay, cfg.NDay)
	if err != nil {
		return nil, err
	}
	smp, err := sampler.New(pool, cfg.Bulk)
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, ErrNoParams
	}

	e := &engine{
		cfg:    cfg,
		smp:    smp,
		gen:    gen,
		params: params,
		grid:   newGrid(cfg.NSim, cfg.NHalfGal, cfg.NDay, cfg.StartDay),
	}
	if err = e.fill(); err != nil {
		return nil, err
	}

	return e.grid, nil
}

// CellValue computes one grid cell: rec's lag and mumax are re-derived at
// temp via the square-root model, then the growth curve is evaluated at
// the absolute day.
//
// Exposed so that a single cell's arithmetic can be pinned in isolation;
// Run performs exactly this computation per cell.
func CellValue(model kinetics.Model, day, temp float64, rec ParamRecord, logN0, refTemp, tNot float64) (float64, error) {
	mu, err := kinetics.MuAtTemp(temp, rec.MuMax, refTemp, tNot)
	if err != nil {
		return 0, err
	}
	lag, err := kinetics.LagAtTemp(temp, rec.Lag, refTemp, tNot)
	if err != nil {
		return 0, err
	}

	return kinetics.Evaluate(model, day, lag, mu, logN0, rec.LogNmax)
}

// engine carries the validated collaborators through the fill phase.
type engine struct {
	cfg    Config
	smp    *sampler.Sampler
	gen    *coldchain.Generator
	params ParamTable
	grid   *ResultGrid
}

// fill populates every cell, sequentially or partitioned by run.
func (e *engine) fill() error {
	workers := e.cfg.Workers
	if workers > e.cfg.NSim {
		workers = e.cfg.NSim
	}
	if workers <= 1 {
		for run := 0; run < e.cfg.NSim; run++ {
			if err := e.fillRun(run); err != nil {
				return err
			}
		}

		return nil
	}

	// Parallel fill: runs are independent and write disjoint cell ranges,
	// so the only coordination needed is the join. Per-run errors land in
	// a dedicated slot; the lowest run index wins, keeping the surfaced
	// error independent of scheduling.
	var (
		wg   sync.WaitGroup
		errs = make([]error, e.cfg.NSim)
		runs = make(chan int)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for run := range runs {
				errs[run] = e.fillRun(run)
			}
		}()
	}
	for run := 0; run < e.cfg.NSim; run++ {
		runs <- run
	}
	close(runs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// fillRun computes one replicate from its own derived substream.
// Draw order is fixed: bulk + per-container initial conditions first,
// then one trajectory per container.
func (e *engine) fillRun(run int) error {
	rng := runRNG(e.cfg.Seed, run)
	draw := e.smp.SampleRun(e.cfg.NHalfGal, rng)

	for u, unit := range draw.Units {
		rec, err := e.params.Lookup(unit.Strain)
		if err != nil {
			return fmt.Errorf("simulate: run %d unit %d: %w", run, u, err)
		}

		traj := e.gen.Trajectory(rng)
		for i, temp := range traj {
			day := e.cfg.StartDay + i
			logN, err := CellValue(e.cfg.Model, float64(day), temp, rec, unit.InitialLog10, e.cfg.RefTemp, e.cfg.TNot)
			if err != nil {
				return fmt.Errorf("simulate: run %d unit %d day %d: %w", run, u, day, err)
			}

			e.grid.samples[e.grid.index(run, u, i)] = DaySample{
				Run:          run,
				Unit:         u,
				Day:          day,
				Temperature:  temp,
				Strain:       unit.Strain,
				InitialLog10: unit.InitialLog10,
				Log10N:       logN,
			}
		}
	}

	return nil
}
