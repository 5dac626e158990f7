// Command sporesim runs the milk-spoilage Monte Carlo end to end: load
// the four input tables, fill the grid, dump it as CSV, and print the
// per-day spoilage summary.
//
// Usage:
//
//	sporesim -strains strains.csv -params growth.csv -stages stages.txt \
//	         [-counts counts.csv] [-scenario scenario.hjson] [-out grid.csv]
//
// The optional hjson scenario file overrides the default configuration;
// recognized keys: seed, nSim, nHalfGal, nDay, startDay, growthModel,
// oldTemp, T0, logMPNMean, logMPNSD, containerVolume, detectionLimit,
// workers, threshold. When -counts is given, logMPNMean/logMPNSD default
// to the sample moments of the observed log10(MPN) column.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	hjson "github.com/hjson/hjson-go"

	"github.com/katalvlaran/sporesim/coldchain"
	"github.com/katalvlaran/sporesim/dataset"
	"github.com/katalvlaran/sporesim/kinetics"
	"github.com/katalvlaran/sporesim/report"
	"github.com/katalvlaran/sporesim/sampler"
	"github.com/katalvlaran/sporesim/simulate"
)

var (
	strainPath   = flag.String("strains", "", "strain-frequency CSV (required)")
	paramPath    = flag.String("params", "", "growth-parameter CSV (required)")
	countPath    = flag.String("counts", "", "initial-count CSV; fits the logMPN distribution")
	stagePath    = flag.String("stages", "", "temperature-stage table (required)")
	scenarioPath = flag.String("scenario", "", "hjson scenario file overriding defaults")
	outPath      = flag.String("out", "", "grid CSV output path (default stdout)")
)

func main() {
	flag.Parse()
	if *strainPath == "" || *paramPath == "" || *stagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	pool, params, stages, cfg, threshold, err := loadInputs()
	if err != nil {
		log.Fatal(err)
	}

	grid, err := simulate.Run(cfg, pool, params, stages)
	if err != nil {
		log.Fatal(err)
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := writeGrid(out, grid); err != nil {
		log.Fatal(err)
	}

	for _, ds := range report.Summarize(grid, threshold) {
		log.Printf("day %2d: mean %5.2f log10 CFU/mL, %5.1f%% over %.1f",
			ds.Day, ds.MeanLog10N, ds.PctOverThreshold, threshold)
	}
}

// loadInputs reads the tables and assembles the configuration:
// defaults, then fitted contamination moments, then scenario overrides.
func loadInputs() (*sampler.StrainPool, simulate.ParamTable, []coldchain.Stage, simulate.Config, float64, error) {
	cfg := simulate.DefaultConfig()
	threshold := 6.0

	isolates, err := loadWith(*strainPath, dataset.LoadStrainFrequencies)
	if err != nil {
		return nil, nil, nil, cfg, 0, err
	}
	pool, err := sampler.NewStrainPool(isolates)
	if err != nil {
		return nil, nil, nil, cfg, 0, err
	}
	params, err := loadWith(*paramPath, dataset.LoadGrowthParams)
	if err != nil {
		return nil, nil, nil, cfg, 0, err
	}
	stages, err := loadWith(*stagePath, dataset.LoadStages)
	if err != nil {
		return nil, nil, nil, cfg, 0, err
	}

	if *countPath != "" {
		obs, err := loadWith(*countPath, dataset.LoadInitialCounts)
		if err != nil {
			return nil, nil, nil, cfg, 0, err
		}
		mean, sd, err := dataset.FitLogMPN(obs)
		if err != nil {
			return nil, nil, nil, cfg, 0, err
		}
		cfg.Bulk.LogMPNMean = mean
		cfg.Bulk.LogMPNSD = sd
	}

	if *scenarioPath != "" {
		if threshold, err = applyScenario(*scenarioPath, &cfg, threshold); err != nil {
			return nil, nil, nil, cfg, 0, err
		}
	}

	return pool, params, stages, cfg, threshold, nil
}

// loadWith opens path and runs one dataset loader over it.
func loadWith[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := load(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// applyScenario overlays the hjson scenario file onto cfg and returns
// the (possibly overridden) spoilage threshold.
func applyScenario(path string, cfg *simulate.Config, threshold float64) (float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var scenario map[string]interface{}
	if err := hjson.Unmarshal(raw, &scenario); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	if v, ok := numParam(scenario, "seed"); ok {
		cfg.Seed = uint64(v)
	}
	if v, ok := numParam(scenario, "nSim"); ok {
		cfg.NSim = int(v)
	}
	if v, ok := numParam(scenario, "nHalfGal"); ok {
		cfg.NHalfGal = int(v)
	}
	if v, ok := numParam(scenario, "nDay"); ok {
		cfg.NDay = int(v)
	}
	if v, ok := numParam(scenario, "startDay"); ok {
		cfg.StartDay = int(v)
	}
	if v, ok := numParam(scenario, "workers"); ok {
		cfg.Workers = int(v)
	}
	if v, ok := numParam(scenario, "oldTemp"); ok {
		cfg.RefTemp = v
	}
	if v, ok := numParam(scenario, "T0"); ok {
		cfg.TNot = v
	}
	if v, ok := numParam(scenario, "logMPNMean"); ok {
		cfg.Bulk.LogMPNMean = v
	}
	if v, ok := numParam(scenario, "logMPNSD"); ok {
		cfg.Bulk.LogMPNSD = v
	}
	if v, ok := numParam(scenario, "containerVolume"); ok {
		cfg.Bulk.ContainerVolume = v
	}
	if v, ok := numParam(scenario, "detectionLimit"); ok {
		cfg.Bulk.DetectionLimit = v
	}
	if v, ok := numParam(scenario, "threshold"); ok {
		threshold = v
	}
	if name, ok := scenario["growthModel"].(string); ok {
		model, err := kinetics.ParseModel(name)
		if err != nil {
			return 0, err
		}
		cfg.Model = model
	}

	return threshold, nil
}

// numParam extracts a numeric scenario value; hjson decodes all numbers
// as float64.
func numParam(scenario map[string]interface{}, key string) (float64, bool) {
	v, ok := scenario[key].(float64)

	return v, ok
}

// writeGrid dumps the populated grid in the output contract's column order.
func writeGrid(w io.Writer, grid *simulate.ResultGrid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run", "unit", "day", "temperature", "strain", "initialLog10Count", "log10N"}); err != nil {
		return err
	}
	for _, cell := range grid.Samples() {
		rec := []string{
			strconv.Itoa(cell.Run),
			strconv.Itoa(cell.Unit),
			strconv.Itoa(cell.Day),
			strconv.FormatFloat(cell.Temperature, 'g', -1, 64),
			cell.Strain,
			strconv.FormatFloat(cell.InitialLog10, 'g', -1, 64),
			strconv.FormatFloat(cell.Log10N, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
