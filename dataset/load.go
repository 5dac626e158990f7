package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sporesim/coldchain"
	"github.com/katalvlaran/sporesim/simulate"
)

// LoadStrainFrequencies reads the strain-frequency table: a single
// identifier column with a header row, one row per observed isolate.
// Duplicates are expected — they carry the observed frequency weight.
func LoadStrainFrequencies(r io.Reader) ([]string, error) {
	const kind = "strain-frequency"
	records, err := readCSV(r, kind)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, &SchemaError{Kind: kind, Detail: "need a header row and at least one isolate"}
	}

	isolates := make([]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != 1 {
			return nil, &SchemaError{Kind: kind, Row: i + 2, Detail: fmt.Sprintf("expected 1 column, got %d", len(rec))}
		}
		id := strings.TrimSpace(rec[0])
		if id == "" {
			return nil, &SchemaError{Kind: kind, Row: i + 2, Detail: "empty strain identifier"}
		}
		isolates = append(isolates, id)
	}

	return isolates, nil
}

// LoadGrowthParams reads the growth-parameter table with header columns
// strainId, lag, mumax, LOG10Nmax (any order, case-insensitive) into a
// ParamTable. Duplicate strain rows are a schema violation.
func LoadGrowthParams(r io.Reader) (simulate.ParamTable, error) {
	const kind = "growth-parameter"
	records, err := readCSV(r, kind)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, &SchemaError{Kind: kind, Detail: "need a header row and at least one strain"}
	}

	cols, err := indexHeader(kind, records[0], "strainId", "lag", "mumax", "LOG10Nmax")
	if err != nil {
		return nil, err
	}

	table := make(simulate.ParamTable, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2
		id := strings.TrimSpace(rec[cols["strainId"]])
		if id == "" {
			return nil, &SchemaError{Kind: kind, Row: row, Detail: "empty strain identifier"}
		}
		if _, dup := table[id]; dup {
			return nil, &SchemaError{Kind: kind, Row: row, Detail: fmt.Sprintf("duplicate strain %q", id)}
		}

		lag, err := parseCell(kind, row, "lag", rec[cols["lag"]])
		if err != nil {
			return nil, err
		}
		mu, err := parseCell(kind, row, "mumax", rec[cols["mumax"]])
		if err != nil {
			return nil, err
		}
		nmax, err := parseCell(kind, row, "LOG10Nmax", rec[cols["LOG10Nmax"]])
		if err != nil {
			return nil, err
		}
		table[id] = simulate.ParamRecord{Lag: lag, MuMax: mu, LogNmax: nmax}
	}

	return table, nil
}

// LoadInitialCounts reads the initial-count table, resolving the MPN and
// LOG10MPN columns by header name regardless of their position among
// other columns.
func LoadInitialCounts(r io.Reader) ([]CountRecord, error) {
	const kind = "initial-count"
	records, err := readCSV(r, kind)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, &SchemaError{Kind: kind, Detail: "need a header row and at least one observation"}
	}

	cols, err := indexHeader(kind, records[0], "MPN", "LOG10MPN")
	if err != nil {
		return nil, err
	}

	obs := make([]CountRecord, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2
		mpn, err := parseCell(kind, row, "MPN", rec[cols["MPN"]])
		if err != nil {
			return nil, err
		}
		logMPN, err := parseCell(kind, row, "LOG10MPN", rec[cols["LOG10MPN"]])
		if err != nil {
			return nil, err
		}
		obs = append(obs, CountRecord{MPN: mpn, Log10MPN: logMPN})
	}

	return obs, nil
}

// FitLogMPN estimates the contamination model's Normal parameters from
// the observed log10(MPN) column. Requires at least two observations for
// a defined sample standard deviation.
func FitLogMPN(obs []CountRecord) (mean, sd float64, err error) {
	if len(obs) < 2 {
		return 0, 0, ErrTooFewObservations
	}
	logs := make([]float64, len(obs))
	for i, o := range obs {
		logs[i] = o.Log10MPN
	}

	return stat.Mean(logs, nil), stat.StdDev(logs, nil), nil
}

// LoadStages reads the temperature-stage table: rows of
// beginDay, endDay, "meanTemp sdTemp". Lines starting with # are
// comments; blank lines are skipped; an optional header row (detected by
// a non-numeric first field) is tolerated. Coverage against the day
// range is the caller's concern (coldchain.ValidateStages).
func LoadStages(r io.Reader) ([]coldchain.Stage, error) {
	const kind = "temperature-stage"

	var (
		stages  []coldchain.Stage
		scanner = bufio.NewScanner(r)
		row     int
	)
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, &SchemaError{Kind: kind, Row: row, Detail: fmt.Sprintf("expected 3 comma-separated fields, got %d", len(fields))}
		}

		begin, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			// A non-numeric first field is acceptable once, as a header.
			if len(stages) == 0 {
				continue
			}

			return nil, &SchemaError{Kind: kind, Row: row, Detail: fmt.Sprintf("beginDay %q is not an integer", fields[0])}
		}
		end, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, &SchemaError{Kind: kind, Row: row, Detail: fmt.Sprintf("endDay %q is not an integer", fields[1])}
		}

		pair := strings.Fields(strings.Trim(strings.TrimSpace(fields[2]), `"`))
		if len(pair) != 2 {
			return nil, &SchemaError{Kind: kind, Row: row, Detail: fmt.Sprintf("parameters %q must be a \"meanTemp sdTemp\" pair", fields[2])}
		}
		mean, err := parseCell(kind, row, "meanTemp", pair[0])
		if err != nil {
			return nil, err
		}
		sd, err := parseCell(kind, row, "sdTemp", pair[1])
		if err != nil {
			return nil, err
		}

		stages = append(stages, coldchain.Stage{BeginDay: begin, EndDay: end, MeanTemp: mean, SDTemp: sd})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, &SchemaError{Kind: kind, Detail: "no stage rows found"}
	}

	return stages, nil
}

// readCSV parses the whole input, surfacing parser errors as schema errors.
func readCSV(r io.Reader, kind string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, &SchemaError{Kind: kind, Detail: err.Error()}
	}

	return records, nil
}

// indexHeader resolves required column names (case-insensitive) to their
// positions, rejecting any that are missing.
func indexHeader(kind string, header []string, want ...string) (map[string]int, error) {
	cols := make(map[string]int, len(want))
	for _, name := range want {
		found := -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				found = i

				break
			}
		}
		if found < 0 {
			return nil, &SchemaError{Kind: kind, Row: 1, Detail: fmt.Sprintf("missing column %q in header %v", name, header)}
		}
		cols[name] = found
	}

	return cols, nil
}

// parseCell parses one numeric cell, naming the column on failure.
func parseCell(kind string, row int, col, cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, &SchemaError{Kind: kind, Row: row, Detail: fmt.Sprintf("%s %q is not a number", col, cell)}
	}

	return v, nil
}
