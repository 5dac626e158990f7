package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for table ingestion.
var (
	// ErrSchema indicates input that does not match a table's contract.
	ErrSchema = errors.New("dataset: input does not match table schema")

	// ErrTooFewObservations indicates a count table too small to fit a
	// contamination distribution.
	ErrTooFewObservations = errors.New("dataset: at least two observations required to fit logMPN")
)

// SchemaError pinpoints a contract violation in one input table.
type SchemaError struct {
	// Kind names the table ("strain-frequency", "growth-parameter",
	// "initial-count", "temperature-stage").
	Kind string
	// Row is the 1-based row (header = 1), or 0 for file-level defects.
	Row int
	// Detail describes the violation.
	Detail string
}

// Error formats the table kind, row, and violation.
func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("dataset: %s table: %s", e.Kind, e.Detail)
	}

	return fmt.Sprintf("dataset: %s table: row %d: %s", e.Kind, e.Row, e.Detail)
}

// Unwrap ties SchemaError to the ErrSchema sentinel.
func (e *SchemaError) Unwrap() error { return ErrSchema }

// CountRecord is one bulk-tank observation from the initial-count table.
type CountRecord struct {
	// MPN is the raw most-probable-number estimate, kept for traceability.
	MPN float64
	// Log10MPN is the log10 of MPN, the value consumed downstream.
	Log10MPN float64
}
