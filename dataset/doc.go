// Package dataset loads the four external input tables of the spoilage
// simulator from their CSV contracts.
//
// What:
//
//   - LoadStrainFrequencies: one strain identifier per observed isolate
//     (single column, header row) — the sampling population.
//   - LoadGrowthParams: one row per strain with columns
//     strainId, lag, mumax, LOG10Nmax — the kinetic parameter table.
//   - LoadInitialCounts: per-observation MPN and log10(MPN); the raw MPN
//     column is retained for traceability, the log column feeds the
//     contamination model via FitLogMPN.
//   - LoadStages: rows beginDay, endDay, "meanTemp sdTemp" (the last a
//     whitespace-separated pair); lines starting with # are comments.
//
// Columns are resolved by header name, case-insensitively, and validated
// against the expected schema before any row is parsed — a renamed or
// reordered column fails fast instead of silently misreading data.
//
// Errors:
//
//   - ErrSchema (via *SchemaError): malformed header, field count, or
//     cell value, with the table kind and 1-based row number.
//   - ErrTooFewObservations: FitLogMPN needs at least two observations.
package dataset
