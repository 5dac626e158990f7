// Package report reduces a populated result grid to the per-day summary
// consumed by shelf-life studies: mean log10 count across all containers
// and the percentage of containers past a spoilage threshold.
//
// The spoilage threshold (commonly 6.0 log10 CFU/mL for fluid milk) is
// the caller's parameter, not a property of the engine.
package report
