// Package simulate orchestrates the full spoilage Monte Carlo: it couples
// the sampler, the cold-chain generator and the kinetics library over the
// complete (run, unit, day) index space and materializes the result grid.
//
// What:
//
//   - ParamTable: strain identifier → reference kinetic parameters
//     (lag, mumax, log10Nmax measured at the reference temperature).
//   - Config: the whole configuration surface — seed, grid dimensions,
//     growth model, square-root reference constants, contamination model,
//     worker count.
//   - Run: validates everything up front (model name, stage coverage,
//     contamination options) before a single draw, then fills one
//     DaySample per (run, unit, day) cell.
//   - ResultGrid: the immutable populated grid, consumed by reporting.
//
// Determinism and parallelism:
//
//   - Each run owns an independent substream derived from the seed and
//     the run index with SplitMix64 mixing; no global random state exists
//     anywhere in the pipeline. Results are therefore bit-identical
//     across worker counts and execution orders.
//   - Workers > 1 partitions the fill by run; workers write disjoint cell
//     ranges, so the fill needs no locking.
//
// Failure modes (all fatal, never silently skipped):
//
//   - ErrUnknownModel (kinetics): bad model name, checked before any work.
//   - ErrStageCoverage (coldchain): bad day coverage, checked before sampling.
//   - ErrUnknownStrain (via *UnknownStrainError): a sampled strain missing
//     from the parameter table — an inconsistent input pairing that would
//     corrupt the grid's completeness if skipped.
//   - ErrReferenceTemp (kinetics): a drawn temperature coincides with T0.
//
// Complexity: O(nSim × nHalfGal × nDay) time, same space for the grid.
package simulate
