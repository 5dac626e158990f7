// Package sampler draws the initial conditions of a simulation run: the
// bulk-tank contamination level, the per-container spore counts, and the
// per-container strain identities.
//
// What:
//
//   - StrainPool: the observed-isolate population; containers draw a
//     strain uniformly with replacement, so each allelic type's sampling
//     weight is its observed frequency.
//   - Options: the contamination model — Normal(logMPN) bulk draw,
//     container volume, and the detection-limit floor.
//   - Sampler.SampleRun: one bulk draw expanded into independent Poisson
//     counts and strain identities for every container of the run.
//
// Why:
//
//   - Spore counts in raw milk vary log-normally between tank loads but
//     containers filled from one load share the load's expectation; the
//     two-level draw reproduces both sources of spread.
//
// Modeling note:
//
//   - A container whose Poisson count is zero still needs a finite log10
//     starting level; its concentration is floored to DetectionLimit
//     before the logarithm. This is a documented modeling decision, not
//     an error path.
//
// Determinism:
//
//   - All draws come from the caller's rng; SampleRun's consumption order
//     is fixed (bulk draw, then per-container count and strain in
//     container order), so a fixed seed reproduces a run exactly.
//
// Errors:
//
//   - ErrEmptyPool: no isolates to draw strains from.
//   - ErrBadVolume, ErrBadDetectionLimit, ErrBadSpread: nonsensical
//     contamination-model options.
package sampler
