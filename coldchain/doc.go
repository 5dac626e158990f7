// Package coldchain models a container's storage-temperature history as
// an ordered sequence of stages and generates per-container trajectories.
//
// What:
//
//   - Stage: an inclusive [BeginDay, EndDay] interval carrying the mean
//     and standard deviation of its storage temperature.
//   - ValidateStages: strict coverage check — stages must be ordered,
//     gap-free, overlap-free, and exactly span the simulated day range.
//   - Generator: draws one Normal(MeanTemp, SDTemp) value per stage per
//     trajectory and holds it constant across every day of that stage,
//     producing a vector of one temperature per simulated day.
//
// Why:
//
//   - Retail milk moves through a handful of cold-chain segments
//     (processing, transport, retail case, home refrigerator); each
//     segment's temperature varies between containers but is effectively
//     constant within one container's stay.
//
// Determinism:
//
//   - All draws come from the caller's *rand.Rand; a trajectory consumes
//     exactly one draw per stage, so consumption is independent of the
//     day range a stage covers.
//
// Complexity:
//
//   - ValidateStages: O(S). Trajectory: O(S + D) time, O(D) space
//     (S = stages, D = simulated days).
//
// Errors:
//
//   - ErrStageCoverage (via *CoverageError): stages do not exactly and
//     contiguously cover the day range, or a stage interval is inverted.
//   - ErrNegativeSD: a stage carries a negative standard deviation.
//   - ErrNoStages: an empty stage list.
package coldchain
