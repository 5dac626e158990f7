// Package kinetics implements the bacterial growth curves and the
// square-root temperature adjustment used by the spoilage simulator.
//
// What:
//
//   - Three interchangeable primary growth models, each a closed-form
//     expression of log10 population size over time:
//     Buchanan (three-phase linear), modified Gompertz (smooth sigmoid),
//     and Baranyi.
//   - A single dispatch entry point, Evaluate, selecting a model by name.
//   - Ratkowsky square-root secondary model: MuAtTemp and LagAtTemp
//     re-derive mumax and lag at a sampled storage temperature from their
//     values at a reference temperature.
//
// Why:
//
//   - Shelf-life prediction: log10N(t) under a container's temperature
//     history is the primary simulated quantity.
//   - Strain comparison: the same curves parameterized per allelic type.
//
// Conventions:
//
//   - All populations are log10 CFU per mL; time and lag share one unit
//     (days in the simulator).
//   - mumax is a natural-log rate; curves divide by ln 10 internally.
//   - Functions are pure and allocation-free; no logging, no panics.
//
// Complexity: every function is O(1).
//
// Errors:
//
//   - ErrUnknownModel (via *ModelError): model name is not one of
//     buchanan, gompertz, baranyi.
//   - ErrReferenceTemp (via *TempError): a temperature adjustment was
//     requested at the square-root model's T0, where the formula divides
//     by zero.
package kinetics
