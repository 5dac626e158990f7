// Package sporesim is a Monte Carlo engine for estimating psychrotolerant
// spore-former spoilage risk in fluid-milk containers over refrigerated
// shelf life.
//
// 🥛 What is sporesim?
//
//	A deterministic-given-seed simulation library that couples three
//	independent stochastic sources into one numeric pipeline:
//		• Initial load: a log-normal bulk-tank contamination draw expanded
//		  into per-container Poisson counts
//		• Strain identity: a uniform draw from an observed isolate pool,
//		  resolved to strain-specific kinetic parameters
//		• Cold chain: stage-wise Gaussian temperature draws held constant
//		  per stage per container
//	and evaluates a bacterial growth curve for every (run, unit, day) cell.
//
// ✨ Why choose sporesim?
//
//   - Reproducible – every draw flows from an explicit seed; per-run
//     substreams make results independent of worker count
//   - Strict failure modes – unknown strain, bad stage coverage, or an
//     unknown model aborts with a typed error, never a silent NaN
//   - Pure Go numerics – closed-form Buchanan, Gompertz and Baranyi
//     curves with overflow-safe log-domain evaluation
//
// The module is organized under flat topic packages:
//
//	kinetics/  — growth curves + square-root temperature adjustment
//	coldchain/ — temperature-stage validation and trajectory generation
//	sampler/   — bulk-tank, per-container and strain sampling
//	simulate/  — parameter lookup, grid orchestration, parallel fill
//	dataset/   — loaders for the four external input tables
//	report/    — per-day mean counts and spoilage exceedance summary
//
// A runnable front end lives in cmd/sporesim.
//
//	go get github.com/katalvlaran/sporesim
package sporesim
