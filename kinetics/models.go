package kinetics

import "math"

// Evaluate computes log10N at time t under the named growth model.
//
// Parameters share one convention across all three models:
//
//	t       – time since filling (same unit as lag, days in the simulator)
//	lag     – lag-phase duration at the evaluated temperature
//	mumax   – maximum specific growth rate (natural-log units) at the
//	          evaluated temperature
//	logN0   – initial log10 population
//	logNmax – asymptotic log10 population ceiling
//
// Returns the model's log10N and a *ModelError (wrapping ErrUnknownModel)
// for any name outside buchanan/gompertz/baranyi. The error path is
// checked before any numeric work, so callers may treat it as a
// configuration failure rather than a per-point one.
//
// Complexity: O(1).
func Evaluate(model Model, t, lag, mumax, logN0, logNmax float64) (float64, error) {
	switch model {
	case ModelBuchanan:
		return Buchanan(t, lag, mumax, logN0, logNmax), nil
	case ModelGompertz:
		return Gompertz(t, lag, mumax, logN0, logNmax), nil
	case ModelBaranyi:
		return Baranyi(t, lag, mumax, logN0, logNmax), nil
	default:
		return 0, &ModelError{Value: string(model)}
	}
}

// Buchanan evaluates the three-phase linear model:
//
//	log10N(t) = logN0                              t < lag
//	          = logN0 + mumax·(t−lag)/ln10         lag ≤ t ≤ tmax
//	          = logNmax                            t > tmax
//
// where tmax = lag + (logNmax−logN0)·ln10/mumax is the time the linear
// phase reaches the ceiling.
//
// The implementation is the literal branchless blend of the three
// regimes via indicator terms, with both breakpoint inequalities
// inclusive. The tie-breaks at t == lag and t == tmax therefore resolve
// to the growing regime, whose value coincides with the adjacent flat
// phase at those exact points.
func Buchanan(t, lag, mumax, logN0, logNmax float64) float64 {
	tmax := lag + (logNmax-logN0)*ln10/mumax

	grow := indicator(t >= lag && t <= tmax)
	capd := indicator(t > tmax)

	return logN0 + grow*mumax*(t-lag)/ln10 + capd*(logNmax-logN0)
}

// Gompertz evaluates the modified Gompertz sigmoid:
//
//	log10N(t) = logN0 + (logNmax−logN0) ·
//	            exp(−exp(mumax·e·(lag−t)/((logNmax−logN0)·ln10) + 1))
//
// Defined for all real t; approaches logN0 as t→−∞ and logNmax as t→+∞.
func Gompertz(t, lag, mumax, logN0, logNmax float64) float64 {
	span := logNmax - logN0
	inner := mumax*math.E*(lag-t)/(span*ln10) + 1

	return logN0 + span*math.Exp(-math.Exp(inner))
}

// Baranyi evaluates the Baranyi model:
//
//	log10N(t) = logNmax + log10( (−1 + e^(mumax·lag) + e^(mumax·t)) /
//	                             (e^(mumax·t) − 1 + e^(mumax·lag)·10^(logNmax−logN0)) )
//
// The naive form overflows float64 once mumax·t exceeds ~709, well inside
// realistic shelf-life sweeps. Both the numerator and denominator are
// therefore evaluated in the log domain with a shifted exponent
// (log-sum-exp), keeping the ratio finite for arbitrarily large mumax·t.
func Baranyi(t, lag, mumax, logN0, logNmax float64) float64 {
	a := mumax * lag // ln numerator lag term
	b := mumax * t   // ln growth term
	d := (logNmax - logN0) * ln10

	// ln(e^b + e^a − 1), shifted by the dominant exponent.
	mn := math.Max(a, b)
	lnNum := mn + math.Log(math.Exp(b-mn)+math.Exp(a-mn)-math.Exp(-mn))

	// ln(e^b − 1 + e^(a+d)), shifted likewise.
	md := math.Max(b, a+d)
	lnDen := md + math.Log(math.Exp(b-md)-math.Exp(-md)+math.Exp(a+d-md))

	return logNmax + (lnNum-lnDen)/ln10
}

// indicator maps a regime condition to its blend coefficient.
func indicator(cond bool) float64 {
	if cond {
		return 1
	}

	return 0
}
