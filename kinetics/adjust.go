package kinetics

// Square-root (Ratkowsky) secondary model.
//
// The strain parameter table reports lag and mumax at one reference
// temperature; a container's sampled storage temperature is rarely that
// temperature. Both adjustments scale by the squared ratio of the
// distances from T0, the notional minimum growth temperature:
//
//	mumax(Tnew) = ((Tnew − T0)/(Told − T0))² · mumax(Told)
//	lag(Tnew)   = ((Told − T0)/(Tnew − T0))² · lag(Told)
//
// Growth speeds up away from T0, and the lag shrinks by the reciprocal
// factor. Both formulas divide by a (T − T0) term; evaluation at T0 is
// undefined and rejected explicitly rather than returned as ±Inf.

// MuAtTemp re-derives mumax at newTemp from its value oldMu measured at
// oldTemp, using minimum growth temperature tNot.
//
// Returns *TempError (wrapping ErrReferenceTemp) when newTemp or oldTemp
// equals tNot.
//
// Complexity: O(1).
func MuAtTemp(newTemp, oldMu, oldTemp, tNot float64) (float64, error) {
	if err := checkTemps(newTemp, oldTemp, tNot); err != nil {
		return 0, err
	}
	ratio := (newTemp - tNot) / (oldTemp - tNot)

	return ratio * ratio * oldMu, nil
}

// LagAtTemp re-derives the lag duration at newTemp from its value oldLag
// measured at oldTemp, using minimum growth temperature tNot.
//
// Returns *TempError (wrapping ErrReferenceTemp) when newTemp or oldTemp
// equals tNot.
//
// Complexity: O(1).
func LagAtTemp(newTemp, oldLag, oldTemp, tNot float64) (float64, error) {
	if err := checkTemps(newTemp, oldTemp, tNot); err != nil {
		return 0, err
	}
	ratio := (oldTemp - tNot) / (newTemp - tNot)

	return ratio * ratio * oldLag, nil
}

// checkTemps rejects either temperature coinciding with tNot.
func checkTemps(newTemp, oldTemp, tNot float64) error {
	if newTemp == tNot {
		return &TempError{Temp: newTemp, TNot: tNot}
	}
	if oldTemp == tNot {
		return &TempError{Temp: oldTemp, TNot: tNot}
	}

	return nil
}
