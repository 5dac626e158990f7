package simulate

// ParamRecord holds one strain's kinetic parameters measured at the
// reference temperature.
type ParamRecord struct {
	// Lag is the lag-phase duration (days) at the reference temperature.
	Lag float64
	// MuMax is the maximum specific growth rate (natural-log units) at
	// the reference temperature.
	MuMax float64
	// LogNmax is the asymptotic log10 population ceiling.
	LogNmax float64
}

// ParamTable maps strain identifiers to their kinetic parameters.
type ParamTable map[string]ParamRecord

// Lookup resolves a strain identifier to its parameter record.
//
// A missing record returns *UnknownStrainError (wrapping
// ErrUnknownStrain). The condition is fatal for the enclosing run: the
// frequency table and the parameter table disagree, and skipping the
// unit would silently break the grid's completeness guarantee.
func (t ParamTable) Lookup(strain string) (ParamRecord, error) {
	rec, ok := t[strain]
	if !ok {
		return ParamRecord{}, &UnknownStrainError{Strain: strain}
	}

	return rec, nil
}
