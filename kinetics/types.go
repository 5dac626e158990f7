// Package kinetics defines the model identifiers, reference constants,
// and sentinel errors shared by the growth-curve implementations.
package kinetics

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for kinetics operations.
var (
	// ErrUnknownModel indicates a growth-model name outside the supported set.
	ErrUnknownModel = errors.New("kinetics: unknown growth model")

	// ErrReferenceTemp indicates a square-root adjustment evaluated at T0,
	// where the scaling ratio divides by zero.
	ErrReferenceTemp = errors.New("kinetics: temperature coincides with square-root model T0")
)

// Model names a primary growth model understood by Evaluate.
type Model string

const (
	// ModelBuchanan selects the three-phase linear model.
	ModelBuchanan Model = "buchanan"
	// ModelGompertz selects the modified Gompertz sigmoid.
	ModelGompertz Model = "gompertz"
	// ModelBaranyi selects the Baranyi model.
	ModelBaranyi Model = "baranyi"
)

// Default reference constants for the square-root secondary model,
// empirically fit for psychrotolerant spore-formers in fluid milk.
const (
	// DefaultRefTemp is the temperature (°C) at which the strain parameter
	// table's lag and mumax values were measured.
	DefaultRefTemp = 6.0
	// DefaultTNot is the square-root model's notional minimum growth
	// temperature T0 (°C).
	DefaultTNot = -3.62
)

// ln10 converts natural-log growth rates to log10 space.
var ln10 = math.Log(10)

// ParseModel validates a model name and returns its Model value.
// Unrecognized names yield a *ModelError wrapping ErrUnknownModel.
func ParseModel(name string) (Model, error) {
	switch Model(name) {
	case ModelBuchanan, ModelGompertz, ModelBaranyi:
		return Model(name), nil
	default:
		return "", &ModelError{Value: name}
	}
}

// ModelError reports an unrecognized growth-model name.
type ModelError struct {
	// Value is the offending model name as supplied by the caller.
	Value string
}

// Error formats the offending name together with the valid alternatives.
func (e *ModelError) Error() string {
	return fmt.Sprintf("kinetics: unknown growth model %q (valid: %s, %s, %s)",
		e.Value, ModelBuchanan, ModelGompertz, ModelBaranyi)
}

// Unwrap ties ModelError to the ErrUnknownModel sentinel.
func (e *ModelError) Unwrap() error { return ErrUnknownModel }

// TempError reports a temperature adjustment requested at T0.
type TempError struct {
	// Temp is the temperature that coincided with TNot.
	Temp float64
	// TNot is the reference minimum temperature of the adjustment.
	TNot float64
}

// Error names the degenerate temperature and the T0 it collided with.
func (e *TempError) Error() string {
	return fmt.Sprintf("kinetics: temperature %g equals square-root model T0 %g (division by zero)",
		e.Temp, e.TNot)
}

// Unwrap ties TempError to the ErrReferenceTemp sentinel.
func (e *TempError) Unwrap() error { return ErrReferenceTemp }
