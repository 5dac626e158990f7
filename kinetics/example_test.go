package kinetics_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/sporesim/kinetics"
)

// ExampleEvaluate shows the Buchanan curve at its two breakpoints: the
// end of lag (still at the initial level) and far past the linear phase
// (pinned to the ceiling).
func ExampleEvaluate() {
	atLag, err := kinetics.Evaluate(kinetics.ModelBuchanan, 1, 1, 1, 2, 9)
	if err != nil {
		log.Fatal(err)
	}
	late, err := kinetics.Evaluate(kinetics.ModelBuchanan, 60, 1, 1, 2, 9)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.0f %.0f\n", atLag, late)
	// Output: 2 9
}

// ExampleMuAtTemp re-derives a 6°C growth rate for abusive 10°C storage.
func ExampleMuAtTemp() {
	mu, err := kinetics.MuAtTemp(10, 0.8, kinetics.DefaultRefTemp, kinetics.DefaultTNot)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.2f\n", mu)
	// Output: 1.60
}
