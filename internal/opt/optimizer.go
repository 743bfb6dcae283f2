package opt

// Optimizer is a derivative-free global search used to propose a starting
// point for the local conjugate gradient polish.
type Optimizer interface {
	// Run minimizes eval over the box [lower, upper] in dim dimensions and
	// returns the best parameters found together with their cost.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64)
}
