package domain

// Expression is the residual of a nonlinear constraint over one experiment.
// It is supplied by an external symbolic-formula facility; this package only
// defines the evaluation contract.
//
// Eval receives the values of the constraint's features, in the order of the
// constraint's Features list, for a single experiment row.
type Expression interface {
	Eval(row []float64) float64
}

// Gradient is the partial-derivative counterpart of Expression. Eval returns
// one partial per constraint feature, in Features order.
type Gradient interface {
	Eval(row []float64) []float64
}

// ExpressionFunc adapts a plain function to the Expression interface.
type ExpressionFunc func(row []float64) float64

func (f ExpressionFunc) Eval(row []float64) float64 { return f(row) }

// GradientFunc adapts a plain function to the Gradient interface.
type GradientFunc func(row []float64) []float64

func (f GradientFunc) Eval(row []float64) []float64 { return f(row) }
