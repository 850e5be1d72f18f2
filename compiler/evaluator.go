package compiler

import (
	"fmt"

	"github.com/doekit/doekit/domain"
)

// ResidualEvaluator adapts a per-experiment symbolic residual (and optional
// gradient) to the flattened multi-experiment decision vector: it reshapes
// the vector into an n_experiments × D matrix, evaluates the expression row
// by row, and scatters per-row partial derivatives back into sparse block
// form.
type ResidualEvaluator struct {
	nExperiments int
	d            int
	colIdx       []int // column index per constraint feature, domain order
	expr         domain.Expression
	grad         domain.Gradient
}

// NewResidualEvaluator binds the expression and optional gradient of a
// nonlinear constraint over the given features to a flattened design of
// nExperiments rows.
func NewResidualEvaluator(dom *domain.Domain, features []string, expr domain.Expression, grad domain.Gradient, nExperiments int) (*ResidualEvaluator, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: nonlinear constraint has an empty feature list", domain.ErrInvalidConstraintSpec)
	}
	if expr == nil {
		return nil, fmt.Errorf("%w: nonlinear constraint has no expression", domain.ErrInvalidConstraintSpec)
	}
	colIdx := make([]int, len(features))
	for i, key := range features {
		j, ok := dom.InputIndex(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFeature, key)
		}
		colIdx[i] = j
	}
	return &ResidualEvaluator{
		nExperiments: nExperiments,
		d:            dom.NumInputs(),
		colIdx:       colIdx,
		expr:         expr,
		grad:         grad,
	}, nil
}

// HasJacobian reports whether an analytic gradient was supplied.
func (e *ResidualEvaluator) HasJacobian() bool { return e.grad != nil }

// Residual evaluates the constraint expression once per experiment and
// returns one residual value per experiment. x must have length
// nExperiments·D, laid out row-major. A residual that evaluates to the
// representable negative zero is normalized to zero, so the sign of the
// result is stable at the feasible boundary.
func (e *ResidualEvaluator) Residual(x []float64) []float64 {
	out := make([]float64, e.nExperiments)
	row := make([]float64, len(e.colIdx))
	for i := 0; i < e.nExperiments; i++ {
		e.gather(x, i, row)
		v := e.expr.Eval(row)
		if v == 0 {
			v = 0 // maps -0.0 to +0.0
		}
		out[i] = v
	}
	return out
}

// Jacobian evaluates the compressed per-experiment gradient (one partial per
// constraint feature) and scatters each entry into its true column,
// experiment·D + featureColumn, of an nExperiments × (nExperiments·D) matrix.
// It must only be called when HasJacobian is true.
func (e *ResidualEvaluator) Jacobian(x []float64) *Matrix {
	jac := NewMatrix(e.nExperiments, e.nExperiments*e.d)
	row := make([]float64, len(e.colIdx))
	for i := 0; i < e.nExperiments; i++ {
		e.gather(x, i, row)
		g := e.grad.Eval(row)
		for j, col := range e.colIdx {
			jac.Set(i, i*e.d+col, g[j])
		}
	}
	return jac
}

// gather copies experiment i's values of the constraint features into row.
func (e *ResidualEvaluator) gather(x []float64, i int, row []float64) {
	for j, col := range e.colIdx {
		row[j] = x[i*e.d+col]
	}
}
