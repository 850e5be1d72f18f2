package compiler

// Constraint is a solver-ready constraint record over the flattened decision
// vector. Concrete kinds are LinearConstraint and NonlinearConstraint;
// consumers discriminate with a type switch.
type Constraint interface {
	// Bounds returns the lower and upper bound vectors, one entry per
	// constraint row.
	Bounds() (lb, ub []float64)

	// NumRows returns the number of scalar constraint rows.
	NumRows() int
}

// LinearConstraint is the compiled form of a linear or interpoint constraint:
// Lb ≤ A·x ≤ Ub for a flattened decision vector x.
type LinearConstraint struct {
	A      *Matrix
	Lb, Ub []float64
}

// Bounds returns the row bound vectors.
func (c *LinearConstraint) Bounds() (lb, ub []float64) { return c.Lb, c.Ub }

// NumRows returns the number of constraint rows.
func (c *LinearConstraint) NumRows() int { return len(c.Lb) }

// NonlinearConstraint is the compiled form of a nonlinear constraint:
// Lb ≤ Fn(x) ≤ Ub, with an optional analytic Jacobian. When Jac is nil the
// solver must differentiate numerically.
type NonlinearConstraint struct {
	Fn     func(x []float64) []float64
	Jac    func(x []float64) *Matrix
	Lb, Ub []float64
}

// Bounds returns the row bound vectors.
func (c *NonlinearConstraint) Bounds() (lb, ub []float64) { return c.Lb, c.Ub }

// NumRows returns the number of constraint rows, one per experiment.
func (c *NonlinearConstraint) NumRows() int { return len(c.Lb) }
