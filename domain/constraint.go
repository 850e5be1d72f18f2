package domain

import (
	"fmt"
	"strings"
)

// Constraint is the closed set of constraint kinds understood by the
// compiler. Implementations live in this package only; the compiler matches
// exhaustively and returns ErrUnsupportedConstraint for anything else.
type Constraint interface {
	fmt.Stringer

	// isConstraint seals the interface.
	isConstraint()
}

// LinearEquality represents Σ Coefficients[i]·x[Features[i]] = RHS.
type LinearEquality struct {
	Features     []string
	Coefficients []float64
	RHS          float64
}

// LinearInequality represents Σ Coefficients[i]·x[Features[i]] ≤ RHS.
type LinearInequality struct {
	Features     []string
	Coefficients []float64
	RHS          float64
}

// NonlinearEquality represents Expression(x) = 0 over the listed features.
// Jacobian is optional; when nil the solver falls back to numerical
// differentiation.
type NonlinearEquality struct {
	Features   []string
	Expression Expression
	Jacobian   Gradient
}

// NonlinearInequality represents Expression(x) ≤ 0 over the listed features.
// Jacobian is optional.
type NonlinearInequality struct {
	Features   []string
	Expression Expression
	Jacobian   Gradient
}

// NChooseK restricts each experiment to at most MaxCount nonzero values among
// the listed features.
type NChooseK struct {
	Features []string
	MaxCount int
}

// InterpointEquality ties the named feature to a single value within each
// contiguous group of Multiplicity experiments. Multiplicity <= 0 means the
// default, the number of domain inputs.
type InterpointEquality struct {
	Feature      string
	Multiplicity int
}

func (c LinearEquality) isConstraint()      {}
func (c LinearInequality) isConstraint()    {}
func (c NonlinearEquality) isConstraint()   {}
func (c NonlinearInequality) isConstraint() {}
func (c NChooseK) isConstraint()            {}
func (c InterpointEquality) isConstraint()  {}

func (c LinearEquality) String() string {
	return "linear-equality[" + strings.Join(c.Features, ",") + "]"
}

func (c LinearInequality) String() string {
	return "linear-inequality[" + strings.Join(c.Features, ",") + "]"
}

func (c NonlinearEquality) String() string {
	return "nonlinear-equality[" + strings.Join(c.Features, ",") + "]"
}

func (c NonlinearInequality) String() string {
	return "nonlinear-inequality[" + strings.Join(c.Features, ",") + "]"
}

func (c NChooseK) String() string {
	return fmt.Sprintf("n-choose-k[%s;max=%d]", strings.Join(c.Features, ","), c.MaxCount)
}

func (c InterpointEquality) String() string {
	return fmt.Sprintf("interpoint-equality[%s;multiplicity=%d]", c.Feature, c.Multiplicity)
}
