// Package compiler translates the abstract constraints of a design-of-experiments
// domain into solver-ready numeric records over a flattened decision vector of
// n_experiments × D features (row-major), and rewrites cardinality constraints
// as per-experiment box bounds where that encoding is sound.
package compiler

import (
	"fmt"
	"math"
	"sort"

	"github.com/doekit/doekit/domain"
	"github.com/doekit/doekit/logger"
)

// Compile translates every constraint of dom into a compiled record over a
// flattened design of nExperiments rows, preserving constraint order.
// N-choose-k constraints are dropped unless WithNChooseKEncoding is given;
// they are normally handled by NChooseKBounds instead.
func Compile(dom *domain.Domain, nExperiments int, opts ...Option) ([]Constraint, error) {
	log := logger.Logger()

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply option: %w", err)
	}
	if nExperiments < 1 {
		return nil, fmt.Errorf("%w: nExperiments must be at least 1, got %d", domain.ErrInvalidConstraintSpec, nExperiments)
	}

	out := make([]Constraint, 0, len(dom.Constraints()))
	for _, c := range dom.Constraints() {
		var (
			compiled Constraint
			err      error
		)
		switch c := c.(type) {
		case domain.LinearEquality:
			compiled, err = encodeLinear(dom, c.Features, c.Coefficients, c.RHS, nExperiments, true)
		case domain.LinearInequality:
			compiled, err = encodeLinear(dom, c.Features, c.Coefficients, c.RHS, nExperiments, false)
		case domain.NonlinearEquality:
			compiled, err = encodeNonlinear(dom, c.Features, c.Expression, c.Jacobian, nExperiments, true)
		case domain.NonlinearInequality:
			compiled, err = encodeNonlinear(dom, c.Features, c.Expression, c.Jacobian, nExperiments, false)
		case domain.NChooseK:
			if !cfg.encodeNChooseK {
				log.Debug().Stringer("constraint", c).Msg("dropping n-choose-k constraint; legalize it with NChooseKBounds")
				continue
			}
			compiled, err = encodeNChooseK(dom, c, nExperiments)
		case domain.InterpointEquality:
			compiled, err = encodeInterpoint(dom, c, nExperiments)
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedConstraint, c)
		}
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", c, err)
		}
		out = append(out, compiled)
	}

	log.Debug().Int("nbConstraints", len(out)).Int("nbExperiments", nExperiments).Msg("compiled domain constraints")
	return out, nil
}

// encodeLinear builds the block-diagonal matrix form of a linear constraint.
// The coefficient vector and right-hand side are normalized by the
// coefficients' L2 norm, which conditions the matrix for numerical solvers
// and makes bound magnitudes comparable across constraints.
func encodeLinear(dom *domain.Domain, features []string, coefficients []float64, rhs float64, nExperiments int, equality bool) (Constraint, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: empty feature list", domain.ErrInvalidConstraintSpec)
	}
	if len(features) != len(coefficients) {
		return nil, fmt.Errorf("%w: %d features but %d coefficients",
			domain.ErrInvalidConstraintSpec, len(features), len(coefficients))
	}

	var norm float64
	for _, c := range coefficients {
		norm += c * c
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil, fmt.Errorf("%w: coefficient vector is zero", domain.ErrInvalidConstraintSpec)
	}

	d := dom.NumInputs()
	row := make([]float64, d)
	for i, key := range features {
		j, ok := dom.InputIndex(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFeature, key)
		}
		row[j] = coefficients[i] / norm
	}

	a := NewMatrix(nExperiments, nExperiments*d)
	for i := 0; i < nExperiments; i++ {
		copy(a.Row(i)[i*d:(i+1)*d], row)
	}

	lb := make([]float64, nExperiments)
	ub := make([]float64, nExperiments)
	for i := range ub {
		ub[i] = rhs / norm
		if equality {
			lb[i] = rhs / norm
		} else {
			lb[i] = math.Inf(-1)
		}
	}
	return &LinearConstraint{A: a, Lb: lb, Ub: ub}, nil
}

// encodeNonlinear wraps the constraint's symbolic residual in a
// ResidualEvaluator. The compiled record carries a Jacobian only when the
// constraint supplies one; otherwise the solver differentiates numerically.
func encodeNonlinear(dom *domain.Domain, features []string, expr domain.Expression, grad domain.Gradient, nExperiments int, equality bool) (Constraint, error) {
	ev, err := NewResidualEvaluator(dom, features, expr, grad, nExperiments)
	if err != nil {
		return nil, err
	}

	compiled := &NonlinearConstraint{
		Fn: ev.Residual,
		Lb: make([]float64, nExperiments),
		Ub: make([]float64, nExperiments),
	}
	if ev.HasJacobian() {
		compiled.Jac = ev.Jacobian
	}
	if !equality {
		for i := range compiled.Lb {
			compiled.Lb[i] = math.Inf(-1)
		}
	}
	return compiled, nil
}

// encodeNChooseK encodes a cardinality constraint as a nonlinear inequality.
// The per-experiment residual is the sum of the p−k smallest absolute feature
// values, which is zero exactly when at most k of the p features are nonzero.
// This path always provides a (sub)gradient Jacobian.
func encodeNChooseK(dom *domain.Domain, c domain.NChooseK, nExperiments int) (Constraint, error) {
	if err := validateNChooseK(c); err != nil {
		return nil, err
	}
	nInactive := len(c.Features) - c.MaxCount

	expr := domain.ExpressionFunc(func(row []float64) float64 {
		var sum float64
		for _, j := range smallestAbsIndices(row, nInactive) {
			sum += math.Abs(row[j])
		}
		return sum
	})
	grad := domain.GradientFunc(func(row []float64) []float64 {
		g := make([]float64, len(row))
		for _, j := range smallestAbsIndices(row, nInactive) {
			switch {
			case row[j] > 0:
				g[j] = 1
			case row[j] < 0:
				g[j] = -1
			}
		}
		return g
	})

	ev, err := NewResidualEvaluator(dom, c.Features, expr, grad, nExperiments)
	if err != nil {
		return nil, err
	}
	lb := make([]float64, nExperiments)
	for i := range lb {
		lb[i] = math.Inf(-1)
	}
	return &NonlinearConstraint{
		Fn:  ev.Residual,
		Jac: ev.Jacobian,
		Lb:  lb,
		Ub:  make([]float64, nExperiments),
	}, nil
}

// smallestAbsIndices returns the indices of the n smallest absolute values of
// row, ties broken by index so the selection is deterministic.
func smallestAbsIndices(row []float64, n int) []int {
	if n <= 0 {
		return nil
	}
	idx := make([]int, len(row))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(row[idx[a]]) < math.Abs(row[idx[b]])
	})
	return idx[:n]
}

func validateNChooseK(c domain.NChooseK) error {
	if len(c.Features) == 0 {
		return fmt.Errorf("%w: empty feature list", domain.ErrInvalidConstraintSpec)
	}
	if c.MaxCount < 0 || c.MaxCount > len(c.Features) {
		return fmt.Errorf("%w: max count %d out of range [0, %d]",
			domain.ErrInvalidConstraintSpec, c.MaxCount, len(c.Features))
	}
	seen := make(map[string]struct{}, len(c.Features))
	for _, key := range c.Features {
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate feature %q", domain.ErrInvalidConstraintSpec, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// encodeInterpoint ties the named feature to a single value within each
// contiguous batch of multiplicity experiments: one pairwise-equality row per
// batch member after the first, with +1 at the batch head's column and −1 at
// the member's column. Rows whose member would fall beyond the last
// experiment are trimmed.
func encodeInterpoint(dom *domain.Domain, c domain.InterpointEquality, nExperiments int) (Constraint, error) {
	featureIdx, ok := dom.InputIndex(c.Feature)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFeature, c.Feature)
	}
	multiplicity := c.Multiplicity
	if multiplicity <= 0 {
		multiplicity = dom.NumInputs()
	}
	d := dom.NumInputs()
	nBatches := (nExperiments + multiplicity - 1) / multiplicity
	nRows := nBatches * (multiplicity - 1)
	if nExperiments%multiplicity != 0 {
		// the last batch is incomplete: rows pairing the batch head with
		// experiments beyond nExperiments are dropped
		nRows -= multiplicity - nExperiments%multiplicity
	}

	a := NewMatrix(nRows, d*nExperiments)
	for batch := 0; batch < nBatches; batch++ {
		for i := 0; i < multiplicity-1; i++ {
			if batch*multiplicity+i+2 > nExperiments {
				break
			}
			r := batch*(multiplicity-1) + i
			a.Set(r, batch*multiplicity*d+featureIdx, 1)
			a.Set(r, (batch*multiplicity+i+1)*d+featureIdx, -1)
		}
	}
	return &LinearConstraint{
		A:  a,
		Lb: make([]float64, nRows),
		Ub: make([]float64, nRows),
	}, nil
}
