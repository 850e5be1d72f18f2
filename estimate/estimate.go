package estimate

import (
	"errors"
	"fmt"

	"github.com/doekit/doekit/domain"
	"github.com/doekit/doekit/internal/linalg"
)

// defaultEpsilon is the eigenvalue magnitude below which an eigenvalue of the
// information matrix counts as zero.
const defaultEpsilon = 1e-7

// Sampler draws feasible points from a domain. It is an external
// collaborator; count rows of dom.NumInputs() values each are expected, in
// domain column order.
type Sampler interface {
	Sample(dom *domain.Domain, count int) ([][]float64, error)
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(dom *domain.Domain, count int) ([][]float64, error)

func (f SamplerFunc) Sample(dom *domain.Domain, count int) ([][]float64, error) {
	return f(dom, count)
}

// Option alters the behavior of NumZeroEigvals.
type Option func(*config) error

type config struct {
	epsilon float64
}

// WithEpsilon overrides the zero-eigenvalue threshold.
func WithEpsilon(eps float64) Option {
	return func(cfg *config) error {
		if eps <= 0 {
			return errors.New("epsilon must be positive")
		}
		cfg.epsilon = eps
		return nil
	}
}

// NumZeroEigvals estimates the number of eigenvalues of the design's
// information matrix that are necessarily zero because of equality
// constraints: it draws len(model)+3 feasible points, builds the model value
// matrix over them and counts near-zero eigenvalues of its Gram matrix. The
// result is a diagnostic lower bound on the required design size.
func NumZeroEigvals(dom *domain.Domain, model Model, sampler Sampler, opts ...Option) (int, error) {
	cfg := config{epsilon: defaultEpsilon}
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return 0, fmt.Errorf("apply option: %w", err)
		}
	}
	if len(model) == 0 {
		return 0, errors.New("model has no terms")
	}

	n := len(model) + 3
	points, err := sampler.Sample(dom, n)
	if err != nil {
		return 0, fmt.Errorf("sample feasible points: %w", err)
	}
	if len(points) != n {
		return 0, fmt.Errorf("sampler returned %d points, want %d", len(points), n)
	}

	values := make([][]float64, n)
	for r, point := range points {
		if len(point) != dom.NumInputs() {
			return 0, fmt.Errorf("sampled point %d has %d values, want %d", r, len(point), dom.NumInputs())
		}
		values[r] = make([]float64, len(model))
		for t, term := range model {
			values[r][t] = term.Eval(point)
		}
	}

	var count int
	for _, eig := range linalg.SymEigvals(linalg.Gram(values)) {
		if eig <= cfg.epsilon && eig >= -cfg.epsilon {
			count++
		}
	}
	return count, nil
}
