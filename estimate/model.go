// Package estimate provides design-size diagnostics: keyword model builders
// and a probe for the number of information-matrix eigenvalues forced to zero
// by equality constraints.
package estimate

import (
	"fmt"

	"github.com/doekit/doekit/domain"
)

// Term is one model term over a full point in domain column order.
type Term struct {
	Name string
	Eval func(point []float64) float64
}

// Model is the ordered term list of a regression model.
type Model []Term

// Names returns the term names in model order.
func (m Model) Names() []string {
	names := make([]string, len(m))
	for i, t := range m {
		names[i] = t.Name
	}
	return names
}

// ModelFromKeyword builds the model named by keyword over the domain inputs.
// Supported keywords: "linear", "linear-and-quadratic",
// "linear-and-interactions" and "fully-quadratic".
func ModelFromKeyword(keyword string, dom *domain.Domain) (Model, error) {
	switch keyword {
	case "linear":
		return Linear(dom), nil
	case "linear-and-quadratic":
		return LinearAndQuadratic(dom), nil
	case "linear-and-interactions":
		return LinearAndInteractions(dom), nil
	case "fully-quadratic":
		return FullyQuadratic(dom), nil
	default:
		return nil, fmt.Errorf("unknown model keyword %q", keyword)
	}
}

// Linear returns the intercept plus one main-effect term per input.
func Linear(dom *domain.Domain) Model {
	m := Model{intercept()}
	for i, key := range dom.Keys() {
		m = append(m, mainEffect(key, i))
	}
	return m
}

// LinearAndQuadratic returns the linear model plus one squared term per input.
func LinearAndQuadratic(dom *domain.Domain) Model {
	m := Linear(dom)
	for i, key := range dom.Keys() {
		m = append(m, square(key, i))
	}
	return m
}

// LinearAndInteractions returns the linear model plus all two-factor
// interaction terms.
func LinearAndInteractions(dom *domain.Domain) Model {
	m := Linear(dom)
	keys := dom.Keys()
	for i := range keys {
		for j := 0; j < i; j++ {
			m = append(m, interaction(keys, j, i))
		}
	}
	return m
}

// FullyQuadratic returns the linear model plus all two-factor interactions
// and one squared term per input.
func FullyQuadratic(dom *domain.Domain) Model {
	m := LinearAndInteractions(dom)
	for i, key := range dom.Keys() {
		m = append(m, square(key, i))
	}
	return m
}

func intercept() Term {
	return Term{Name: "1", Eval: func([]float64) float64 { return 1 }}
}

func mainEffect(key string, i int) Term {
	return Term{Name: key, Eval: func(point []float64) float64 { return point[i] }}
}

func square(key string, i int) Term {
	return Term{Name: key + "**2", Eval: func(point []float64) float64 { return point[i] * point[i] }}
}

func interaction(keys []string, j, i int) Term {
	return Term{Name: keys[j] + ":" + keys[i], Eval: func(point []float64) float64 { return point[j] * point[i] }}
}
