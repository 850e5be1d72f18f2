// Package domain defines the declarative data model of a design-of-experiments
// problem: an ordered list of continuous input variables and a closed set of
// abstract constraints over them.
//
// The ordering of inputs is load-bearing. The column index of an input in the
// flattened decision vector is its position in the domain's input sequence,
// and every matrix or Jacobian built by the compiler depends on it.
package domain

import (
	"fmt"
)

// Input is one continuous decision variable, immutable once constructed.
type Input struct {
	Key        string
	LowerBound float64
	UpperBound float64
}

// NewInput returns an input with the given key and bounds.
func NewInput(key string, lowerBound, upperBound float64) (Input, error) {
	if key == "" {
		return Input{}, fmt.Errorf("%w: input key must not be empty", ErrInvalidConstraintSpec)
	}
	if lowerBound > upperBound {
		return Input{}, fmt.Errorf("%w: input %q has lower bound %v > upper bound %v",
			ErrInvalidConstraintSpec, key, lowerBound, upperBound)
	}
	return Input{Key: key, LowerBound: lowerBound, UpperBound: upperBound}, nil
}

// Domain holds the ordered inputs and constraints of one design problem. It is
// read-only after construction; callers must not mutate the slices returned by
// its accessors.
type Domain struct {
	inputs      []Input
	constraints []Constraint

	index map[string]int // input key → column index
}

// NewDomain builds a domain from ordered inputs and constraints. Input keys
// must be unique and at least one input is required.
func NewDomain(inputs []Input, constraints []Constraint) (*Domain, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: domain needs at least one input", ErrInvalidConstraintSpec)
	}
	index := make(map[string]int, len(inputs))
	for i, in := range inputs {
		if _, ok := index[in.Key]; ok {
			return nil, fmt.Errorf("%w: duplicate input key %q", ErrInvalidConstraintSpec, in.Key)
		}
		index[in.Key] = i
	}
	return &Domain{
		inputs:      inputs,
		constraints: constraints,
		index:       index,
	}, nil
}

// Inputs returns the ordered input sequence.
func (d *Domain) Inputs() []Input { return d.inputs }

// Constraints returns the ordered constraint sequence.
func (d *Domain) Constraints() []Constraint { return d.constraints }

// NumInputs returns D, the number of decision variables per experiment.
func (d *Domain) NumInputs() int { return len(d.inputs) }

// Keys returns the input keys in column order.
func (d *Domain) Keys() []string {
	keys := make([]string, len(d.inputs))
	for i, in := range d.inputs {
		keys[i] = in.Key
	}
	return keys
}

// InputIndex returns the column index of the input with the given key.
func (d *Domain) InputIndex(key string) (int, bool) {
	i, ok := d.index[key]
	return i, ok
}
