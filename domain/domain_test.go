package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInput(t *testing.T) {
	assert := require.New(t)

	in, err := NewInput("x1", -1, 1)
	assert.NoError(err)
	assert.Equal(Input{Key: "x1", LowerBound: -1, UpperBound: 1}, in)

	_, err = NewInput("", 0, 1)
	assert.ErrorIs(err, ErrInvalidConstraintSpec)

	_, err = NewInput("x1", 2, 1)
	assert.ErrorIs(err, ErrInvalidConstraintSpec)
}

func TestNewDomain(t *testing.T) {
	assert := require.New(t)

	inputs := []Input{
		{Key: "x1", LowerBound: 0, UpperBound: 1},
		{Key: "x2", LowerBound: -1, UpperBound: 1},
		{Key: "x3", LowerBound: 0, UpperBound: 2},
	}
	dom, err := NewDomain(inputs, nil)
	assert.NoError(err)
	assert.Equal(3, dom.NumInputs())
	assert.Equal([]string{"x1", "x2", "x3"}, dom.Keys())

	// column index is the position in the input sequence
	for i, key := range dom.Keys() {
		got, ok := dom.InputIndex(key)
		assert.True(ok)
		assert.Equal(i, got)
	}
	_, ok := dom.InputIndex("x4")
	assert.False(ok)

	_, err = NewDomain(nil, nil)
	assert.ErrorIs(err, ErrInvalidConstraintSpec)

	_, err = NewDomain([]Input{{Key: "x1"}, {Key: "x1"}}, nil)
	assert.ErrorIs(err, ErrInvalidConstraintSpec)
}

func TestConstraintString(t *testing.T) {
	assert := require.New(t)

	cases := []struct {
		constraint Constraint
		want       string
	}{
		{LinearEquality{Features: []string{"x1", "x2"}}, "linear-equality[x1,x2]"},
		{LinearInequality{Features: []string{"x1"}}, "linear-inequality[x1]"},
		{NonlinearEquality{Features: []string{"x2"}}, "nonlinear-equality[x2]"},
		{NonlinearInequality{Features: []string{"x2"}}, "nonlinear-inequality[x2]"},
		{NChooseK{Features: []string{"x1", "x3"}, MaxCount: 1}, "n-choose-k[x1,x3;max=1]"},
		{InterpointEquality{Feature: "x1", Multiplicity: 3}, "interpoint-equality[x1;multiplicity=3]"},
	}
	for _, tc := range cases {
		assert.Equal(tc.want, tc.constraint.String())
	}
}
