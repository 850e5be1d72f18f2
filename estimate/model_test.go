package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/doekit/doekit/domain"
)

func testDomain(t *testing.T) *domain.Domain {
	t.Helper()
	dom, err := domain.NewDomain([]domain.Input{
		{Key: "x1", LowerBound: 0, UpperBound: 1},
		{Key: "x2", LowerBound: 0, UpperBound: 1},
		{Key: "x3", LowerBound: 0, UpperBound: 1},
	}, nil)
	require.NoError(t, err)
	return dom
}

func TestModelBuilders(t *testing.T) {
	assert := require.New(t)
	dom := testDomain(t)

	assert.Equal([]string{"1", "x1", "x2", "x3"}, Linear(dom).Names())
	assert.Equal(
		[]string{"1", "x1", "x2", "x3", "x1**2", "x2**2", "x3**2"},
		LinearAndQuadratic(dom).Names(),
	)
	assert.Equal(
		[]string{"1", "x1", "x2", "x3", "x1:x2", "x1:x3", "x2:x3"},
		LinearAndInteractions(dom).Names(),
	)
	assert.Equal(
		[]string{"1", "x1", "x2", "x3", "x1:x2", "x1:x3", "x2:x3", "x1**2", "x2**2", "x3**2"},
		FullyQuadratic(dom).Names(),
	)
}

func TestModelTermEvaluation(t *testing.T) {
	assert := require.New(t)
	dom := testDomain(t)

	point := []float64{2, 3, 5}
	model := FullyQuadratic(dom)
	want := map[string]float64{
		"1": 1, "x1": 2, "x2": 3, "x3": 5,
		"x1:x2": 6, "x1:x3": 10, "x2:x3": 15,
		"x1**2": 4, "x2**2": 9, "x3**2": 25,
	}
	for _, term := range model {
		assert.Equal(want[term.Name], term.Eval(point), term.Name)
	}
}

func TestModelFromKeyword(t *testing.T) {
	assert := require.New(t)
	dom := testDomain(t)

	for keyword, wantTerms := range map[string]int{
		"linear":                  4,
		"linear-and-quadratic":    7,
		"linear-and-interactions": 7,
		"fully-quadratic":         10,
	} {
		model, err := ModelFromKeyword(keyword, dom)
		assert.NoError(err)
		assert.Len(model, wantTerms, keyword)
	}

	_, err := ModelFromKeyword("cubic", dom)
	assert.Error(err)
}
