package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGram(t *testing.T) {
	assert := require.New(t)

	x := [][]float64{
		{1, 2},
		{3, 4},
	}
	assert.Equal([][]float64{{10, 14}, {14, 20}}, Gram(x))
	assert.Nil(Gram(nil))
}

func TestSymEigvals(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		want []float64
	}{
		{
			"diagonal",
			[][]float64{{3, 0, 0}, {0, 1, 0}, {0, 0, 2}},
			[]float64{1, 2, 3},
		},
		{
			"two-by-two",
			[][]float64{{2, 1}, {1, 2}},
			[]float64{1, 3},
		},
		{
			"singular",
			[][]float64{{1, 1}, {1, 1}},
			[]float64{0, 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SymEigvals(tc.a)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				require.InDelta(t, tc.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestSymEigvalsLeavesInputIntact(t *testing.T) {
	assert := require.New(t)

	a := [][]float64{{2, 1}, {1, 2}}
	SymEigvals(a)
	assert.Equal([][]float64{{2, 1}, {1, 2}}, a)
}
