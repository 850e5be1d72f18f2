package compiler

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/exp/rand"

	"github.com/doekit/doekit/domain"
)

func TestBoundsSeedDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	dom := mustDomain(t, symmetricInputs("a", "b", "c", "d", "e"),
		domain.NChooseK{Features: []string{"a", "b", "c", "d", "e"}, MaxCount: 2},
	)

	properties := gopter.NewProperties(parameters)
	properties.Property("same seed yields identical bounds", prop.ForAll(
		func(seed uint64) bool {
			first, err := NChooseKBounds(dom, 9, WithRand(rand.New(rand.NewSource(seed))))
			if err != nil {
				return false
			}
			second, err := NChooseKBounds(dom, 9, WithRand(rand.New(rand.NewSource(seed))))
			if err != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLinearNormalizationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("every experiment block has unit L2 norm", prop.ForAll(
		func(c1, c2, c3 float64) bool {
			d, err := domain.NewDomain(unitInputs("a", "b", "c"), []domain.Constraint{
				domain.LinearInequality{
					Features:     []string{"a", "b", "c"},
					Coefficients: []float64{c1, c2, c3},
					RHS:          1,
				},
			})
			if err != nil {
				return false
			}
			compiled, err := Compile(d, 3)
			if err != nil {
				return false
			}
			lc := compiled[0].(*LinearConstraint)
			rows, cols := lc.A.Dims()
			const nInputs = 3
			for i := 0; i < rows; i++ {
				var norm float64
				for j := 0; j < cols; j++ {
					v := lc.A.At(i, j)
					if v != 0 && (j < i*nInputs || j >= (i+1)*nInputs) {
						return false // nonzero outside the experiment block
					}
					norm += v * v
				}
				if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0.1, 100),
		gen.Float64Range(0.1, 100),
		gen.Float64Range(0.1, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
