package compiler

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/rand"

	"github.com/doekit/doekit/domain"
	"github.com/doekit/doekit/logger"
)

// Bound is the box bound of one coordinate of the flattened decision vector.
type Bound struct {
	Lower, Upper float64
}

// NChooseKBounds rewrites the domain's n-choose-k constraints as per-experiment
// box bounds: for each experiment a randomly chosen combination of features is
// forced to [0, 0], cycling through all combinations across experiments. Every
// other coordinate keeps its input's declared bounds. The result has one entry
// per flattened coordinate, experiment-major.
//
// The rewrite is a randomized relaxation; pass WithRand for a reproducible
// outcome. It is sound only when every cardinality-constrained feature admits
// zero and the constraints' feature sets are pairwise disjoint, which
// CheckNChooseKBounds enforces first.
func NChooseKBounds(dom *domain.Domain, nExperiments int, opts ...Option) ([]Bound, error) {
	log := logger.Logger()

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply option: %w", err)
	}
	if nExperiments < 1 {
		return nil, fmt.Errorf("%w: nExperiments must be at least 1, got %d", domain.ErrInvalidConstraintSpec, nExperiments)
	}
	if err := CheckNChooseKBounds(dom); err != nil {
		return nil, err
	}

	shuffle := rand.Shuffle
	if cfg.rng != nil {
		shuffle = cfg.rng.Shuffle
	}

	// default to the declared input bounds, repeated per experiment
	d := dom.NumInputs()
	bounds := make([]Bound, nExperiments*d)
	for i := 0; i < nExperiments; i++ {
		for j, in := range dom.Inputs() {
			bounds[i*d+j] = Bound{Lower: in.LowerBound, Upper: in.UpperBound}
		}
	}

	for _, c := range dom.Constraints() {
		c, ok := c.(domain.NChooseK)
		if !ok {
			continue
		}
		nInactive := len(c.Features) - c.MaxCount
		if nInactive <= 0 {
			continue
		}

		cols := make([]int, len(c.Features))
		for i, key := range c.Features {
			cols[i], _ = dom.InputIndex(key) // validated by CheckNChooseKBounds
		}

		combos := combinations(cols, nInactive)
		shuffle(len(combos), func(a, b int) { combos[a], combos[b] = combos[b], combos[a] })

		for i := 0; i < nExperiments; i++ {
			for _, col := range combos[i%len(combos)] {
				bounds[i*d+col] = Bound{}
			}
			if i%len(combos) == len(combos)-1 {
				shuffle(len(combos), func(a, b int) { combos[a], combos[b] = combos[b], combos[a] })
			}
		}
		log.Debug().Stringer("constraint", c).Int("nbCombinations", len(combos)).Msg("legalized n-choose-k constraint as bounds")
	}
	return bounds, nil
}

// CheckNChooseKBounds verifies that the domain's n-choose-k constraints can be
// rewritten as box bounds: every referenced feature must admit zero within its
// declared bounds, and the feature sets of distinct constraints must be
// pairwise disjoint.
func CheckNChooseKBounds(dom *domain.Domain) error {
	seen := bitset.New(uint(dom.NumInputs()))
	for _, c := range dom.Constraints() {
		c, ok := c.(domain.NChooseK)
		if !ok {
			continue
		}
		if err := validateNChooseK(c); err != nil {
			return err
		}

		features := bitset.New(uint(dom.NumInputs()))
		for _, key := range c.Features {
			j, ok := dom.InputIndex(key)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownFeature, key)
			}
			in := dom.Inputs()[j]
			if in.LowerBound > 0 || in.UpperBound < 0 {
				return fmt.Errorf("%w: constraint %s references feature %q with bounds [%v, %v]",
					domain.ErrInfeasibleCardinalityBounds, c, key, in.LowerBound, in.UpperBound)
			}
			features.Set(uint(j))
		}
		if seen.Intersection(features).Any() {
			return fmt.Errorf("%w: constraint %s shares features with an earlier constraint",
				domain.ErrOverlappingCardinalityConstraints, c)
		}
		seen.InPlaceUnion(features)
	}
	return nil
}

// combinations enumerates every combination of n elements out of cols, in
// lexicographic order of positions.
func combinations(cols []int, n int) [][]int {
	var (
		out  [][]int
		comb = make([]int, 0, n)
	)
	var walk func(start int)
	walk = func(start int) {
		if len(comb) == n {
			out = append(out, append([]int(nil), comb...))
			return
		}
		// not enough elements left to complete the combination
		if len(cols)-start < n-len(comb) {
			return
		}
		for i := start; i < len(cols); i++ {
			comb = append(comb, cols[i])
			walk(i + 1)
			comb = comb[:len(comb)-1]
		}
	}
	walk(0)
	return out
}
