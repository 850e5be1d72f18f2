package domain

import "errors"

// Errors returned while validating a domain or compiling its constraints.
// They are raised eagerly, before any solver work begins, and can be tested
// with errors.Is.
var (
	// ErrUnsupportedConstraint signals a constraint kind outside the closed
	// variant set understood by the compiler.
	ErrUnsupportedConstraint = errors.New("unsupported constraint kind")

	// ErrInvalidConstraintSpec signals malformed constraint fields, e.g. an
	// empty feature list or mismatched coefficient/feature lengths.
	ErrInvalidConstraintSpec = errors.New("invalid constraint specification")

	// ErrUnknownFeature signals a constraint referencing a key absent from
	// the domain inputs.
	ErrUnknownFeature = errors.New("feature is not part of the domain")

	// ErrInfeasibleCardinalityBounds signals an n-choose-k constraint over a
	// feature whose declared bounds exclude zero; such a feature could never
	// be forced inactive.
	ErrInfeasibleCardinalityBounds = errors.New("zero is outside the bounds of a cardinality-constrained feature")

	// ErrOverlappingCardinalityConstraints signals two n-choose-k constraints
	// sharing a feature; legalization as bounds requires pairwise disjoint
	// feature sets.
	ErrOverlappingCardinalityConstraints = errors.New("n-choose-k feature sets are not pairwise disjoint")
)
