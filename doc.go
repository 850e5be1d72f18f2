// Package doekit compiles declarative design-of-experiments (DoE) problems into
// the numeric objects a nonlinear-programming solver consumes.
//
// A problem is described by a domain: an ordered list of continuous input
// variables and a heterogeneous list of abstract constraints. doekit
// translates these constraints onto a flattened multi-experiment decision
// vector (n_experiments × D features, row-major) and emits solver-ready
// records: coefficient matrices with bound vectors for linear constraints,
// callable residual/Jacobian pairs for nonlinear constraints, and box bounds
// for cardinality ("choose-k") constraints.
//
// doekit supports the following constraint kinds:
//   - linear equality / inequality
//   - nonlinear equality / inequality
//   - n-choose-k (cardinality)
//   - interpoint equality
//
// doekit does not solve the design-optimization problem; it only prepares its
// constraint set. The symbolic-formula facility, the feasible-point sampler
// and the NLP solver are external collaborators.
package doekit

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
