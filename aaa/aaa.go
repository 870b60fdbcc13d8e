// Package aaa implements the Adaptive Antoulas-Anderson algorithm, which
// builds a barycentric rational approximant of adaptively chosen degree
// for a target given either as a finite sample set ([Discrete]) or as a
// function on the interval [-1, 1] ([Continuum]).
//
// Both variants share the same greedy skeleton: each iteration extends a
// Cauchy/Loewner linear system by one support point, extracts barycentric
// weights from the smallest right singular vector of the Loewner block,
// measures the worst-case residual over the remaining test points and
// promotes the worst of them to a support point, until a tolerance,
// degree-cap or stagnation rule fires. The returned model is built from
// the best recorded iterate, which is not necessarily the last one.
package aaa

import (
	"math"
	"math/cmplx"

	"github.com/google/go-cmp/cmp"
)

const (
	// DefaultMaxDegree is the degree cap used when Parameters.MaxDegree
	// is left zero.
	DefaultMaxDegree = 100

	// DefaultTol is the relative tolerance used when Parameters.Tol is
	// left zero.
	DefaultTol = 1e-13

	// DefaultStagnation is the stagnation lookahead used when
	// Parameters.Stagnation is left zero.
	DefaultStagnation = 10

	// DefaultRefinement is the continuum test-grid density used when
	// Parameters.Refinement is left zero.
	DefaultRefinement = 3
)

const (
	// The stagnation rule only trips once the best error is already below
	// this fraction of the function scale, so noisy early iterations
	// cannot terminate the search prematurely.
	stagnationGate = 1e-2

	// Reciprocal substituted for a Cauchy entry whose denominator is an
	// exact duplicate of the newest support point. Large enough to make
	// the entry dominate, small enough that its square stays finite.
	degenerateRecip = 1e100

	// An imaginary part below imagZeroTol (relative to the magnitude) is
	// treated as numerically zero, both for the bad-pole test and for the
	// real down-cast of a finished continuum model.
	imagZeroTol = 1e-13
)

// Parameters is a struct storing the parameters shared by the Discrete
// and Continuum solvers. Zero values are replaced by the documented
// defaults.
type Parameters struct {
	// MaxDegree is the largest numerator/denominator degree considered.
	MaxDegree int

	// Tol is the relative error tolerance: the search stops once the
	// best worst-case error drops below Tol times the sample scale.
	Tol float64

	// Stagnation is the number of iterations without improvement of the
	// best iterate after which the search stops, provided a reasonably
	// good fit already exists.
	Stagnation int

	// Refinement controls the density of the per-iteration test grid in
	// continuum mode. Ignored by Discrete.
	Refinement int
}

func (p Parameters) complete() Parameters {
	if p.MaxDegree <= 0 {
		p.MaxDegree = DefaultMaxDegree
	}
	if p.Tol <= 0 {
		p.Tol = DefaultTol
	}
	if p.Stagnation <= 0 {
		p.Stagnation = DefaultStagnation
	}
	if p.Refinement <= 0 {
		p.Refinement = DefaultRefinement
	}
	return p
}

// IterationRecord is an immutable snapshot of one iteration of either
// solver: the active support set, the weights it produced and the
// worst-case error they achieved. Records are appended, never mutated,
// so the best iterate can be selected retroactively.
type IterationRecord struct {
	// Indices are the sample indices of the support points, in insertion
	// order. Discrete mode only.
	Indices []int

	// Support, Values and Weights define the candidate model of this
	// iteration, in insertion order.
	Support []complex128
	Values  []complex128
	Weights []complex128

	// Err is the infinity norm of the residual over the test points.
	Err float64

	// Poles are the poles of the candidate model. Continuum mode only.
	Poles []complex128

	// BadPoles counts poles that are numerically real with magnitude at
	// most one, i.e. inside the approximation interval. Continuum mode
	// only; a candidate with BadPoles > 0 is never selected as best.
	BadPoles int
}

// Equal reports whether the receiver and other hold the same snapshot.
func (rec *IterationRecord) Equal(other *IterationRecord) (res bool) {

	if rec == nil && other == nil {
		return true
	}

	if (rec != nil && other == nil) || (rec == nil && other != nil) {
		return false
	}

	res = cmp.Equal(rec.Indices, other.Indices)
	res = res && cmp.Equal(rec.Support, other.Support)
	res = res && cmp.Equal(rec.Values, other.Values)
	res = res && cmp.Equal(rec.Weights, other.Weights)
	res = res && rec.Err == other.Err
	res = res && cmp.Equal(rec.Poles, other.Poles)
	res = res && rec.BadPoles == other.BadPoles

	return
}

// countBadPoles returns the number of poles that are numerically real
// and of magnitude at most one.
func countBadPoles(poles []complex128) (bad int) {
	for _, p := range poles {
		m := cmplx.Abs(p)
		if math.Abs(imag(p)) <= imagZeroTol*math.Max(1, m) && m <= 1 {
			bad++
		}
	}
	return
}
