package aaa

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/Pro7ech/ratfun/bary"
	"github.com/Pro7ech/ratfun/linalg"
	"github.com/Pro7ech/ratfun/utils"
)

// GridRefiner supplies the per-iteration test grid of the Continuum
// solver.
type GridRefiner interface {
	// Refine returns a sorted sample grid over [-1, 1] for the given
	// sorted support points. The grid should avoid the support points
	// (coincidences are tolerated but waste the sample), must resolve
	// the gaps between them, and must grow strictly with the density
	// hint.
	Refine(nodes []float64, density int) []float64
}

// ChebyshevRefiner is the default GridRefiner. In every gap between
// adjacent support points it places open Chebyshev points, so samples
// cluster toward the support where the approximant changes fastest. The
// per-gap count shrinks as the support grows and increases with the
// density hint.
type ChebyshevRefiner struct{}

// Refine implements [GridRefiner].
func (ChebyshevRefiner) Refine(nodes []float64, density int) []float64 {

	perGap := density + 64/len(nodes)

	grid := make([]float64, 0, (len(nodes)-1)*perGap)
	for g := 0; g+1 < len(nodes); g++ {
		mid := 0.5 * (nodes[g] + nodes[g+1])
		half := 0.5 * (nodes[g+1] - nodes[g])
		for k := 1; k <= perGap; k++ {
			grid = append(grid, mid+half*math.Cos(math.Pi*(float64(k)-0.5)/float64(perGap)))
		}
	}

	sort.Float64s(grid)

	return grid
}

// Continuum computes a barycentric rational approximant of a function on
// the interval [-1, 1]. Unlike [Discrete] it has no fixed sample set:
// every iteration re-samples a refined test grid sized to the current
// support, and candidate models are additionally screened for spurious
// real poles inside the interval before they can become the best iterate.
//
// Records, History and Best are exported after a call to
// [Continuum.Approximate]; Best is -1 when no pole-free iterate was found.
type Continuum struct {
	Parameters

	// Refiner produces the per-iteration test grid. Defaults to
	// [ChebyshevRefiner].
	Refiner GridRefiner

	Records []IterationRecord
	History []float64
	Best    int
}

// NewContinuum instantiates a new Continuum solver from the provided
// parameters, completing zero values with the package defaults.
func NewContinuum(p Parameters) *Continuum {
	return &Continuum{Parameters: p.complete(), Refiner: ChebyshevRefiner{}}
}

// Approximate runs the adaptive search on f over [-1, 1] and returns the
// model built from the best recorded pole-free iterate, its support
// sorted by location and down-cast to real storage when numerically
// real. If no pole-free iterate exists by the time MaxDegree is reached,
// the smallest-error iterate is returned regardless; callers needing to
// detect that must inspect Best and Records.
func (c *Continuum) Approximate(f func(float64) complex128) *bary.Rational {

	refiner := c.Refiner
	if refiner == nil {
		refiner = ChebyshevRefiner{}
	}

	c.Records = c.Records[:0]
	c.History = c.History[:0]
	c.Best = -1

	// The two endpoints keep the initial interpolant defined on the
	// whole interval.
	nodes := []float64{-1, 1}
	fNodes := []complex128{f(-1), f(1)}

	for {

		n := len(nodes)

		sorted := append([]float64(nil), nodes...)
		sort.Float64s(sorted)
		grid := refiner.Refine(sorted, c.Refinement)

		fGrid := make([]complex128, len(grid))
		for i, x := range grid {
			fGrid[i] = f(x)
		}

		fmax := math.Max(linalg.InfNorm(fNodes), linalg.InfNorm(fGrid))

		// Fresh Cauchy and Loewner matrices: the grid size changes every
		// iteration, so there is no bound to preallocate against.
		rows := len(grid)
		cauchy := make([]complex128, rows*n)
		loewner := make([]complex128, rows*n)
		for i, x := range grid {
			for j, s := range nodes {
				recip := complex(degenerateRecip, 0)
				if diff := x - s; diff != 0 {
					recip = complex(1/diff, 0)
				}
				cauchy[i*n+j] = recip
				loewner[i*n+j] = recip * (fGrid[i] - fNodes[j])
			}
		}

		w := linalg.MinRightVector(loewner, rows, n)

		r := make([]complex128, rows)
		var err float64
		for i := range grid {
			var num, den complex128
			for j := 0; j < n; j++ {
				cw := cauchy[i*n+j] * w[j]
				num += cw * fNodes[j]
				den += cw
			}
			r[i] = fGrid[i] - num/den
			if e := cmplx.Abs(r[i]); e > err {
				err = e
			}
		}

		support := make([]complex128, n)
		for j, s := range nodes {
			support[j] = complex(s, 0)
		}
		values := append([]complex128(nil), fNodes...)

		// Screen for real poles inside the interval: such a candidate is
		// singular on its own domain and never acceptable as best.
		poles := bary.New(support, values, w).Poles()
		bad := countBadPoles(poles)

		c.Records = append(c.Records, IterationRecord{
			Support:  support,
			Values:   values,
			Weights:  w,
			Err:      err,
			Poles:    poles,
			BadPoles: bad,
		})
		c.History = append(c.History, err)

		if bad == 0 && (c.Best < 0 || err < c.Records[c.Best].Err) {
			c.Best = len(c.Records) - 1
		}

		// Tolerance and stagnation are judged against the validity
		// filtered best: a run that never produces a pole-free candidate
		// keeps searching until the degree cap.
		if c.Best >= 0 {
			best := c.Records[c.Best].Err
			if best <= c.Tol*fmax {
				break
			}
			if len(c.Records)-1-c.Best >= c.Stagnation && best < stagnationGate*fmax {
				break
			}
		}
		if n == c.MaxDegree+1 {
			break
		}

		j := utils.ArgMax(linalg.AbsSlice(r))
		nodes = append(nodes, grid[j])
		fNodes = append(fNodes, fGrid[j])
	}

	best := c.Best
	if best < 0 {
		minErr := utils.MinSlice(c.History)
		for i, e := range c.History {
			if e == minErr {
				best = i
				break
			}
		}
	}

	return finishContinuum(&c.Records[best])
}

// finishContinuum sorts the record's support by location and down-casts
// to real storage when every value and weight is numerically real.
// Support points accumulate in worst-residual order, not spatial order.
func finishContinuum(rec *IterationRecord) *bary.Rational {

	n := len(rec.Support)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(i, j int) bool {
		return real(rec.Support[perm[i]]) < real(rec.Support[perm[j]])
	})

	support := make([]complex128, n)
	values := make([]complex128, n)
	weights := make([]complex128, n)
	for i, p := range perm {
		support[i] = rec.Support[p]
		values[i] = rec.Values[p]
		weights[i] = rec.Weights[p]
	}

	if numericallyReal(values) && numericallyReal(weights) {
		for i := range values {
			values[i] = complex(real(values[i]), 0)
			weights[i] = complex(real(weights[i]), 0)
		}
	}

	return bary.New(support, values, weights)
}

func numericallyReal(v []complex128) bool {
	for _, c := range v {
		if math.Abs(imag(c)) > imagZeroTol*math.Max(1, cmplx.Abs(c)) {
			return false
		}
	}
	return true
}
