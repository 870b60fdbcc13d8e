package aaa

import (
	"fmt"
	"math/cmplx"

	"github.com/Pro7ech/ratfun/bary"
	"github.com/Pro7ech/ratfun/linalg"
	"github.com/Pro7ech/ratfun/utils"
)

// Discrete computes a barycentric rational approximant of data sampled
// on a fixed finite point set. The samples are partitioned into support
// points (interpolated) and test points (approximated); each iteration
// promotes the worst-approximated test point to a support point.
//
// The per-iteration state is exported after a call to [Discrete.Approximate]:
// Records holds one snapshot per iteration, History the error sequence
// (starting with the degree-0 seeding error) and Best the index of the
// selected record.
type Discrete struct {
	Parameters

	Records []IterationRecord
	History []float64
	Best    int

	// Cauchy and Loewner arenas, row-major m x maxCols. Columns are
	// appended in place across iterations; rows belonging to promoted
	// samples go stale and are never read again.
	c, l []complex128
}

// NewDiscrete instantiates a new Discrete solver from the provided
// parameters, completing zero values with the package defaults.
func NewDiscrete(p Parameters) *Discrete {
	return &Discrete{Parameters: p.complete()}
}

// Approximate runs the adaptive search on the samples z with values y
// and returns the model built from the best recorded iterate. The two
// slices must have the same length m >= 2; a duplicated sample location
// is tolerated (its Cauchy entry is substituted with a large finite
// reciprocal) but panics on malformed input are not recovered.
//
// The search stops on the first of: best error at most Tol times the
// largest sample magnitude; support size reaching MaxDegree+1; support
// size reaching (m+1)/2, beyond which the test rows could no longer
// determine the weights; Stagnation iterations without improvement once
// the best error is already below 1e-2 of the scale.
func (d *Discrete) Approximate(z, y []complex128) *bary.Rational {

	m := len(z)
	if m < 2 || len(y) != m {
		panic(fmt.Errorf("cannot Approximate: len(z)=%d and len(y)=%d must be equal and at least 2", m, len(y)))
	}

	// The rank-safety bound keeps the test-row SVD overdetermined, and
	// subsumes any MaxDegree larger than the sample set allows.
	maxCols := min(d.MaxDegree+1, (m+1)/2)

	d.Records = d.Records[:0]
	d.History = d.History[:0]
	d.Best = 0
	d.c = make([]complex128, m*maxCols)
	d.l = make([]complex128, m*maxCols)

	absY := linalg.AbsSlice(y)
	fmax := utils.MaxSlice(absY)

	var mean complex128
	for _, v := range y {
		mean += v
	}
	mean /= complex(float64(m), 0)

	// Seed the support with the sample deviating most from the mean.
	r := make([]complex128, m)
	for i := range y {
		r[i] = y[i] - mean
	}
	dev := linalg.AbsSlice(r)
	seed := utils.ArgMax(dev)
	d.History = append(d.History, dev[seed])
	r[seed] = 0

	nodeIdx := make([]int, 0, maxCols)
	nodeIdx = append(nodeIdx, seed)

	tests := make([]int, 0, m-1)
	for i := 0; i < m; i++ {
		if i != seed {
			tests = append(tests, i)
		}
	}

	rows := make([]complex128, 0, (m-1)*maxCols)

	for n := 1; ; n++ {

		// Extend the Cauchy and Loewner systems by the newest support
		// point, over the current test rows only.
		sigma := z[nodeIdx[n-1]]
		fsigma := y[nodeIdx[n-1]]
		for _, i := range tests {
			diff := z[i] - sigma
			var c complex128
			if diff == 0 {
				c = complex(degenerateRecip, 0)
			} else {
				c = 1 / diff
			}
			d.c[i*maxCols+n-1] = c
			d.l[i*maxCols+n-1] = c * (y[i] - fsigma)
		}

		// Barycentric weights: the smallest right singular vector of the
		// Loewner block restricted to the test rows.
		rows = rows[:0]
		for _, i := range tests {
			rows = append(rows, d.l[i*maxCols:i*maxCols+n]...)
		}
		w := linalg.MinRightVector(rows, len(tests), n)

		// Residual at every test point, reusing the Cauchy columns.
		var err float64
		for _, i := range tests {
			var num, den complex128
			for j := 0; j < n; j++ {
				cw := d.c[i*maxCols+j] * w[j]
				num += cw * y[nodeIdx[j]]
				den += cw
			}
			r[i] = y[i] - num/den
			if e := cmplx.Abs(r[i]); e > err {
				err = e
			}
		}

		support := make([]complex128, n)
		values := make([]complex128, n)
		for j, idx := range nodeIdx {
			support[j] = z[idx]
			values[j] = y[idx]
		}
		d.Records = append(d.Records, IterationRecord{
			Indices: append([]int(nil), nodeIdx...),
			Support: support,
			Values:  values,
			Weights: w,
			Err:     err,
		})
		d.History = append(d.History, err)

		if err < d.Records[d.Best].Err {
			d.Best = len(d.Records) - 1
		}
		best := d.Records[d.Best].Err

		if best <= d.Tol*fmax {
			break
		}
		if n == maxCols {
			break
		}
		if len(d.Records)-1-d.Best >= d.Stagnation && best < stagnationGate*fmax {
			break
		}

		// Promote the worst-approximated test point; its residual slot
		// is zeroed so a stale value can never re-select it.
		worst := 0
		for ti, i := range tests {
			if cmplx.Abs(r[i]) > cmplx.Abs(r[tests[worst]]) {
				worst = ti
			}
		}
		j := tests[worst]
		tests = append(tests[:worst], tests[worst+1:]...)
		nodeIdx = append(nodeIdx, j)
		r[j] = 0
	}

	rec := &d.Records[d.Best]

	return bary.New(rec.Support, rec.Values, rec.Weights)
}
