// Package quadrant classifies pairs of future values into the four
// sign-region classes used throughout rule admissibility.
package quadrant

import "gonum.org/v1/gonum/mat"

// The four quadrants of the (sign(X(t+1)), sign(X(t+2))) plane. 0 is
// treated as the positive side (>=0), a deliberate convention carried
// from the reference implementation and documented once here rather than
// re-derived at every call site — see DESIGN.md "sign-at-zero
// convention".
const (
	Q1 = iota // x1>=0, x2>=0
	Q2        // x1<0,  x2>=0
	Q3        // x1<0,  x2<0
	Q4        // x1>=0, x2<0
	Count
)

// Of classifies (x1, x2) into one of Q1..Q4.
func Of(x1, x2 float64) int {
	switch {
	case x1 >= 0 && x2 >= 0:
		return Q1
	case x1 < 0 && x2 >= 0:
		return Q2
	case x1 < 0 && x2 < 0:
		return Q3
	default: // x1>=0 && x2<0
		return Q4
	}
}

// Dominant returns the index of the largest tally and the concentration
// (max/total) of counts. If total is zero, it returns (Q1, 0). The tally
// is held as a mat.VecDense for the duration of the bookkeeping, matching
// the dense-vector idiom used elsewhere for this kind of small fixed-size
// accumulation.
func Dominant(counts [Count]int) (dominant int, concentration float64) {
	tally := mat.NewVecDense(Count, nil)
	for q, c := range counts {
		tally.SetVec(q, float64(c))
	}

	total := mat.Sum(tally)
	if total == 0 {
		return Q1, 0
	}

	dominant = Q1
	for q := 1; q < Count; q++ {
		if tally.AtVec(q) > tally.AtVec(dominant) {
			dominant = q
		}
	}
	return dominant, tally.AtVec(dominant) / total
}

// WithinBand reports whether (x1, x2) lies within dev of the expanded
// band around dominant quadrant q, per spec.md §4.5 Stage C.
func WithinBand(q int, x1, x2, dev float64) bool {
	switch q {
	case Q1:
		return x1 >= -dev && x2 >= -dev
	case Q2:
		return x1 <= dev && x2 >= -dev
	case Q3:
		return x1 <= dev && x2 <= dev
	default: // Q4
		return x1 >= -dev && x2 <= dev
	}
}
