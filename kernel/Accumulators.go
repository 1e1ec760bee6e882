// Package kernel implements the evaluation kernel of spec.md §4.3: for
// every admissible time index, every individual's every start chain is
// walked up to depth KMax, and per-(individual, start, depth) counters
// and quadrant tallies are updated.
package kernel

import (
	"math"

	"github.com/samuelfneumann/gnpengine/utils/floatutils"
)

// Accumulators holds every counter the evaluation kernel updates while
// walking the population over the dataset. Shapes follow spec.md §4.3
// exactly: [i, k, d] for the chain counters, with an extra trailing
// dimension for the two future offsets or four quadrants where needed.
type Accumulators struct {
	m, p, kmax, futureSpan int

	// MatchCount[i,k,d] / EvalCount[i,k,d] count chain matches and
	// visits at depth d.
	MatchCount *grid
	EvalCount  *grid

	// AttrChain[i,k,d] / DelayChain[i,k,d] hold the attribute-id+1 and
	// delay used at depth d on the most recent traversal — a per-path
	// snapshot, not a per-match average (see spec.md §9).
	AttrChain  *grid
	DelayChain *grid

	// FutureSum / FutureSqSum / FutureMin / FutureMax are indexed
	// [i,k,d,f] for f in {0,1} mapping to t+1, t+2.
	FutureSum   *grid
	FutureSqSum *grid
	FutureMin   *grid
	FutureMax   *grid

	// QuadrantCount[i,k,d,q] tallies matches whose (X(t+1),X(t+2)) fell
	// into quadrant q.
	QuadrantCount *grid
}

// NewAccumulators allocates zeroed accumulators sized for m individuals,
// p start nodes, traversal depth kmax, and futureSpan future offsets.
func NewAccumulators(m, p, kmax, futureSpan int) *Accumulators {
	depths := kmax + 1

	acc := &Accumulators{
		m:             m,
		p:             p,
		kmax:          kmax,
		futureSpan:    futureSpan,
		MatchCount:    newGrid(m, p, depths),
		EvalCount:     newGrid(m, p, depths),
		AttrChain:     newGrid(m, p, depths),
		DelayChain:    newGrid(m, p, depths),
		FutureSum:     newGrid(m, p, depths, futureSpan),
		FutureSqSum:   newGrid(m, p, depths, futureSpan),
		FutureMin:     newGrid(m, p, depths, futureSpan),
		FutureMax:     newGrid(m, p, depths, futureSpan),
		QuadrantCount: newGrid(m, p, depths, 4),
	}
	acc.FutureMin.Fill(math.Inf(1))
	acc.FutureMax.Fill(math.Inf(-1))
	return acc
}

// ChainRow returns the full per-depth attribute-chain and delay-chain
// snapshot for individual i's start node k, via the grid's tensor-backed
// Row slice rather than a manual per-depth Get loop.
func (a *Accumulators) ChainRow(i, k int) (attrChain, delayChain []float64, err error) {
	attrChain, err = a.AttrChain.Row(i, k)
	if err != nil {
		return nil, nil, err
	}
	delayChain, err = a.DelayChain.Row(i, k)
	if err != nil {
		return nil, nil, err
	}
	return attrChain, delayChain, nil
}

// ChainStats computes the closure statistics for cell (i,k,d): sample
// mean, sample standard deviation (n-1 denominator, clamped to 0 to
// absorb floating-point underflow), and the symbolic min/max, for each
// future offset. This is an informational closure over the kernel's raw
// sums (spec.md §4.3's final paragraph) — the authoritative per-rule
// statistics always come from the admissibility filter's Stage A
// rematch, not from this method.
func (a *Accumulators) ChainStats(i, k, d int) (mean, sigma, min, max [2]float64) {
	n := a.MatchCount.Get(i, k, d)
	for f := 0; f < a.futureSpan && f < 2; f++ {
		sum := a.FutureSum.Get(i, k, d, f)
		sqSum := a.FutureSqSum.Get(i, k, d, f)
		min[f] = a.FutureMin.Get(i, k, d, f)
		max[f] = a.FutureMax.Get(i, k, d, f)

		if n <= 0 {
			continue
		}
		mean[f] = sum / n
		if n >= 2 {
			variance := (sqSum/n - mean[f]*mean[f]) * n / (n - 1)
			variance = floatutils.Clip(variance, 0, math.Inf(1))
			sigma[f] = math.Sqrt(variance)
		}
	}
	return
}
