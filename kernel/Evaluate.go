package kernel

import (
	"math"

	"github.com/samuelfneumann/gnpengine/config"
	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/genome"
	"github.com/samuelfneumann/gnpengine/quadrant"
)

// Evaluate walks every individual's every start chain over every
// admissible time index in ds, implementing the algorithm of spec.md
// §4.3. Individuals are processed 0..M-1 and start nodes 0..P-1 in index
// order, and time indices are processed in strictly increasing order, so
// that the result is deterministic for a fixed population and dataset
// (spec.md §5).
func Evaluate(cfg config.Config, ds *dataset.Dataset, pop *genome.Population) *Accumulators {
	acc := NewAccumulators(pop.M(), firstP(pop), cfg.KMax, cfg.FutureSpan)

	start, end := ds.SafeRangeKernel(cfg.MaxTimeDelay, cfg.FutureSpan)
	for t := start; t < end; t++ {
		for i, ind := range pop.Individuals {
			evaluateIndividual(acc, ds, ind, i, t, cfg.KMax)
		}
	}
	return acc
}

func firstP(pop *genome.Population) int {
	if pop.M() == 0 {
		return 0
	}
	return pop.Individuals[0].P()
}

// evaluateIndividual walks every start chain of one individual at time t,
// per the per-time algorithm in spec.md §4.3.
func evaluateIndividual(acc *Accumulators, ds *dataset.Dataset, ind *genome.Individual,
	i, t, kmax int) {

	nodes := ind.Nodes
	p := ind.P()

	for k := 0; k < p; k++ {
		acc.MatchCount.Add(1, i, k, 0)
		acc.EvalCount.Add(1, i, k, 0)

		cur := nodes[k].Next
		match := true
		depth := 0

		for cur >= p && depth < kmax {
			depth++
			attr := nodes[cur].Attr
			delay := nodes[cur].Delay

			acc.AttrChain.Set(float64(attr+1), i, k, depth)
			acc.DelayChain.Set(float64(delay), i, k, depth)

			idx := t - delay
			if idx < 0 {
				cur = k
				break
			}

			v := ds.Attr(idx, attr)
			switch v {
			case 1:
				if match {
					recordMatch(acc, ds, i, k, depth, t)
				}
				acc.EvalCount.Add(1, i, k, depth)
				cur = nodes[cur].Next
			case 0:
				acc.EvalCount.Add(1, i, k, depth)
				cur = k
			default: // missing
				acc.EvalCount.Add(1, i, k, depth)
				match = false
				cur = nodes[cur].Next
			}
		}
	}
}

// recordMatch increments the depth-d match tally for (i,k) and
// accumulates quadrant and future statistics from (X(t+1), X(t+2)),
// skipping any future offset that falls outside the dataset (NaN) per
// the "silently skip" failure semantics of spec.md §4/§7.
func recordMatch(acc *Accumulators, ds *dataset.Dataset, i, k, depth, t int) {
	acc.MatchCount.Add(1, i, k, depth)

	x1, x2 := ds.Future(t, 1), ds.Future(t, 2)
	if !math.IsNaN(x1) && !math.IsNaN(x2) {
		q := quadrant.Of(x1, x2)
		acc.QuadrantCount.Add(1, i, k, depth, q)
	}

	for f := 0; f < 2 && f < acc.futureSpan; f++ {
		xf := ds.Future(t, f+1)
		if math.IsNaN(xf) {
			continue
		}
		acc.FutureSum.Add(xf, i, k, depth, f)
		acc.FutureSqSum.Add(xf*xf, i, k, depth, f)
		if xf < acc.FutureMin.Get(i, k, depth, f) {
			acc.FutureMin.Set(xf, i, k, depth, f)
		}
		if xf > acc.FutureMax.Get(i, k, depth, f) {
			acc.FutureMax.Set(xf, i, k, depth, f)
		}
	}
}
