package rules

import (
	"math"

	"github.com/samuelfneumann/gnpengine/config"
	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/quadrant"
	"github.com/samuelfneumann/gnpengine/utils/floatutils"
	"github.com/samuelfneumann/gnpengine/utils/intutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Rejection categorizes why a candidate failed to become a rule, or that
// it passed, matching the category-specific tallies of spec.md §4.5/§7.
type Rejection int

const (
	Passed Rejection = iota
	RejectedMinAttrs
	RejectedConcentration
	RejectedDeviation
	RejectedMinsup
	RejectedMinCount
	RejectedMaxsigma
)

// Admit runs the five-stage admissibility filter of spec.md §4.5 against
// a candidate literal set. Stage A recomputes matches over the rule's
// own safe range (replacing the kernel's kernel-wide raw count); Stage B
// checks quadrant concentration; Stage C checks quadrant deviation;
// Stage D checks the support floor; Stage E checks dispersion. The first
// stage that fails returns immediately with its Rejection code.
func Admit(cfg config.Config, ds *dataset.Dataset, literals []Literal) (Rule, Rejection) {
	delays := make([]int, len(literals))
	for i, lit := range literals {
		delays[i] = lit.Delay
	}
	maxDelay := intutils.Max(delays...)

	// Stage A: rule-specific rematch.
	start, end := ds.SafeRangeRule(maxDelay, cfg.FutureSpan)
	matched := make([]int, 0, end-start)
	for t := start; t < end; t++ {
		if allLiteralsHold(ds, literals, t) {
			matched = append(matched, t)
		}
	}

	// Stage B: quadrant concentration, over matches whose future values
	// are both finite ("valid" matches, spec.md §9).
	var quadrants [4]int
	validTotal := 0
	for _, t := range matched {
		x1, x2 := ds.Future(t, 1), ds.Future(t, 2)
		if math.IsNaN(x1) || math.IsNaN(x2) {
			continue
		}
		quadrants[quadrant.Of(x1, x2)]++
		validTotal++
	}

	dominant, concentration := quadrant.Dominant(quadrants)
	if concentration < cfg.QuadrantThresholdRate {
		return Rule{}, RejectedConcentration
	}

	// Stage C: quadrant deviation. Matches with a non-finite future
	// value are skipped here too, per the same "silently skip" rule
	// Stage B applies.
	for _, t := range matched {
		x1, x2 := ds.Future(t, 1), ds.Future(t, 2)
		if math.IsNaN(x1) || math.IsNaN(x2) {
			continue
		}
		if !quadrant.WithinBand(dominant, x1, x2, cfg.DeviationThreshold) {
			return Rule{}, RejectedDeviation
		}
	}

	// Stage D: support floor.
	m := len(matched)
	denom := cfg.SupportDenominator(ds.N(), maxDelay)
	supportRate := 0.0
	if denom > 0 {
		supportRate = float64(m) / denom
	}
	if supportRate < cfg.Minsup {
		return Rule{}, RejectedMinsup
	}
	if m < cfg.MinSupportCount {
		return Rule{}, RejectedMinCount
	}

	// Stage E: dispersion.
	var mean, sigma, min, max [2]float64
	for f := 0; f < 2; f++ {
		values := make([]float64, 0, len(matched))
		for _, t := range matched {
			xf := ds.Future(t, f+1)
			if !math.IsNaN(xf) {
				values = append(values, xf)
			}
		}
		if len(values) == 0 {
			continue
		}
		if len(values) == 1 {
			mean[f], sigma[f] = values[0], 0
		} else {
			var variance float64
			mean[f], variance = stat.MeanVariance(values, nil)
			variance = floatutils.Clip(variance, 0, math.Inf(1))
			sigma[f] = math.Sqrt(variance)
		}
		if sigma[f] > cfg.Maxsigma {
			return Rule{}, RejectedMaxsigma
		}

		min[f], max[f] = floats.Min(values), floats.Max(values)
	}

	rule := Rule{
		Literals:       append([]Literal(nil), literals...),
		MatchedIndices: matched,
		SupportCount:   m,
		SupportRate:    supportRate,
		Mean:           mean,
		Sigma:          sigma,
		Min:            min,
		Max:            max,
		Quadrants:      quadrants,
		Dominant:       dominant,
		Concentration:  concentration,
		HighSupport:    supportRate >= 2*cfg.Minsup,
		LowVariance:    math.Max(sigma[0], sigma[1]) <= 0.5*cfg.Maxsigma,
	}
	return rule, Passed
}

func allLiteralsHold(ds *dataset.Dataset, literals []Literal, t int) bool {
	for _, lit := range literals {
		idx := t - lit.Delay
		if idx < 0 || ds.Attr(idx, lit.Attr-1) != 1 {
			return false
		}
	}
	return true
}
