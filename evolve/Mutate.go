package evolve

import (
	"math/rand"

	"github.com/samuelfneumann/gnpengine/genome"
)

// MutateStart rewires every individual's start nodes: each start node
// independently resamples its next judgment node with probability
// 1/rate (spec.md §4.6 step 5, "rate 1/Muratep").
func MutateStart(pop *genome.Population, rng *rand.Rand, rate int) {
	for _, ind := range pop.Individuals {
		changed := false
		for k := range ind.StartNext {
			if bernoulli(rng, rate) {
				ind.StartNext[k] = ind.P() + rng.Intn(ind.J())
				changed = true
			}
		}
		if changed {
			ind.CopyGenesToNodes()
		}
	}
}

// MutateJudgmentRewire resamples the next-node gene of judgment nodes
// belonging to individuals in [lo, hi), each site independently at
// probability 1/rate (spec.md §4.6 step 5, individuals [40,80)).
func MutateJudgmentRewire(pop *genome.Population, rng *rand.Rand, rate, lo, hi int) {
	forRange(pop, lo, hi, func(ind *genome.Individual) bool {
		changed := false
		for n := range ind.JudgeNext {
			if bernoulli(rng, rate) {
				ind.JudgeNext[n] = ind.P() + rng.Intn(ind.J())
				changed = true
			}
		}
		return changed
	})
}

// MutateDelay resamples the delay gene of judgment nodes belonging to
// individuals in [lo, hi), each site independently at probability
// 1/rate. When adaptive is true it draws from Roulette(mem.DelayWeights())
// when that table is non-empty, falling back to a uniform draw in
// [0,maxDelay] otherwise (spec.md §4.6 step 5, individuals [40,120)).
func MutateDelay(pop *genome.Population, rng *rand.Rand, rate, lo, hi, maxDelay int,
	mem *AdaptiveMemory, adaptive bool) {

	weights := mem.DelayWeights()
	forRange(pop, lo, hi, func(ind *genome.Individual) bool {
		changed := false
		for n := range ind.JudgeDelay {
			if !bernoulli(rng, rate) {
				continue
			}
			if adaptive {
				if idx, active := Roulette(weights, rng); active {
					ind.JudgeDelay[n] = idx
					changed = true
					continue
				}
			}
			ind.JudgeDelay[n] = rng.Intn(maxDelay + 1)
			changed = true
		}
		return changed
	})
}

// MutateAttr resamples the attribute gene of judgment nodes belonging to
// individuals in [lo, hi), each site independently at probability
// 1/rate, with the same adaptive-roulette-or-uniform choice as
// MutateDelay (spec.md §4.6 step 5, individuals [80,120)).
func MutateAttr(pop *genome.Population, rng *rand.Rand, rate, lo, hi, numAttrs int,
	mem *AdaptiveMemory, adaptive bool) {

	weights := mem.AttrWeights()
	forRange(pop, lo, hi, func(ind *genome.Individual) bool {
		changed := false
		for n := range ind.JudgeAttr {
			if !bernoulli(rng, rate) {
				continue
			}
			if adaptive {
				if idx, active := Roulette(weights, rng); active {
					ind.JudgeAttr[n] = idx
					changed = true
					continue
				}
			}
			ind.JudgeAttr[n] = rng.Intn(numAttrs)
			changed = true
		}
		return changed
	})
}

// bernoulli reports a success with probability 1/rate.
func bernoulli(rng *rand.Rand, rate int) bool {
	return rng.Intn(rate) == 0
}

// forRange applies mutate to every individual with a position in
// [lo, hi), refreshing its execution view whenever mutate reports a
// change.
func forRange(pop *genome.Population, lo, hi int, mutate func(*genome.Individual) bool) {
	if hi > pop.M() {
		hi = pop.M()
	}
	for i := lo; i < hi; i++ {
		ind := pop.Individuals[i]
		if mutate(ind) {
			ind.CopyGenesToNodes()
		}
	}
}
