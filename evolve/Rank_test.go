package evolve

import (
	"testing"

	"github.com/samuelfneumann/gnpengine/genome"
)

func TestRankProducesPermutation(t *testing.T) {
	pop := genome.NewPopulation(5, 2, 5)
	fitness := []float64{3, 1, 4, 1.5, 2}
	for i, f := range fitness {
		pop.Individuals[i].Fitness = f
	}

	rank := Rank(pop)
	seen := make([]bool, len(rank))
	for _, r := range rank {
		if r < 0 || r >= len(rank) || seen[r] {
			t.Fatalf("Rank() is not a permutation: %v", rank)
		}
		seen[r] = true
	}

	// Individual 2 has the highest fitness, so it must be rank 0.
	if rank[2] != 0 {
		t.Errorf("rank[2] = %d, want 0 (highest fitness)", rank[2])
	}
}

func TestElitismClonesTopIndividuals(t *testing.T) {
	pop := genome.NewPopulation(90, 2, 3)
	best := pop.Individuals[5]
	best.JudgeAttr[0] = 7
	best.Fitness = 100

	rank := Rank(pop)
	Elitism(pop, rank, 1)

	eliteIdx := -1
	for i, r := range rank {
		if r == 0 {
			eliteIdx = i
		}
	}
	if eliteIdx < 0 {
		t.Fatal("no individual at rank 0")
	}

	// Elitism must clone rank 0 into its own rank slot and the two cohorts
	// 40 and 80 positions beyond it (spec.md §4.6 step 3).
	base := rank[eliteIdx]
	for _, target := range []int{base, base + 40, base + 80} {
		if target >= pop.M() {
			continue
		}
		clone := pop.Individuals[target]
		if clone.JudgeAttr[0] != 7 || clone.Fitness != 100 {
			t.Errorf("position %d: clone mismatch: %+v", target, clone)
		}
	}
}
