package evolve

import (
	"github.com/samuelfneumann/gnpengine/genome"
	"gonum.org/v1/gonum/mat"
)

// Rank computes rank[i] = |{j : fitness[j] > fitness[i]}| for every
// individual in pop, so rank 0 is the single best individual (spec.md
// §4.6 step 2). Ties are broken by the small per-individual offset
// genome.Population.ResetFitness applies at reset, so Rank itself never
// needs tie-breaking logic and always produces a permutation of
// [0, M). The fitness values being ranked are held as a mat.VecDense for
// the comparison pass.
func Rank(pop *genome.Population) []int {
	m := pop.M()
	fitness := mat.NewVecDense(m, nil)
	for i, ind := range pop.Individuals {
		fitness.SetVec(i, ind.Fitness)
	}

	rank := make([]int, m)
	for i := 0; i < m; i++ {
		r := 0
		for j := 0; j < m; j++ {
			if fitness.AtVec(j) > fitness.AtVec(i) {
				r++
			}
		}
		rank[i] = r
	}
	return rank
}
