package evolve

import (
	"math/rand"

	"github.com/samuelfneumann/gnpengine/genome"
)

// Crossover performs uniform-node crossover between pair halves: for
// each i in [0, pairs), individuals i and i+pairs swap nkousa randomly
// chosen judgment-node (attr, next, delay) triples (spec.md §4.6 step 4).
func Crossover(pop *genome.Population, rng *rand.Rand, pairs, nkousa int) {
	for i := 0; i < pairs; i++ {
		a := pop.Individuals[i]
		b := pop.Individuals[i+pairs]

		for n := 0; n < nkousa; n++ {
			j := rng.Intn(a.J())
			a.JudgeAttr[j], b.JudgeAttr[j] = b.JudgeAttr[j], a.JudgeAttr[j]
			a.JudgeNext[j], b.JudgeNext[j] = b.JudgeNext[j], a.JudgeNext[j]
			a.JudgeDelay[j], b.JudgeDelay[j] = b.JudgeDelay[j], a.JudgeDelay[j]
		}

		a.CopyGenesToNodes()
		b.CopyGenesToNodes()
	}
}
