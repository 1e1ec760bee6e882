// Package genome implements the GNP graph genome described in spec.md
// §3/§4.2: P start nodes and J judgment nodes per individual, carrying
// the (attribute, next, delay) triples the evaluation kernel walks.
//
// The gene arrays (StartNext, JudgeAttr, JudgeNext, JudgeDelay) are the
// storage the evolutionary operators mutate; Nodes is the flattened
// execution view CopyGenesToNodes materializes for the kernel, mirroring
// the teacher's split between a policy's learned weights and the
// behaviour it exposes to the environment loop.
package genome

import "math/rand"

// Node is one vertex of the flattened execution view: a start node has
// only Next set (Attr and Delay are meaningless), a judgment node has all
// three fields populated.
type Node struct {
	Attr  int
	Next  int
	Delay int
}

// Individual is a single GNP genome: P start nodes plus J judgment
// nodes, addressed as one contiguous node space [0, P+J) where indices
// [0,P) are start nodes and [P,P+J) are judgment nodes.
type Individual struct {
	p, j int

	// StartNext[k] is the judgment-node id (in [P, P+J)) start node k
	// transitions to.
	StartNext []int

	// JudgeAttr[n], JudgeNext[n], JudgeDelay[n] are the genes of
	// judgment node P+n.
	JudgeAttr  []int
	JudgeNext  []int
	JudgeDelay []int

	// Nodes is the flattened execution view; call CopyGenesToNodes to
	// refresh it after mutating the gene arrays.
	Nodes []Node

	// Fitness accumulates the reward the extractor credits each
	// generation (spec.md §4.6).
	Fitness float64
}

// NewIndividual allocates an Individual with p start nodes and j
// judgment nodes, all genes zeroed. Call InitRandom before use.
func NewIndividual(p, j int) *Individual {
	ind := &Individual{
		p:          p,
		j:          j,
		StartNext:  make([]int, p),
		JudgeAttr:  make([]int, j),
		JudgeNext:  make([]int, j),
		JudgeDelay: make([]int, j),
		Nodes:      make([]Node, p+j),
	}
	return ind
}

// P returns the number of start nodes.
func (ind *Individual) P() int { return ind.p }

// J returns the number of judgment nodes.
func (ind *Individual) J() int { return ind.j }

// InitRandom draws every gene uniformly from its legal range: StartNext
// and JudgeNext in [P, P+J), JudgeAttr in [0, numAttrs), JudgeDelay in
// [0, maxDelay].
func (ind *Individual) InitRandom(rng *rand.Rand, numAttrs, maxDelay int) {
	for k := range ind.StartNext {
		ind.StartNext[k] = ind.p + rng.Intn(ind.j)
	}
	for n := range ind.JudgeNext {
		ind.JudgeAttr[n] = rng.Intn(numAttrs)
		ind.JudgeNext[n] = ind.p + rng.Intn(ind.j)
		ind.JudgeDelay[n] = rng.Intn(maxDelay + 1)
	}
	ind.CopyGenesToNodes()
}

// CopyGenesToNodes flattens the three parallel gene arrays into the
// single (Attr, Next, Delay) triple per node that the evaluation kernel
// traverses. It must be called after any gene mutation and before the
// kernel runs.
func (ind *Individual) CopyGenesToNodes() {
	for k, next := range ind.StartNext {
		ind.Nodes[k] = Node{Attr: -1, Next: next, Delay: 0}
	}
	for n := range ind.JudgeAttr {
		ind.Nodes[ind.p+n] = Node{
			Attr:  ind.JudgeAttr[n],
			Next:  ind.JudgeNext[n],
			Delay: ind.JudgeDelay[n],
		}
	}
}

// CloneInto copies src's genes and fitness onto dst in place, avoiding
// an allocation; both must share the same P/J geometry. evolve.Elitism
// does not call it: it copies from its own gene snapshots instead.
func (dst *Individual) CloneInto(src *Individual) {
	copy(dst.StartNext, src.StartNext)
	copy(dst.JudgeAttr, src.JudgeAttr)
	copy(dst.JudgeNext, src.JudgeNext)
	copy(dst.JudgeDelay, src.JudgeDelay)
	dst.Fitness = src.Fitness
	dst.CopyGenesToNodes()
}

// Population is the fixed-size collection of M individuals the engine
// evolves. Positions carry semantic roles (spec.md §3: elite 0..39,
// clones 40..79 and 80..119).
type Population struct {
	Individuals []*Individual
}

// NewPopulation allocates m individuals, each with p start nodes and j
// judgment nodes.
func NewPopulation(m, p, j int) *Population {
	individuals := make([]*Individual, m)
	for i := range individuals {
		individuals[i] = NewIndividual(p, j)
	}
	return &Population{Individuals: individuals}
}

// InitRandom randomizes every individual in the population and resets
// the small per-individual fitness offset used to break rank ties
// (spec.md §4.6: "fitness[i] <- i * -1e-5").
func (pop *Population) InitRandom(rng *rand.Rand, numAttrs, maxDelay int) {
	for i, ind := range pop.Individuals {
		ind.InitRandom(rng, numAttrs, maxDelay)
		ind.Fitness = float64(i) * -1e-5
	}
}

// ResetFitness reseeds every individual's fitness with its tie-breaking
// offset, ready for a new generation's accumulation.
func (pop *Population) ResetFitness() {
	for i, ind := range pop.Individuals {
		ind.Fitness = float64(i) * -1e-5
	}
}

// M returns the population size.
func (pop *Population) M() int {
	return len(pop.Individuals)
}
