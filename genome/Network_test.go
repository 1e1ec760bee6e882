package genome

import (
	"math/rand"
	"testing"
)

func TestInitRandomLegalRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ind := NewIndividual(10, 100)
	ind.InitRandom(rng, 5, 2)

	for _, next := range ind.StartNext {
		if next < ind.P() || next >= ind.P()+ind.J() {
			t.Fatalf("StartNext out of range: %d", next)
		}
	}
	for n := range ind.JudgeNext {
		if ind.JudgeNext[n] < ind.P() || ind.JudgeNext[n] >= ind.P()+ind.J() {
			t.Fatalf("JudgeNext out of range: %d", ind.JudgeNext[n])
		}
		if ind.JudgeAttr[n] < 0 || ind.JudgeAttr[n] >= 5 {
			t.Fatalf("JudgeAttr out of range: %d", ind.JudgeAttr[n])
		}
		if ind.JudgeDelay[n] < 0 || ind.JudgeDelay[n] > 2 {
			t.Fatalf("JudgeDelay out of range: %d", ind.JudgeDelay[n])
		}
	}
}

func TestCopyGenesToNodes(t *testing.T) {
	ind := NewIndividual(2, 3)
	ind.StartNext[0] = 2
	ind.StartNext[1] = 3
	ind.JudgeAttr[0] = 1
	ind.JudgeNext[0] = 4
	ind.JudgeDelay[0] = 2
	ind.CopyGenesToNodes()

	if ind.Nodes[0].Next != 2 || ind.Nodes[0].Attr != -1 {
		t.Errorf("start node 0 = %+v", ind.Nodes[0])
	}
	if ind.Nodes[2] != (Node{Attr: 1, Next: 4, Delay: 2}) {
		t.Errorf("judgment node 0 = %+v, want {1,4,2}", ind.Nodes[2])
	}
}

func TestCloneInto(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	src := NewIndividual(4, 10)
	src.InitRandom(rng, 3, 1)
	src.Fitness = 42

	dst := NewIndividual(4, 10)
	dst.CloneInto(src)

	for i := range src.StartNext {
		if dst.StartNext[i] != src.StartNext[i] {
			t.Fatalf("StartNext[%d] = %d, want %d", i, dst.StartNext[i], src.StartNext[i])
		}
	}
	if dst.Fitness != 42 {
		t.Errorf("Fitness = %v, want 42", dst.Fitness)
	}
}

func TestPopulationInitRandomTieBreak(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pop := NewPopulation(5, 2, 10)
	pop.InitRandom(rng, 3, 1)

	for i, ind := range pop.Individuals {
		want := float64(i) * -1e-5
		if ind.Fitness != want {
			t.Errorf("Individuals[%d].Fitness = %v, want %v", i, ind.Fitness, want)
		}
	}
}

func TestPopulationResetFitness(t *testing.T) {
	pop := NewPopulation(3, 2, 5)
	for _, ind := range pop.Individuals {
		ind.Fitness = 999
	}
	pop.ResetFitness()
	for i, ind := range pop.Individuals {
		want := float64(i) * -1e-5
		if ind.Fitness != want {
			t.Errorf("Individuals[%d].Fitness = %v, want %v", i, ind.Fitness, want)
		}
	}
}
