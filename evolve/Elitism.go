package evolve

import "github.com/samuelfneumann/gnpengine/genome"

// elite cohort width: positions an elite individual is cloned into beyond
// its own rank slot (spec.md §4.6 step 3: rank[i], rank[i]+40, rank[i]+80).
const cohortStride = 40

// Elitism copies every individual whose rank is below eliteSize into
// three positional cohorts: rank[i], rank[i]+cohortStride,
// rank[i]+2*cohortStride, i.e. rank[i], rank[i]+40, rank[i]+80, whatever
// eliteSize is; targets at or beyond M are skipped (spec.md §4.6 step 3; §3 calls these roles "elite 0..39, clones 40..79
// and 80..119"). Source individuals are snapshotted before any writes so
// that an elite individual being both a source and, transiently, a write
// target never observes a partially-overwritten read.
func Elitism(pop *genome.Population, rank []int, eliteSize int) {
	type snapshot struct {
		startNext, judgeAttr, judgeNext, judgeDelay []int
		fitness                                     float64
	}

	snapshots := make(map[int]snapshot)
	for i, ind := range pop.Individuals {
		if rank[i] >= eliteSize {
			continue
		}
		snapshots[rank[i]] = snapshot{
			startNext:  append([]int(nil), ind.StartNext...),
			judgeAttr:  append([]int(nil), ind.JudgeAttr...),
			judgeNext:  append([]int(nil), ind.JudgeNext...),
			judgeDelay: append([]int(nil), ind.JudgeDelay...),
			fitness:    ind.Fitness,
		}
	}

	for base, snap := range snapshots {
		for _, target := range []int{base, base + cohortStride, base + 2*cohortStride} {
			if target >= pop.M() {
				continue
			}
			dst := pop.Individuals[target]
			copy(dst.StartNext, snap.startNext)
			copy(dst.JudgeAttr, snap.judgeAttr)
			copy(dst.JudgeNext, snap.judgeNext)
			copy(dst.JudgeDelay, snap.judgeDelay)
			dst.Fitness = snap.fitness
			dst.CopyGenesToNodes()
		}
	}
}
