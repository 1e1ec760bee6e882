package rules

import (
	"github.com/samuelfneumann/gnpengine/config"
	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/genome"
	"github.com/samuelfneumann/gnpengine/kernel"
	"golang.org/x/exp/slices"
)

// Counters tallies, per spec.md §4.5/§7/§8, every candidate outcome so
// that rejected_* + passed == total_candidates and passed == unique_rules
// + duplicates can be checked.
type Counters struct {
	RejectedMinAttrs      int
	RejectedConcentration int
	RejectedDeviation     int
	RejectedMinsup        int
	RejectedMinCount      int
	RejectedMaxsigma      int
	Passed                int
	Duplicates            int
}

// Total returns the number of candidates Extract has processed.
func (c Counters) Total() int {
	return c.RejectedMinAttrs + c.RejectedConcentration + c.RejectedDeviation +
		c.RejectedMinsup + c.RejectedMinCount + c.RejectedMaxsigma + c.Passed
}

// Registry is the subset of pool.Pool's API the extractor needs: whether
// an attribute set is already present, and how to register a new rule.
// Defined here (rather than importing package pool) so rules has no
// dependency on pool — pool depends on rules instead.
type Registry interface {
	Contains(attrSet []int) bool
	Register(r Rule) error
}

// Extract implements spec.md §4.4: for every (individual, start node)
// pair, for every depth from cfg.MinAttributes to cfg.KMax, build the
// normalized candidate attribute set from the kernel's most recent
// per-path chain snapshot, run it through the admissibility filter, and
// register it (or credit a smaller, duplicate-path reward) in registry.
// FitnessOf is called with (individualIndex, reward) for both new and
// duplicate rules, so the caller can apply spec.md §4.6's fitness
// accumulation to genome.Population.
func Extract(cfg config.Config, ds *dataset.Dataset, pop *genome.Population,
	acc *kernel.Accumulators, registry Registry, fitnessOf func(i int, reward float64)) Counters {

	var counters Counters

	for i, ind := range pop.Individuals {
		for k := 0; k < ind.P(); k++ {
			for d := cfg.MinAttributes; d <= cfg.KMax; d++ {
				if acc.MatchCount.Get(i, k, d) <= 0 {
					continue
				}

				literals, ok := normalize(acc, i, k, d, cfg.MinAttributes)
				if !ok {
					counters.RejectedMinAttrs++
					continue
				}

				rule, rejection := Admit(cfg, ds, literals)
				switch rejection {
				case RejectedConcentration:
					counters.RejectedConcentration++
				case RejectedDeviation:
					counters.RejectedDeviation++
				case RejectedMinsup:
					counters.RejectedMinsup++
				case RejectedMinCount:
					counters.RejectedMinCount++
				case RejectedMaxsigma:
					counters.RejectedMaxsigma++
				case Passed:
					counters.Passed++
					reward := rule.SupportRate*10 + rule.Concentration*100

					attrSet := rule.AttrSet()
					if registry.Contains(attrSet) {
						counters.Duplicates++
						fitnessOf(i, reward)
					} else if err := registry.Register(rule); err == nil {
						fitnessOf(i, reward+20)
					} else {
						// Pool is full; no further registrations this
						// trial, and the candidate earns nothing
						// (spec.md §4 failure semantics: "log warning
						// and stop admitting further rules").
					}
				}
			}
		}
	}

	return counters
}

// normalize builds the canonical attribute/delay literal list for chain
// (i,k) at depth d: scan attribute ids 1..A in order, retaining those
// present among the kernel's raw attr_chain/delay_chain snapshot for
// depths 1..d, pairing each with the last observed delay at that
// attribute (spec.md §4.4 step 2 — a pairing choice shared with the
// reference implementation).
func normalize(acc *kernel.Accumulators, i, k, d, minAttrs int) ([]Literal, bool) {
	attrChain, delayChain, err := acc.ChainRow(i, k)
	if err != nil {
		return nil, false
	}

	lastDelay := map[int]int{}
	order := []int{}

	for depth := 1; depth <= d; depth++ {
		attrPlusOne := int(attrChain[depth])
		if attrPlusOne <= 0 {
			continue
		}
		attr := attrPlusOne // already 1-based (attr(cur)+1 in spec.md §4.3)
		if _, seen := lastDelay[attr]; !seen {
			order = append(order, attr)
		}
		lastDelay[attr] = int(delayChain[depth])
	}

	if len(order) < minAttrs {
		return nil, false
	}

	// Canonicalize by attribute id so AttrSet() is directly comparable
	// across chains that discovered the same attributes in different
	// traversal orders (spec.md §4.4 step 2, §8 S5).
	slices.Sort(order)

	literals := make([]Literal, len(order))
	for idx, attr := range order {
		literals[idx] = Literal{Attr: attr, Delay: lastDelay[attr]}
	}
	return literals, true
}
