package pool

import (
	"github.com/samuelfneumann/gnpengine/rules"
	"golang.org/x/exp/slices"
)

// GlobalPool accumulates unique rules across trials, up to
// capacity = Nrulemax * Ntrials (spec.md §4.7).
type GlobalPool struct {
	capacity int
	rules    []rules.Rule
}

// NewGlobal returns an empty GlobalPool with the given capacity.
func NewGlobal(capacity int) *GlobalPool {
	return &GlobalPool{capacity: capacity, rules: make([]rules.Rule, 0, capacity)}
}

// Len returns the number of rules currently in the global pool.
func (g *GlobalPool) Len() int {
	return len(g.rules)
}

// Rules returns every rule merged into the global pool so far.
func (g *GlobalPool) Rules() []rules.Rule {
	return g.rules
}

// Merge folds trial's rules into the global pool. For each rule, it
// linear-scans the global pool and accepts the rule iff no existing
// entry shares exactly the same (attribute set, delays) pair — a
// stricter identity than the per-trial pool's attribute-set-only
// equality, per spec.md §4.7's merge policy. matched-index payloads are
// handed over by slice reference (Go's runtime already gives move
// semantics here: no copy is made), mirroring design note §9's
// "pointer ownership handoff... replace with moves".
func (g *GlobalPool) Merge(trial *Pool) int {
	merged := 0
	for _, r := range trial.Rules() {
		if g.containsExact(r) {
			continue
		}
		if len(g.rules) >= g.capacity {
			break
		}
		g.rules = append(g.rules, r)
		merged++
	}
	return merged
}

func (g *GlobalPool) containsExact(r rules.Rule) bool {
	for _, existing := range g.rules {
		if literalsEqual(existing.Literals, r.Literals) {
			return true
		}
	}
	return false
}

func literalsEqual(a, b []rules.Literal) bool {
	return slices.EqualFunc(a, b, func(x, y rules.Literal) bool {
		return x.Attr == y.Attr && x.Delay == y.Delay
	})
}
