package pool

import (
	"testing"

	"github.com/samuelfneumann/gnpengine/rules"
)

func ruleWithAttrs(attrs ...int) rules.Rule {
	lits := make([]rules.Literal, len(attrs))
	for i, a := range attrs {
		lits[i] = rules.Literal{Attr: a, Delay: 0}
	}
	return rules.Rule{Literals: lits}
}

func TestPoolRegisterAndContains(t *testing.T) {
	p := New(2)
	if err := p.Register(ruleWithAttrs(1, 2)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !p.Contains([]int{1, 2}) {
		t.Error("Contains should report the registered attribute set")
	}
	if p.Contains([]int{3, 4}) {
		t.Error("Contains should not report an unregistered attribute set")
	}
}

func TestPoolFullStopsAdmitting(t *testing.T) {
	p := New(1)
	if err := p.Register(ruleWithAttrs(1)); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := p.Register(ruleWithAttrs(2))
	if err == nil {
		t.Fatal("second Register should fail once at capacity")
	}
	if !IsFull(err) {
		t.Errorf("IsFull(err) = false, want true for %v", err)
	}
	if !p.Full() {
		t.Error("Full() should report true")
	}
}

func TestGlobalPoolMergeDedupsExact(t *testing.T) {
	g := NewGlobal(10)
	trial := New(5)
	trial.Register(ruleWithAttrs(1, 2))
	trial.Register(ruleWithAttrs(3))

	merged := g.Merge(trial)
	if merged != 2 {
		t.Errorf("first Merge = %d, want 2", merged)
	}

	again := g.Merge(trial)
	if again != 0 {
		t.Errorf("second Merge of identical trial = %d, want 0 (all duplicates)", again)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestGlobalPoolMergeRespectsCapacity(t *testing.T) {
	g := NewGlobal(1)
	trial := New(5)
	trial.Register(ruleWithAttrs(1))
	trial.Register(ruleWithAttrs(2))

	merged := g.Merge(trial)
	if merged != 1 {
		t.Errorf("Merge = %d, want 1 (capacity-bounded)", merged)
	}
}
