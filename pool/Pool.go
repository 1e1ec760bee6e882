// Package pool implements the deduplicated rule pool of spec.md §4.7: a
// fixed-capacity per-trial pool keyed on attribute-set equality, and a
// cross-trial global pool keyed on exact (attribute, delay) equality.
package pool

import (
	"fmt"

	"github.com/samuelfneumann/gnpengine/rules"
	"golang.org/x/exp/slices"
)

// Error reports a pool-capacity condition. It is not a failure of the
// candidate being registered — spec.md §4/§7 treats pool overflow as a
// non-fatal capacity warning, logged once, after which the extractor
// simply stops admitting further rules in that trial.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var errFull = fmt.Errorf("pool full")

// IsFull reports whether err indicates the pool has reached capacity.
func IsFull(err error) bool {
	poolErr, ok := err.(*Error)
	return ok && poolErr.Err == errFull
}

// Pool is the per-trial rule pool: a fixed-capacity, deduplicated
// collection of registered rules.
type Pool struct {
	capacity int
	rules    []rules.Rule
	full     bool
}

// New returns an empty Pool with the given capacity.
func New(capacity int) *Pool {
	return &Pool{capacity: capacity, rules: make([]rules.Rule, 0, capacity)}
}

// Len returns the number of rules currently registered.
func (p *Pool) Len() int {
	return len(p.rules)
}

// Rules returns the registered rules, in registration order.
func (p *Pool) Rules() []rules.Rule {
	return p.rules
}

// Contains reports whether a rule with the same attribute set (sorted
// attribute ids, delays excluded) is already registered — the identity
// rule of spec.md §3/§9.
func (p *Pool) Contains(attrSet []int) bool {
	for _, r := range p.rules {
		if slices.Equal(r.AttrSet(), attrSet) {
			return true
		}
	}
	return false
}

// Register adds r to the pool, assigning it the next free index. It
// returns an *Error satisfying IsFull if the pool is already at
// capacity; once full, it stays full for the rest of the trial (no
// further registrations are attempted, per spec.md §4 failure
// semantics), and repeated calls return the same error cheaply.
func (p *Pool) Register(r rules.Rule) error {
	if p.full || len(p.rules) >= p.capacity {
		p.full = true
		return &Error{Op: "pool.Register", Err: errFull}
	}
	p.rules = append(p.rules, r)
	return nil
}

// Full reports whether the pool has stopped admitting further rules.
func (p *Pool) Full() bool {
	return p.full
}
