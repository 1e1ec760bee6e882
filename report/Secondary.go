package report

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/rules"
)

// maxSecondaryRules bounds the human summary to the first 10 rules
// (spec.md §6).
const maxSecondaryRules = 10

// WriteSecondary writes the human-readable summary: a small header
// comment block, then up to the first 10 rules in rs rendered as
// "Rule i (k attrs): attr1(t-d1) ..." followed by one "=> X(t+f):
// mean±sigma" line per future offset.
func WriteSecondary(w io.Writer, ds *dataset.Dataset, rs []rules.Rule) error {
	if _, err := fmt.Fprintf(w, "# Total Rules: %d\n", len(rs)); err != nil {
		return err
	}

	n := len(rs)
	if n > maxSecondaryRules {
		n = maxSecondaryRules
	}
	if _, err := fmt.Fprintf(w, "# Showing first %d rule(s)\n\n", n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := writeSecondaryRule(w, ds, i, rs[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeSecondaryRule(w io.Writer, ds *dataset.Dataset, i int, r rules.Rule) error {
	fmt.Fprintf(w, "Rule %d (%d attrs): ", i, r.NumAttributes())
	for j, lit := range r.Literals {
		if j > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%s(t-%d)", ds.AttrName(lit.Attr-1), lit.Delay)
	}
	fmt.Fprintln(w)

	for f := 0; f < 2; f++ {
		if _, err := fmt.Fprintf(w, "  => X(t+%d): %g±%g\n", f+1, r.Mean[f], r.Sigma[f]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
