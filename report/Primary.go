// Package report implements the three output formats of spec.md §6: the
// tab-separated primary pool file, the human-readable secondary summary,
// and per-rule verification CSVs. Each formatter is a leaf writer over
// an io.Writer; it owns no file path and creates no directory, mirroring
// the teacher's savers.Saver split between tracking data and encoding it
// (this package only does the encoding half).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/quadrant"
	"github.com/samuelfneumann/gnpengine/rules"
)

// maxAttrSlots is the fixed width of the primary format's attribute
// columns (spec.md §6: "attrs[0..7]").
const maxAttrSlots = 8

// WritePrimary writes the tab-separated primary pool file: a header line
// followed by one line per rule in rs, in order.
func WritePrimary(w io.Writer, ds *dataset.Dataset, rs []rules.Rule) error {
	header := []string{}
	for i := 0; i < maxAttrSlots; i++ {
		header = append(header, fmt.Sprintf("attr%d", i))
	}
	header = append(header,
		"X(t+1)_mean", "X(t+1)_sigma", "X(t+1)_min", "X(t+1)_max",
		"X(t+2)_mean", "X(t+2)_sigma", "X(t+2)_min", "X(t+2)_max",
		"support_count", "support_rate", "negative",
		"high_support_flag", "low_variance_flag", "num_attributes",
	)
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}

	for _, r := range rs {
		if err := writePrimaryLine(w, ds, r); err != nil {
			return err
		}
	}
	return nil
}

func writePrimaryLine(w io.Writer, ds *dataset.Dataset, r rules.Rule) error {
	fields := make([]string, 0, maxAttrSlots+13)

	for i := 0; i < maxAttrSlots; i++ {
		if i < len(r.Literals) {
			lit := r.Literals[i]
			fields = append(fields, fmt.Sprintf("%s(t-%d)", ds.AttrName(lit.Attr-1), lit.Delay))
		} else {
			fields = append(fields, "0")
		}
	}

	for f := 0; f < 2; f++ {
		fields = append(fields,
			fmt.Sprintf("%g", r.Mean[f]),
			fmt.Sprintf("%g", r.Sigma[f]),
			fmt.Sprintf("%g", r.Min[f]),
			fmt.Sprintf("%g", r.Max[f]),
		)
	}

	fields = append(fields,
		fmt.Sprintf("%d", r.SupportCount),
		fmt.Sprintf("%g", r.SupportRate),
		fmt.Sprintf("%t", r.Dominant == quadrant.Q3),
		fmt.Sprintf("%t", r.HighSupport),
		fmt.Sprintf("%t", r.LowVariance),
		fmt.Sprintf("%d", r.NumAttributes()),
	)

	_, err := fmt.Fprintln(w, strings.Join(fields, "\t"))
	return err
}
