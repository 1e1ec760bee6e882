package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/rules"
)

// WriteVerification writes the per-rule verification CSV of spec.md §6:
// header `RowIndex,Timestamp,Attr_i_Col_c_t-d,...,X(t+1),X(t+2)`, then
// one row per matched index. Each literal column holds the timestamp at
// which that literal was read if it actually held there (recomputed
// directly from ds, not trusted from the rule), or "0" otherwise; future
// columns hold the concrete value or "-" if out of bounds.
func WriteVerification(w io.Writer, ds *dataset.Dataset, r rules.Rule) error {
	cw := csv.NewWriter(w)

	header := []string{"RowIndex", "Timestamp"}
	for i, lit := range r.Literals {
		header = append(header, fmt.Sprintf("Attr_%d_Col_%d_t-%d", i+1, lit.Attr, lit.Delay))
	}
	header = append(header, "X(t+1)", "X(t+2)")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, t := range r.MatchedIndices {
		row := []string{fmt.Sprintf("%d", t), ds.Timestamp(t)}
		for _, lit := range r.Literals {
			row = append(row, literalCell(ds, t, lit))
		}
		row = append(row, futureCell(ds, t, 1), futureCell(ds, t, 2))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func literalCell(ds *dataset.Dataset, t int, lit rules.Literal) string {
	idx := t - lit.Delay
	if idx < 0 || ds.Attr(idx, lit.Attr-1) != 1 {
		return "0"
	}
	return ds.Timestamp(idx)
}

func futureCell(ds *dataset.Dataset, t, offset int) string {
	v := ds.Future(t, offset)
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%g", v)
}
