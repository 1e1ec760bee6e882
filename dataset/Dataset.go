// Package dataset implements the read-only time-series container the
// rest of the engine traverses: a binary attribute matrix, a real-valued
// target series, and string timestamps, loaded once from CSV and never
// mutated afterward.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Missing is the sentinel attribute value used for anything that is not
// exactly 0 or 1 in the source CSV.
const Missing int8 = -1

// Dataset is the immutable container described in spec.md §3: N rows by
// A attributes of values in {0,1} (anything else is Missing), a target
// vector X, and a parallel slice of timestamps.
type Dataset struct {
	// attrNames holds the attribute dictionary in column order.
	attrNames []string

	// attrs is a dense [N][A] matrix of {0, 1, Missing}.
	attrs [][]int8

	// x is the target series, length N.
	x []float64

	// timestamps is the string timestamp series, length N.
	timestamps []string
}

// N returns the number of time indices in the dataset.
func (d *Dataset) N() int {
	return len(d.x)
}

// A returns the number of attributes in the dataset.
func (d *Dataset) A() int {
	return len(d.attrNames)
}

// AttrName returns the name of the attribute at 0-based index a.
func (d *Dataset) AttrName(a int) string {
	return d.attrNames[a]
}

// Timestamp returns the timestamp recorded at time index i.
func (d *Dataset) Timestamp(i int) string {
	return d.timestamps[i]
}

// X returns the target value recorded at time index i.
func (d *Dataset) X(i int) float64 {
	return d.x[i]
}

// Attr returns the value of attribute a (0-based) at time index idx:
// 0, 1, or Missing. Callers must ensure idx is in range; the kernel
// never calls this with idx<0 (invariant I4).
func (d *Dataset) Attr(idx, a int) int8 {
	return d.attrs[idx][a]
}

// Future returns X(i+offset), or NaN if i+offset falls outside the
// dataset. Callers must treat NaN as "skip this (time, future-offset)
// pair" per the failure semantics in spec.md §4/§7 — it is never an
// error.
func (d *Dataset) Future(i, offset int) float64 {
	j := i + offset
	if j < 0 || j >= d.N() {
		return math.NaN()
	}
	return d.x[j]
}

// SafeRangeRule returns [maxDelay, N-F), the admissible window for
// recounting a single rule whose literals carry no delay larger than
// maxDelay (spec.md §4.1).
func (d *Dataset) SafeRangeRule(maxDelay, futureSpan int) (start, end int) {
	start = maxDelay
	end = d.N() - futureSpan
	if end < start {
		end = start
	}
	return start, end
}

// SafeRangeKernel returns [maxTimeDelay, N-F), the conservative superset
// of every rule's safe range used while the evaluation kernel walks the
// whole population (spec.md §4.1).
func (d *Dataset) SafeRangeKernel(maxTimeDelay, futureSpan int) (start, end int) {
	return d.SafeRangeRule(maxTimeDelay, futureSpan)
}

// Load reads path as a UTF-8 CSV with a header row: exactly one column
// named X, exactly one column named T or timestamp, and all remaining
// columns treated as attribute names. Values outside {0,1} in an
// attribute column are retained as Missing rather than rejected.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError("dataset.Load", NotFound, err)
	}
	defer f.Close()

	return load(f)
}

func load(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, newLoadError("dataset.Load", BadHeader, err)
	}

	xCol, tCol := -1, -1
	attrCols := make([]int, 0, len(header))
	attrNames := make([]string, 0, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		switch name {
		case "X":
			xCol = i
		case "T", "timestamp":
			tCol = i
		default:
			attrCols = append(attrCols, i)
			attrNames = append(attrNames, name)
		}
	}

	if xCol < 0 {
		return nil, newLoadError("dataset.Load", MissingXColumn,
			fmt.Errorf("no column named X in header %v", header))
	}
	if tCol < 0 {
		return nil, newLoadError("dataset.Load", MissingTColumn,
			fmt.Errorf("no column named T or timestamp in header %v", header))
	}

	var x []float64
	var timestamps []string
	var attrs [][]int8

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newLoadError("dataset.Load", ParseRow,
				fmt.Errorf("row %d: %w", rowNum, err))
		}
		rowNum++

		xVal, err := strconv.ParseFloat(strings.TrimSpace(row[xCol]), 64)
		if err != nil {
			return nil, newLoadError("dataset.Load", ParseRow,
				fmt.Errorf("row %d: bad X value %q: %w", rowNum, row[xCol], err))
		}

		rowAttrs := make([]int8, len(attrCols))
		for i, col := range attrCols {
			v, err := strconv.Atoi(strings.TrimSpace(row[col]))
			if err != nil || (v != 0 && v != 1) {
				rowAttrs[i] = Missing
				continue
			}
			rowAttrs[i] = int8(v)
		}

		x = append(x, xVal)
		timestamps = append(timestamps, strings.TrimSpace(row[tCol]))
		attrs = append(attrs, rowAttrs)
	}

	if len(x) == 0 {
		return nil, newLoadError("dataset.Load", EmptyData,
			fmt.Errorf("no data rows after header"))
	}

	return &Dataset{
		attrNames:  attrNames,
		attrs:      attrs,
		x:          x,
		timestamps: timestamps,
	}, nil
}
