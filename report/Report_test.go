package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/rules"
)

func mustLoad(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}
	return ds
}

func sampleRule() rules.Rule {
	return rules.Rule{
		Literals:       []rules.Literal{{Attr: 1, Delay: 0}, {Attr: 2, Delay: 1}},
		MatchedIndices: []int{0, 2},
		SupportCount:   2,
		SupportRate:    0.5,
		Mean:           [2]float64{1.5, 2.5},
		Sigma:          [2]float64{0.1, 0.2},
		Min:            [2]float64{1, 2},
		Max:            [2]float64{2, 3},
		Dominant:       2, // Q3
		Concentration:  1.0,
		HighSupport:    true,
		LowVariance:    true,
	}
}

func TestWritePrimary(t *testing.T) {
	ds := mustLoad(t, "T,X,A1,A2\nt0,1,1,0\nt1,2,0,1\nt2,3,1,1\n")
	var buf bytes.Buffer
	if err := WritePrimary(&buf, ds, []rules.Rule{sampleRule()}); err != nil {
		t.Fatalf("WritePrimary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "A1(t-0)") || !strings.Contains(out, "A2(t-1)") {
		t.Errorf("expected literal columns in output, got: %s", out)
	}
	if !strings.Contains(out, "true") {
		t.Errorf("expected the negative flag (Q3-dominant) to render true, got: %s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 rule line, got %d lines", len(lines))
	}
}

func TestWriteSecondaryLimitsToTen(t *testing.T) {
	ds := mustLoad(t, "T,X,A1,A2\nt0,1,1,0\n")
	rs := make([]rules.Rule, 15)
	for i := range rs {
		rs[i] = sampleRule()
	}
	var buf bytes.Buffer
	if err := WriteSecondary(&buf, ds, rs); err != nil {
		t.Fatalf("WriteSecondary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# Total Rules: 15") {
		t.Errorf("expected total count header, got: %s", out)
	}
	if strings.Count(out, "Rule ") != 10 {
		t.Errorf("expected exactly 10 rule blocks, got %d", strings.Count(out, "Rule "))
	}
}

func TestWriteVerification(t *testing.T) {
	ds := mustLoad(t, "T,X,A1,A2\nt0,1,1,0\nt1,2,0,1\nt2,3,1,1\nt3,4,0,0\n")
	r := rules.Rule{
		Literals:       []rules.Literal{{Attr: 1, Delay: 0}},
		MatchedIndices: []int{0, 2},
	}
	var buf bytes.Buffer
	if err := WriteVerification(&buf, ds, r); err != nil {
		t.Fatalf("WriteVerification: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "RowIndex,Timestamp,Attr_1_Col_1_t-0,X(t+1),X(t+2)") {
		t.Errorf("unexpected header: %s", out)
	}
	if !strings.Contains(out, "t0") {
		t.Errorf("expected matched-row timestamp in output, got: %s", out)
	}
}
