package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gnpengine/config"
	"github.com/samuelfneumann/gnpengine/dataset"
)

func tinyDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	rows := "T,X,A1,A2\n"
	for i := 0; i < 40; i++ {
		a1, a2, x := 0, 0, float64(i%5)
		if i%2 == 0 {
			a1 = 1
		}
		if i%3 == 0 {
			a2 = 1
		}
		rows += fmt.Sprintf("t%d,%v,%d,%d\n", i, x, a1, a2)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(rows), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}
	return ds
}

func TestEngineRunProducesReportsPerTrial(t *testing.T) {
	ds := tinyDataset(t)

	cfg := config.Default()
	cfg.NPopulation = 6
	cfg.NProcessNodes = 2
	cfg.NJudgementNodes = 4
	cfg.Generations = 2
	cfg.EliteSize = 1
	cfg.CrossoverPairs = 1
	cfg.Nkousa = 1
	cfg.Ntrials = 2
	cfg.MinSupportCount = 1
	cfg.Minsup = 0
	cfg.Nrulemax = 50
	cfg.HistoryGenerations = 2

	logger := log.New(os.Stderr, "", 0)
	eng := New(cfg, ds, logger)
	reports := eng.Run()

	if len(reports) != cfg.Ntrials {
		t.Fatalf("len(reports) = %d, want %d", len(reports), cfg.Ntrials)
	}
	for _, r := range reports {
		if r.Pool == nil {
			t.Fatalf("trial %d: nil Pool", r.Trial)
		}
	}
	if eng.Global.Len() < 0 {
		t.Fatal("Global pool length should never be negative")
	}
}
