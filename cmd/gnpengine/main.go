// Command gnpengine runs the GNP rule-mining engine over a CSV dataset
// and writes the primary, secondary, and per-rule verification reports
// described in spec.md §6.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/gnpengine/config"
	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/engine"
	"github.com/samuelfneumann/gnpengine/report"
	"github.com/samuelfneumann/gnpengine/rules"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		dataPath = flag.String("data", "", "path to the input CSV dataset")
		outDir   = flag.String("out", ".", "directory to write report files into")
		cfgPath  = flag.String("config", "", "optional config file (YAML/JSON/TOML, viper-loaded)")
	)
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: gnpengine -data path/to/data.csv [-config path/to/config.yaml] [-out dir]")
		return 1
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Printf("config: %v", err)
			return 1
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	ds, err := dataset.Load(*dataPath)
	if err != nil {
		log.Printf("dataset: %v", err)
		return 1
	}

	eng := engine.New(cfg, ds, log.Default())
	reports := eng.Run()
	for _, r := range reports {
		log.Printf("trial %d: %d generations, %d rules, %d candidates (%d passed, %d duplicates)",
			r.Trial, r.Generation+1, r.Pool.Len(), r.Counters.Total(), r.Counters.Passed, r.Counters.Duplicates)
	}

	if err := writeReports(*outDir, ds, eng.Global.Rules()); err != nil {
		log.Printf("report: %v", err)
		return 1
	}

	return 0
}

// writeReports writes the primary pool file, the secondary summary, and
// one verification CSV per rule into outDir.
func writeReports(outDir string, ds *dataset.Dataset, rs []rules.Rule) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	primary, err := os.Create(filepath.Join(outDir, "rules_primary.tsv"))
	if err != nil {
		return err
	}
	defer primary.Close()
	if err := report.WritePrimary(primary, ds, rs); err != nil {
		return err
	}

	secondary, err := os.Create(filepath.Join(outDir, "rules_summary.txt"))
	if err != nil {
		return err
	}
	defer secondary.Close()
	if err := report.WriteSecondary(secondary, ds, rs); err != nil {
		return err
	}

	verifyDir := filepath.Join(outDir, "verification")
	if err := os.MkdirAll(verifyDir, 0o755); err != nil {
		return err
	}
	for i, r := range rs {
		path := filepath.Join(verifyDir, fmt.Sprintf("rule_%04d.csv", i))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = report.WriteVerification(f, ds, r)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
