// Package engine implements the outer trial/generation control loop of
// spec.md §2: for each trial, initialize a population, then repeatedly
// evaluate, extract, update adaptive memory, select, crossover, and
// mutate, until the generation budget or pool capacity is reached;
// finally merge the trial's pool into the global pool.
package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/samuelfneumann/gnpengine/config"
	"github.com/samuelfneumann/gnpengine/dataset"
	"github.com/samuelfneumann/gnpengine/evolve"
	"github.com/samuelfneumann/gnpengine/genome"
	"github.com/samuelfneumann/gnpengine/kernel"
	"github.com/samuelfneumann/gnpengine/pool"
	"github.com/samuelfneumann/gnpengine/rules"
	"github.com/samuelfneumann/progressbar"
)

// Engine aggregates every piece of state a run needs: configuration,
// dataset, population, pools, and a logger. This replaces the pervasive
// global mutable arrays design note §9 flags — every sub-routine below
// takes the pieces of Engine it needs by explicit reference instead of
// reaching into process-wide state.
type Engine struct {
	Cfg    config.Config
	Data   *dataset.Dataset
	Global *pool.GlobalPool
	Logger *log.Logger

	rng *rand.Rand
}

// New constructs an Engine for cfg over data. If logger is nil,
// log.Default() is used, matching the teacher's direct use of the
// standard log package in experiment/savers.
func New(cfg config.Config, data *dataset.Dataset, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		Cfg:    cfg,
		Data:   data,
		Global: pool.NewGlobal(cfg.Nrulemax * cfg.Ntrials),
		Logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// TrialReport summarizes one trial's run for the driver/report layer.
type TrialReport struct {
	Trial      int
	Generation int
	Pool       *pool.Pool
	Counters   rules.Counters
}

// Run executes cfg.Ntrials trials, each for up to cfg.Generations
// generations, merging every trial's pool into e.Global. It returns one
// TrialReport per trial.
func (e *Engine) Run() []TrialReport {
	reports := make([]TrialReport, 0, e.Cfg.Ntrials)

	for trial := 1; trial <= e.Cfg.Ntrials; trial++ {
		report := e.runTrial(trial)
		reports = append(reports, report)

		merged := e.Global.Merge(report.Pool)
		e.Logger.Printf("trial %d: registered %d rules (%d new to global pool)",
			trial, report.Pool.Len(), merged)
	}

	return reports
}

func (e *Engine) runTrial(trial int) TrialReport {
	cfg := e.Cfg
	pop := genome.NewPopulation(cfg.NPopulation, cfg.NProcessNodes, cfg.NJudgementNodes)
	pop.InitRandom(e.rng, e.Data.A(), cfg.MaxTimeDelay)

	trialPool := pool.New(cfg.Nrulemax)
	memory := evolve.NewAdaptiveMemory(cfg.HistoryGenerations, cfg.MaxTimeDelay, e.Data.A())

	bar := progressbar.New(50, cfg.Generations, time.Second, true)
	bar.Display()

	var counters rules.Counters
	generation := 0

	for ; generation < cfg.Generations; generation++ {
		lenBefore := trialPool.Len()
		acc := kernel.Evaluate(cfg, e.Data, pop)

		gen := rules.Extract(cfg, e.Data, pop, acc, trialPool, func(i int, reward float64) {
			pop.Individuals[i].Fitness += reward
		})
		counters = addCounters(counters, gen)

		for _, r := range trialPool.Rules()[lenBefore:] {
			// Literal.Attr is 1-based; the memory's attribute tables are
			// 0-based, like the genome's JudgeAttr genes.
			attrs := r.AttrSet()
			for j := range attrs {
				attrs[j]--
			}
			memory.Update(delaysOf(r), attrs, r.HighSupport || r.LowVariance)
		}
		memory.Age(generation)

		rank := evolve.Rank(pop)
		evolve.Elitism(pop, rank, cfg.EliteSize)
		evolve.Crossover(pop, e.rng, cfg.CrossoverPairs, cfg.Nkousa)

		evolve.MutateStart(pop, e.rng, cfg.Muratep)
		evolve.MutateJudgmentRewire(pop, e.rng, cfg.Muratej, 40, 80)
		evolve.MutateDelay(pop, e.rng, cfg.Muratedelay, 40, 120, cfg.MaxTimeDelay,
			memory, cfg.AdaptiveMutation)
		evolve.MutateAttr(pop, e.rng, cfg.Muratea, 80, 120, e.Data.A(),
			memory, cfg.AdaptiveMutation)

		pop.ResetFitness()
		bar.Increment()

		if trialPool.Full() {
			e.Logger.Printf("trial %d: pool full at generation %d, stopping early", trial, generation)
			break
		}
		if trialPool.Len() >= cfg.TrialTerminationCount() {
			break
		}
	}

	bar.Close()

	// generation is reported as the index of the last generation run; the
	// loop's own exit leaves it one past that.
	if generation == cfg.Generations {
		generation--
	}

	return TrialReport{Trial: trial, Generation: generation, Pool: trialPool, Counters: counters}
}

func addCounters(a, b rules.Counters) rules.Counters {
	return rules.Counters{
		RejectedMinAttrs:      a.RejectedMinAttrs + b.RejectedMinAttrs,
		RejectedConcentration: a.RejectedConcentration + b.RejectedConcentration,
		RejectedDeviation:     a.RejectedDeviation + b.RejectedDeviation,
		RejectedMinsup:        a.RejectedMinsup + b.RejectedMinsup,
		RejectedMinCount:      a.RejectedMinCount + b.RejectedMinCount,
		RejectedMaxsigma:      a.RejectedMaxsigma + b.RejectedMaxsigma,
		Passed:                a.Passed + b.Passed,
		Duplicates:            a.Duplicates + b.Duplicates,
	}
}

func delaysOf(r rules.Rule) []int {
	delays := make([]int, len(r.Literals))
	for i, lit := range r.Literals {
		delays[i] = lit.Delay
	}
	return delays
}
