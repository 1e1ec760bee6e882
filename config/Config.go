// Package config implements the configuration surface for the GNP rule
// mining engine. Every tunable named in the reference description is a
// field on Config, mirroring the way the teacher's spec package expresses
// agent configuration as small, declarative structs.
package config

import "fmt"

// Config holds every constant that governs a run of the engine: dataset
// geometry limits, population/genome sizing, evolutionary rates, and the
// admissibility thresholds applied by the rules package.
type Config struct {
	// FutureSpan is the number of future offsets (t+1..t+FutureSpan) whose
	// joint distribution a rule's consequent describes.
	FutureSpan int

	// MaxTimeDelay is the largest delay a judgment node may carry.
	MaxTimeDelay int

	// KMax bounds traversal depth for any single chain.
	KMax int

	// MinAttributes is the smallest attribute-set size admitted as a rule.
	MinAttributes int

	// NPopulation is the number of individuals in the population (M).
	NPopulation int

	// NProcessNodes is the number of start nodes per individual (P).
	NProcessNodes int

	// NJudgementNodes is the number of judgment nodes per individual (J).
	NJudgementNodes int

	// Generations is the number of generations run per trial (G).
	Generations int

	// EliteSize is the number of top-ranked individuals cloned each
	// generation (E).
	EliteSize int

	// CrossoverPairs is the number of individual pairs exchanged during
	// crossover.
	CrossoverPairs int

	// Nkousa is the number of judgment-node triples swapped per crossover
	// pair.
	Nkousa int

	// Muratep, Muratej, Muratea, Muratedelay are mutation-rate divisors;
	// the effective probability of a site mutating is 1/rate.
	Muratep     int
	Muratej     int
	Muratea     int
	Muratedelay int

	// Minsup is the minimum support rate a rule must reach.
	Minsup float64

	// MinSupportCount is the minimum absolute number of matches a rule
	// must reach.
	MinSupportCount int

	// Maxsigma bounds the dispersion of future values a rule may have.
	Maxsigma float64

	// QuadrantThresholdRate is the minimum quadrant concentration (Cmin)
	// a rule must reach.
	QuadrantThresholdRate float64

	// DeviationThreshold is the largest magnitude by which any matched
	// future value may violate the dominant quadrant's band.
	DeviationThreshold float64

	// Nrulemax bounds the size of a per-trial rule pool.
	Nrulemax int

	// Ntrials is the number of independent trials run.
	Ntrials int

	// HistoryGenerations is the width of the adaptive-memory sliding
	// window (H).
	HistoryGenerations int

	// AdaptiveMutation turns on roulette-biased delay/attribute mutation.
	AdaptiveMutation bool

	// LegacySupportDenominator selects the denominator used for support
	// rate: true uses N-FutureSpan (the shipped, reference behaviour);
	// false uses N-(maxDelay+FutureSpan), maxDelay being the largest delay
	// of the rule being scored. Defaults to true to match
	// reference output bit-for-bit; see DESIGN.md.
	LegacySupportDenominator bool

	// Seed seeds every random number generator the engine uses.
	Seed int64
}

// Default returns the Config described by the reference tuning: the
// constants a fresh port is expected to expose as a config object.
func Default() Config {
	return Config{
		FutureSpan:               2,
		MaxTimeDelay:             2,
		KMax:                     7,
		MinAttributes:            2,
		NPopulation:              120,
		NProcessNodes:            10,
		NJudgementNodes:          100,
		Generations:              201,
		EliteSize:                40,
		CrossoverPairs:           20,
		Nkousa:                   20,
		Muratep:                  1,
		Muratej:                  6,
		Muratea:                  6,
		Muratedelay:              6,
		Minsup:                   0.003,
		MinSupportCount:          20,
		Maxsigma:                 999,
		QuadrantThresholdRate:    0.50,
		DeviationThreshold:       1.0,
		Nrulemax:                 2002,
		Ntrials:                  1,
		HistoryGenerations:       5,
		AdaptiveMutation:         true,
		LegacySupportDenominator: true,
		Seed:                     1,
	}
}

// Validate checks that Config describes a geometry the engine can safely
// traverse: no negative sizes, no zero divisors, thresholds in range.
func (c Config) Validate() error {
	switch {
	case c.FutureSpan <= 0:
		return fmt.Errorf("config: FutureSpan must be positive, got %d", c.FutureSpan)
	case c.MaxTimeDelay < 0:
		return fmt.Errorf("config: MaxTimeDelay must be non-negative, got %d", c.MaxTimeDelay)
	case c.KMax <= 0:
		return fmt.Errorf("config: KMax must be positive, got %d", c.KMax)
	case c.MinAttributes <= 0:
		return fmt.Errorf("config: MinAttributes must be positive, got %d", c.MinAttributes)
	case c.NPopulation <= 0:
		return fmt.Errorf("config: NPopulation must be positive, got %d", c.NPopulation)
	case c.NProcessNodes <= 0:
		return fmt.Errorf("config: NProcessNodes must be positive, got %d", c.NProcessNodes)
	case c.NJudgementNodes <= 0:
		return fmt.Errorf("config: NJudgementNodes must be positive, got %d", c.NJudgementNodes)
	case c.Muratep <= 0 || c.Muratej <= 0 || c.Muratea <= 0 || c.Muratedelay <= 0:
		return fmt.Errorf("config: mutation rate divisors must be positive")
	case c.Minsup < 0 || c.Minsup > 1:
		return fmt.Errorf("config: Minsup must be in [0,1], got %v", c.Minsup)
	case c.QuadrantThresholdRate < 0 || c.QuadrantThresholdRate > 1:
		return fmt.Errorf("config: QuadrantThresholdRate must be in [0,1], got %v",
			c.QuadrantThresholdRate)
	case c.Nrulemax <= 2:
		return fmt.Errorf("config: Nrulemax must exceed 2, got %d", c.Nrulemax)
	case c.Ntrials <= 0:
		return fmt.Errorf("config: Ntrials must be positive, got %d", c.Ntrials)
	case c.HistoryGenerations <= 0:
		return fmt.Errorf("config: HistoryGenerations must be positive, got %d", c.HistoryGenerations)
	}
	return nil
}

// SupportDenominator returns N-F or N-(maxDelay+F) depending on
// LegacySupportDenominator, matching the formula described in spec.md §9.
func (c Config) SupportDenominator(n, maxDelay int) float64 {
	if !c.LegacySupportDenominator {
		return float64(n - maxDelay - c.FutureSpan)
	}
	return float64(n - c.FutureSpan)
}

// TrialTerminationCount is the pool size at which a trial stops admitting
// further generations (Nrulemax-2).
func (c Config) TrialTerminationCount() int {
	return c.Nrulemax - 2
}
