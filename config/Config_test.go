package config

import "testing"

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero future span", func(c *Config) { c.FutureSpan = 0 }},
		{"negative max delay", func(c *Config) { c.MaxTimeDelay = -1 }},
		{"zero kmax", func(c *Config) { c.KMax = 0 }},
		{"zero population", func(c *Config) { c.NPopulation = 0 }},
		{"zero mutation rate", func(c *Config) { c.Muratep = 0 }},
		{"minsup out of range", func(c *Config) { c.Minsup = 1.5 }},
		{"nrulemax too small", func(c *Config) { c.Nrulemax = 2 }},
		{"zero trials", func(c *Config) { c.Ntrials = 0 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected Validate to reject, got nil error", tc.name)
		}
	}
}

func TestSupportDenominator(t *testing.T) {
	cfg := Default()
	got := cfg.SupportDenominator(1000, 2)
	want := float64(1000 - cfg.FutureSpan)
	if got != want {
		t.Errorf("SupportDenominator(1000, 2) = %v, want %v", got, want)
	}
}

func TestSupportDenominatorNonLegacy(t *testing.T) {
	cfg := Default()
	cfg.LegacySupportDenominator = false
	got := cfg.SupportDenominator(1000, 2)
	want := float64(1000 - 2 - cfg.FutureSpan)
	if got != want {
		t.Errorf("SupportDenominator(1000, 2) = %v, want %v", got, want)
	}
}

func TestTrialTerminationCount(t *testing.T) {
	cfg := Default()
	if got := cfg.TrialTerminationCount(); got != cfg.Nrulemax-2 {
		t.Errorf("TrialTerminationCount() = %d, want %d", got, cfg.Nrulemax-2)
	}
}
