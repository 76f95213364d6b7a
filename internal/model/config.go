package model

import "time"

// Config holds all tunable evaluation parameters.
// Defaults mirror the thresholds the decision policy was calibrated with;
// a test harness can override any of them to exercise boundary behavior.
type Config struct {
	Matching    MatchingConfig    `yaml:"matching"`
	Numeric     NumericConfig     `yaml:"numeric"`
	Decision    DecisionConfig    `yaml:"decision"`
	Bias        BiasConfig        `yaml:"bias"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
}

// MatchingConfig controls claim similarity thresholds
type MatchingConfig struct {
	AuthorizedThreshold float64 `yaml:"authorized_threshold"` // whole-text fuzzy, 0-100
	ProhibitedThreshold float64 `yaml:"prohibited_threshold"` // lower = more sensitive
	SentenceThreshold   float64 `yaml:"sentence_threshold"`   // Jaccard, 0-1
}

// NumericConfig controls numeric claim validation
type NumericConfig struct {
	Tolerance float64 `yaml:"tolerance"` // max relative error
}

// DecisionConfig controls the categorical decision thresholds
type DecisionConfig struct {
	SupportedMin   float64 `yaml:"supported_min"`   // hit rate floor for Supported
	AmbiguousMin   float64 `yaml:"ambiguous_min"`   // hit rate floor for Ambiguous
	OverclaimLimit int     `yaml:"overclaim_limit"` // distinct overclaims tolerated before Unsupported
}

// BiasConfig controls bias screening
type BiasConfig struct {
	WeightHigh   int      `yaml:"weight_high"`
	WeightMedium int      `yaml:"weight_medium"`
	WeightLow    int      `yaml:"weight_low"`
	Whitelist    []string `yaml:"whitelist,omitempty"` // approved phrases to skip
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// CacheConfig controls the product spec cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose   bool `yaml:"verbose"`
	Aggregate bool `yaml:"aggregate"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Matching: MatchingConfig{
			AuthorizedThreshold: 85,
			ProhibitedThreshold: 80,
			SentenceThreshold:   0.4,
		},
		Numeric: NumericConfig{
			Tolerance: 0.05,
		},
		Decision: DecisionConfig{
			SupportedMin:   0.7,
			AmbiguousMin:   0.3,
			OverclaimLimit: 3,
		},
		Bias: BiasConfig{
			WeightHigh:   10,
			WeightMedium: 5,
			WeightLow:    2,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 8,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:   false,
			Aggregate: true,
		},
	}
}
