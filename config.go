package pwcheck

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to the upper-cased yaml key for environment overrides,
// e.g. PWCHECK_MIN_LENGTH.
const EnvPrefix = "PWCHECK_"

// Config holds the scoring weights and category thresholds.
// WeakMax < FairMax < StrongMax < 100 must hold for meaningful categories;
// ScorePassword does not check it, Validate does.
type Config struct {
	MinLength        int `yaml:"min_length"`
	MaxLengthAllowed int `yaml:"max_length_allowed"`
	LengthCapPoints  int `yaml:"length_cap_points"` // max points contributed by length
	VarietyPoints    int `yaml:"variety_points"`    // max points for character variety
	PatternPoints    int `yaml:"pattern_points"`    // max deducted when patterns are found
	PassphrasePoints int `yaml:"passphrase_points"` // bonus for multi-word passphrases
	WeakMax          int `yaml:"weak_max"`
	FairMax          int `yaml:"fair_max"`
	StrongMax        int `yaml:"strong_max"` // above this is VeryStrong
}

// DefaultConfig returns the stock weights and thresholds.
func DefaultConfig() Config {
	return Config{
		MinLength:        8,
		MaxLengthAllowed: 512,
		LengthCapPoints:  60,
		VarietyPoints:    10,
		PatternPoints:    10,
		PassphrasePoints: 10,
		WeakMax:          24,
		FairMax:          59,
		StrongMax:        79,
	}
}

// LoadConfig loads configuration in the order defaults -> yaml file -> env.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "error reading config file: %s", path)
		}
		if err := cfg.decode(b); err != nil {
			return cfg, errors.Wrapf(err, "error parsing config file: %s", path)
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) decode(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) envFields() map[string]*int {
	return map[string]*int{
		"MIN_LENGTH":         &c.MinLength,
		"MAX_LENGTH_ALLOWED": &c.MaxLengthAllowed,
		"LENGTH_CAP_POINTS":  &c.LengthCapPoints,
		"VARIETY_POINTS":     &c.VarietyPoints,
		"PATTERN_POINTS":     &c.PatternPoints,
		"PASSPHRASE_POINTS":  &c.PassphrasePoints,
		"WEAK_MAX":           &c.WeakMax,
		"FAIR_MAX":           &c.FairMax,
		"STRONG_MAX":         &c.StrongMax,
	}
}

// ApplyEnvOverrides replaces fields with any PWCHECK_* variables that are set.
func (c *Config) ApplyEnvOverrides() error {
	for key, field := range c.envFields() {
		val, ok := os.LookupEnv(EnvPrefix + key)
		if !ok || val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s%s", EnvPrefix, key)
		}
		*field = n
	}
	return nil
}

// Validate returns an error if the thresholds are out of order or any bound
// is negative.
func (c Config) Validate() error {
	if c.MinLength < 0 || c.MaxLengthAllowed < 0 {
		return errors.New("length bounds must not be negative")
	}
	if c.LengthCapPoints < 0 || c.VarietyPoints < 0 || c.PatternPoints < 0 || c.PassphrasePoints < 0 {
		return errors.New("point weights must not be negative")
	}
	if !(c.WeakMax < c.FairMax && c.FairMax < c.StrongMax && c.StrongMax < 100) {
		return errors.Errorf("thresholds must increase: weak_max=%d fair_max=%d strong_max=%d (< 100)",
			c.WeakMax, c.FairMax, c.StrongMax)
	}
	return nil
}
