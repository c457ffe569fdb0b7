// Package config loads the YAML settings shared by the wordladder commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds host settings. Zero length bounds are unbounded.
type Config struct {
	Dictionary    string        `yaml:"dictionary"`
	MinLength     int           `yaml:"min_length"`
	MaxLength     int           `yaml:"max_length"`
	Strategy      string        `yaml:"strategy"`
	MaxDepth      int           `yaml:"max_depth"`
	WildcardIndex bool          `yaml:"wildcard_index"`
	Listen        string        `yaml:"listen"`
	Workers       int           `yaml:"workers"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Default mirrors the classic desktop solver: words.txt, 3 to 5 letters.
func Default() Config {
	return Config{
		Dictionary:    "words.txt",
		MinLength:     3,
		MaxLength:     5,
		Strategy:      ladder.StrictShortest.String(),
		WildcardIndex: true,
		Listen:        ":8080",
		Workers:       4,
		Timeout:       10 * time.Second,
	}
}

// Load reads path over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and the strategy name.
func (c Config) Validate() error {
	if c.MinLength < 0 || c.MaxLength < 0 {
		return fmt.Errorf("%w: negative length bound", ErrInvalid)
	}
	if c.MinLength > 0 && c.MaxLength > 0 && c.MinLength > c.MaxLength {
		return fmt.Errorf("%w: min_length %d > max_length %d", ErrInvalid, c.MinLength, c.MaxLength)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalid, c.MaxDepth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s", ErrInvalid, c.Timeout)
	}
	if _, err := ladder.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// LexiconOptions translates the dictionary settings.
func (c Config) LexiconOptions() []lexicon.Option {
	opts := []lexicon.Option{lexicon.WithLengthRange(c.MinLength, c.MaxLength)}
	if c.WildcardIndex {
		opts = append(opts, lexicon.WithWildcardIndex())
	}
	return opts
}

// SolverOptions translates the search settings. Validate first.
func (c Config) SolverOptions() []ladder.Option {
	st, _ := ladder.ParseStrategy(c.Strategy)
	return []ladder.Option{ladder.WithStrategy(st), ladder.WithMaxDepth(c.MaxDepth)}
}
