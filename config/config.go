// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/upword/coverage"
	"github.com/katalvlaran/upword/search"
	"github.com/katalvlaran/upword/word"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk shape of a run.
type Config struct {
	Alphabet      string  `yaml:"alphabet"`
	WindowLength  int     `yaml:"window_length"`
	Randomize     bool    `yaml:"randomize"`
	Seed          int64   `yaml:"seed"`
	CacheCapacity int     `yaml:"cache_capacity"`
	MaxResults    int     `yaml:"max_results"`
	Output        Output  `yaml:"output"`
	Monitor       Monitor `yaml:"monitor"`
	Logging       Logging `yaml:"logging"`
}

// Output selects the result sinks. Empty paths disable a sink.
type Output struct {
	Text   string `yaml:"text"`
	SQLite string `yaml:"sqlite"`
}

// Monitor configures the HTTP status endpoint. Empty Addr disables it.
type Monitor struct {
	Addr string `yaml:"addr"`
}

// Logging configures the slog handler.
type Logging struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// Default returns the configuration of the classic binary n=8 run.
func Default() Config {
	return Config{
		Alphabet:      "01",
		WindowLength:  8,
		Randomize:     false,
		Seed:          0,
		CacheCapacity: coverage.DefaultCapacity,
		MaxResults:    0,
		Output:        Output{Text: "upwords.txt"},
		Logging:       Logging{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. An empty file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks every field, including the search parameters.
func (c Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.CacheCapacity < 1 {
		return fmt.Errorf("%w: cache_capacity %d: %w", ErrInvalidConfig, c.CacheCapacity, coverage.ErrInvalidCapacity)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("%w: max_results %d must not be negative", ErrInvalidConfig, c.MaxResults)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// Params builds the validated search parameters.
func (c Config) Params() (word.Params, error) {
	a, err := word.NewAlphabet(c.Alphabet)
	if err != nil {
		return word.Params{}, fmt.Errorf("%w: alphabet: %w", ErrInvalidConfig, err)
	}
	p, err := word.NewParams(a, c.WindowLength)
	if err != nil {
		return word.Params{}, fmt.Errorf("%w: window_length: %w", ErrInvalidConfig, err)
	}

	return p, nil
}

// SearchOptions translates the run knobs into search options. Hooks and the
// context are added by the caller.
func (c Config) SearchOptions() []search.Option {
	opts := []search.Option{
		search.WithCacheCapacity(c.CacheCapacity),
		search.WithMaxResults(c.MaxResults),
	}
	if c.Randomize {
		opts = append(opts, search.WithRandomized(c.Seed))
	}

	return opts
}
