package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/upword/config"
	"github.com/katalvlaran/upword/coverage"
	"github.com/katalvlaran/upword/search"
	"github.com/katalvlaran/upword/word"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, 135, p.TargetLength())
	assert.Equal(t, "upwords.txt", cfg.Output.Text)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
alphabet: "012"
window_length: 3
randomize: true
seed: 17
cache_capacity: 50
max_results: 4
output:
  text: out.txt
  sqlite: runs.db
monitor:
  addr: ":9090"
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "012", cfg.Alphabet)
	assert.Equal(t, 3, cfg.WindowLength)
	assert.True(t, cfg.Randomize)
	assert.Equal(t, int64(17), cfg.Seed)
	assert.Equal(t, 50, cfg.CacheCapacity)
	assert.Equal(t, 4, cfg.MaxResults)
	assert.Equal(t, config.Output{Text: "out.txt", SQLite: "runs.db"}, cfg.Output)
	assert.Equal(t, ":9090", cfg.Monitor.Addr)
	assert.Equal(t, config.Logging{Level: "debug", Format: "json"}, cfg.Logging)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("window_length: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, "01", cfg.Alphabet)
	assert.Equal(t, 4, cfg.WindowLength)
	assert.Equal(t, coverage.DefaultCapacity, cfg.CacheCapacity)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("alphabet: \"01\"\nwindow: 3\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParse_RejectsBadTypes(t *testing.T) {
	_, err := config.Parse([]byte("window_length: many\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		also   error
	}{
		{"empty alphabet", func(c *config.Config) { c.Alphabet = "" }, word.ErrEmptyAlphabet},
		{"wildcard in alphabet", func(c *config.Config) { c.Alphabet = "0*" }, word.ErrInvalidSymbol},
		{"zero window", func(c *config.Config) { c.WindowLength = 0 }, word.ErrInvalidWindowLength},
		{"huge window", func(c *config.Config) { c.WindowLength = 40 }, word.ErrWindowTooLong},
		{"zero capacity", func(c *config.Config) { c.CacheCapacity = 0 }, coverage.ErrInvalidCapacity},
		{"negative max", func(c *config.Config) { c.MaxResults = -1 }, nil},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, nil},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upword.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet: \"ab\"\nwindow_length: 2\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ab", cfg.Alphabet)
	assert.Equal(t, 2, cfg.WindowLength)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSearchOptions(t *testing.T) {
	cfg := config.Default()
	cfg.CacheCapacity = 12
	cfg.MaxResults = 3
	cfg.Randomize = true
	cfg.Seed = 5

	o := search.DefaultOptions()
	for _, fn := range cfg.SearchOptions() {
		fn(&o)
	}
	assert.Equal(t, 12, o.CacheCapacity)
	assert.Equal(t, 3, o.MaxResults)
	assert.True(t, o.Randomized)
	assert.Equal(t, int64(5), o.Seed)

	cfg.Randomize = false
	o = search.DefaultOptions()
	for _, fn := range cfg.SearchOptions() {
		fn(&o)
	}
	assert.False(t, o.Randomized)
}
