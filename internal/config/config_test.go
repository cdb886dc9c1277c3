package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashdeck/internal/iterator"
	"github.com/abhisek/flashdeck/internal/schedule"
)

// isolate points every lookup at an empty temp dir so a developer's own
// config cannot leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FLASHDECK_CONFIG", "")
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, schedule.DefaultSettings(), cfg.SRS.Settings())
	order, err := cfg.Review.Order()
	require.NoError(t, err)
	assert.Equal(t, iterator.Order{Deck: iterator.SequentialOnceChildComplete, Card: iterator.DueFirstRandom}, order)
	assert.Equal(t, ".", cfg.Source.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadYAML(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, `
srs:
  algorithm: SpecifiedIntervals
  easy_interval: 7
  good_interval: 3
  hard_interval: 1
review:
  deck_order: EveryCardRandomDeckAndCard
  card_order: NewFirstSequential
  bury_siblings: true
source:
  dir: /tmp/decks
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	s := cfg.SRS.Settings()
	assert.Equal(t, schedule.KindSpecifiedIntervals, s.Kind)
	assert.Equal(t, 7, s.EasyInterval)
	assert.Equal(t, 250, s.BaseEase, "unset fields keep defaults")
	assert.True(t, cfg.Review.BurySiblings)
	assert.Equal(t, "/tmp/decks", cfg.Source.Dir)

	order, err := cfg.Review.Order()
	require.NoError(t, err)
	assert.Equal(t, iterator.RandomDeckAndCard, order.Deck)
	assert.Equal(t, iterator.NewFirstSequential, order.Card)
}

func TestLoadFromDefaultPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "flashdeck"), 0o755))
	writeYAML(t, filepath.Join(dir, "flashdeck"), "srs:\n  base_ease: 300\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.SRS.BaseEase)
}

func TestEnvOverridesYAML(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, "srs:\n  base_ease: 300\n")
	t.Setenv("FLASHDECK_BASE_EASE", "280")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 280, cfg.SRS.BaseEase)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)

	t.Setenv("FLASHDECK_CONFIG", filepath.Join(dir, "nope.yaml"))
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"low base ease", func(c *Config) { c.SRS.BaseEase = 120 }},
		{"lapse out of range", func(c *Config) { c.SRS.LapseIntervalChange = 1.5 }},
		{"easy bonus below one", func(c *Config) { c.SRS.EasyBonus = 0.9 }},
		{"zero maximum interval", func(c *Config) { c.SRS.MaximumInterval = 0 }},
		{"unknown algorithm", func(c *Config) { c.SRS.Algorithm = "FSRS" }},
		{"zero specified interval", func(c *Config) { c.SRS.HardInterval = 0 }},
		{"unknown deck order", func(c *Config) { c.Review.DeckOrder = "Alphabetical" }},
		{"unknown card order", func(c *Config) { c.Review.CardOrder = "Oldest" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			cfg, err := Default()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalid), "err = %v", err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "card", "n.json#q/0")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `"msg":"shown"`), out)
	assert.Contains(t, out, `"card":"n.json#q/0"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
