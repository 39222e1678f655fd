package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidMix = errors.New("invalid operation mix")

type Config struct {
	Log    LogConfig    `toml:"log"`
	Stress StressConfig `toml:"stress"`
	Mix    MixConfig    `toml:"mix"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type StressConfig struct {
	Duration string `toml:"duration"`
	Items    int    `toml:"items"`
	Catalog  string `toml:"catalog"`
	Seed     uint64 `toml:"seed"`
}

// MixConfig weights how often each operation is picked.
type MixConfig struct {
	Add      int `toml:"add"`
	Query    int `toml:"query"`
	Remove   int `toml:"remove"`
	Take     int `toml:"take"`
	Split    int `toml:"split"`
	Purify   int `toml:"purify"`
	Snapshot int `toml:"snapshot"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: slog.LevelInfo, Format: "text"},
		Stress: StressConfig{
			Duration: "10s",
			Items:    10000,
			Seed:     1,
		},
		Mix: MixConfig{Add: 4, Query: 3, Remove: 2, Take: 1, Split: 1, Purify: 1, Snapshot: 1},
	}
}

// LoadConfig reads path over the defaults. Keys missing from the file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	if err = cfg.Mix.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c StressConfig) ParseDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", c.Duration, err)
	}
	return d, nil
}

// Validate rejects negative weights and a mix where every weight is zero.
func (m MixConfig) Validate() error {
	total := 0
	for _, w := range m.weights() {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %d", ErrInvalidMix, w)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidMix)
	}
	return nil
}

func (m MixConfig) weights() []int {
	return []int{m.Add, m.Query, m.Remove, m.Take, m.Split, m.Purify, m.Snapshot}
}

func setupLogger(cfg LogConfig) {
	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     cfg.Level,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
