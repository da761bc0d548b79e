package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rodopios/internal/alphabet"
)

const (
	DefaultIntervalMs = 75
	DefaultSize       = 320.0
	DefaultTheme      = "matrix"
	DefaultDataDir    = "data"
	DefaultLogLevel   = "warn"
)

type Config struct {
	IntervalMs int      `yaml:"interval_ms" env:"RODOPIOS_INTERVAL_MS"`
	Alphabet   []string `yaml:"alphabet,omitempty" env:"RODOPIOS_ALPHABET"`
	Size       float64  `yaml:"size" env:"RODOPIOS_SIZE"`
	Theme      string   `yaml:"theme" env:"RODOPIOS_THEME"`
	DataDir    string   `yaml:"data_dir" env:"RODOPIOS_DATA"`
	LogLevel   string   `yaml:"log_level" env:"RODOPIOS_LOG_LEVEL"`
}

func DefaultConfig() *Config {
	return &Config{
		IntervalMs: DefaultIntervalMs,
		Size:       DefaultSize,
		Theme:      DefaultTheme,
		DataDir:    DefaultDataDir,
		LogLevel:   DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays RODOPIOS_* variables that are set onto cfg.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Interval is the tick period. Non-positive values fall back to the default.
func (c *Config) Interval() time.Duration {
	if c.IntervalMs <= 0 {
		return DefaultIntervalMs * time.Millisecond
	}
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// AlphabetOrDefault builds the configured alphabet, or the 40-symbol
// default when none is configured.
func (c *Config) AlphabetOrDefault() (*alphabet.Alphabet, error) {
	if len(c.Alphabet) == 0 {
		return alphabet.Default(), nil
	}
	a, err := alphabet.New(c.Alphabet...)
	if err != nil {
		return nil, fmt.Errorf("config alphabet: %w", err)
	}
	return a, nil
}
