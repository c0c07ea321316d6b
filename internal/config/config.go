// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the lamb CLI configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Recursion strategies for factorial and fibonacci.
const (
	StrategyThunk      = "thunk"      // named self-reference, forced once
	StrategyFix        = "fix"        // Y combinator
	StrategyTrampoline = "trampoline" // accumulator steps forced in a loop
	StrategyFrames     = "frames"     // defunctionalized frames run by RunPure
	StrategyCPS        = "cps"        // continuations reified into frames
)

// ValidStrategies lists the accepted recursion.strategy values.
var ValidStrategies = []string{StrategyThunk, StrategyFix, StrategyTrampoline, StrategyFrames, StrategyCPS}

// Config is the root configuration.
type Config struct {
	Numerals  NumeralsConfig  `yaml:"numerals"`
	Recursion RecursionConfig `yaml:"recursion"`
	Challenge ChallengeConfig `yaml:"challenge"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// NumeralsConfig bounds host conversions.
type NumeralsConfig struct {
	Ceiling int `yaml:"ceiling"`
}

// RecursionConfig selects how recursive functions are evaluated.
type RecursionConfig struct {
	Strategy string `yaml:"strategy"` // thunk, fix, trampoline, frames, cps
}

// ChallengeConfig configures the interpreted challenge runner.
type ChallengeConfig struct {
	Timeout        string   `yaml:"timeout"`
	Parallelism    int      `yaml:"parallelism"`
	AllowedImports []string `yaml:"allowed_imports"`
	ProgressDB     string   `yaml:"progress_db"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Numerals: NumeralsConfig{
			Ceiling: 100000,
		},
		Recursion: RecursionConfig{
			Strategy: StrategyThunk,
		},
		Challenge: ChallengeConfig{
			Timeout:        "2s",
			Parallelism:    4,
			AllowedImports: []string{"fmt", "strings", "strconv"},
			ProgressDB:     filepath.Join(".lamb", "progress.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LAMB_PROGRESS_DB"); v != "" {
		c.Challenge.ProgressDB = v
	}
	if v := os.Getenv("LAMB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LAMB_STRATEGY"); v != "" {
		c.Recursion.Strategy = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Numerals.Ceiling < 1 {
		return fmt.Errorf("numerals.ceiling must be >= 1, got %d", c.Numerals.Ceiling)
	}
	if !slices.Contains(ValidStrategies, c.Recursion.Strategy) {
		return fmt.Errorf("invalid recursion.strategy: %q (valid: %v)", c.Recursion.Strategy, ValidStrategies)
	}
	if c.Challenge.Parallelism < 1 {
		return fmt.Errorf("challenge.parallelism must be >= 1, got %d", c.Challenge.Parallelism)
	}
	if d, err := time.ParseDuration(c.Challenge.Timeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid challenge.timeout: %q", c.Challenge.Timeout)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format: %q (valid: json, console)", c.Logging.Format)
	}
	return nil
}

// Timeout returns challenge.timeout as a duration, 2s when unparsable.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Challenge.Timeout)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Logger builds a zap logger from the logging section.
// verbose forces debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = c.Logging.Format
	if c.Logging.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
