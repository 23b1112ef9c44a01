// SPDX-License-Identifier: Apache-2.0

// Package config loads runtime settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/logger"
	"github.com/onebuilding/energy-report/internal/report"
)

const (
	EnvConfigFile  = "ENERGY_REPORT_CONFIG"
	EnvLogLevel    = "ENERGY_REPORT_LOG_LEVEL"
	EnvLogFormat   = "ENERGY_REPORT_LOG_FORMAT"
	EnvConcurrency = "ENERGY_REPORT_CONCURRENCY"
	EnvTextLayer   = "ENERGY_REPORT_TEXT_LAYER"
)

// Config is the root configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Style    report.Style   `yaml:"style"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AnalysisConfig tunes extraction and batch runs.
type AnalysisConfig struct {
	// Window is the number of lines searched after a section anchor.
	Window int `yaml:"window"`
	// Concurrency bounds the documents analysed at once in a batch.
	Concurrency int `yaml:"concurrency"`
	// Validate checks every result against the output contract.
	Validate bool `yaml:"validate"`
	// TextLayer is the command that turns PDF bytes on stdin into
	// form-feed separated page text, e.g. "pdftotext -layout - -".
	TextLayer string `yaml:"text_layer"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: logger.FormatText},
		Analysis: AnalysisConfig{
			Window:      audit.DefaultWindow,
			Concurrency: 4,
		},
		Style: report.DefaultStyle(),
	}
}

// Load reads path when it is non-empty (or ENERGY_REPORT_CONFIG when path is
// empty), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.merge(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// merge overlays the YAML document onto the defaults. Style fields left out
// of the file keep their default colour.
func (c *Config) merge(data []byte) error {
	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}
	// Booleans need a pointer to tell "false" from "not set".
	var flags struct {
		Analysis struct {
			Validate *bool `yaml:"validate"`
		} `yaml:"analysis"`
	}
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return err
	}
	if overlay.Log.Level != "" {
		c.Log.Level = overlay.Log.Level
	}
	if overlay.Log.Format != "" {
		c.Log.Format = overlay.Log.Format
	}
	if overlay.Analysis.Window != 0 {
		c.Analysis.Window = overlay.Analysis.Window
	}
	if overlay.Analysis.Concurrency != 0 {
		c.Analysis.Concurrency = overlay.Analysis.Concurrency
	}
	if flags.Analysis.Validate != nil {
		c.Analysis.Validate = *flags.Analysis.Validate
	}
	if overlay.Analysis.TextLayer != "" {
		c.Analysis.TextLayer = overlay.Analysis.TextLayer
	}
	c.Style.Merge(overlay.Style)
	return nil
}

func (c *Config) finalize() error {
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConcurrency, err)
		}
		c.Analysis.Concurrency = n
	}
	if v := os.Getenv(EnvTextLayer); v != "" {
		c.Analysis.TextLayer = v
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != logger.FormatText && c.Log.Format != logger.FormatJSON {
		errs = append(errs, fmt.Errorf("log.format: must be %q or %q, got %q", logger.FormatText, logger.FormatJSON, c.Log.Format))
	}
	if c.Analysis.Window < 1 {
		errs = append(errs, fmt.Errorf("analysis.window: must be positive, got %d", c.Analysis.Window))
	}
	if c.Analysis.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("analysis.concurrency: must be positive, got %d", c.Analysis.Concurrency))
	}
	if err := c.Style.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
