// Package config loads topshot settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/srodi/topshot/pkg/types"
)

// Config is the resolved runtime configuration. RetentionSeconds and
// CPUThreshold are carried as-is, even when negative: the tracker handles
// invalid values by pruning or filtering everything rather than failing.
type Config struct {
	Interval         time.Duration
	RetentionSeconds int
	CPUThreshold     float64
	TopN             int
	HideKernel       bool
}

// fileConfig is the YAML shape. Pointer fields distinguish "absent" from
// zero so a config file only overrides what it actually sets.
type fileConfig struct {
	Interval         string   `yaml:"interval"`
	RetentionSeconds *int     `yaml:"retention_seconds"`
	CPUThreshold     *float64 `yaml:"cpu_threshold"`
	TopN             *int     `yaml:"top"`
	HideKernel       *bool    `yaml:"hide_kernel"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Interval:         types.DefaultInterval,
		RetentionSeconds: types.DefaultRetentionSeconds,
		CPUThreshold:     types.DefaultCPUThreshold,
		TopN:             types.DefaultTopN,
		HideKernel:       true,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged; a path that cannot be read or parsed is an error
// because an explicitly requested file should not fail silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if file.Interval != "" {
		interval, err := time.ParseDuration(file.Interval)
		if err != nil {
			return cfg, fmt.Errorf("parsing interval: %w", err)
		}
		cfg.Interval = interval
	}
	if file.RetentionSeconds != nil {
		cfg.RetentionSeconds = *file.RetentionSeconds
	}
	if file.CPUThreshold != nil {
		cfg.CPUThreshold = *file.CPUThreshold
	}
	if file.TopN != nil {
		cfg.TopN = *file.TopN
	}
	if file.HideKernel != nil {
		cfg.HideKernel = *file.HideKernel
	}
	return cfg, nil
}

// Normalize clamps the caller-owned knobs the loop cannot run without. The
// tracker-owned knobs (retention, threshold) pass through untouched.
func (c Config) Normalize() Config {
	if c.Interval <= 0 {
		c.Interval = types.DefaultInterval
	}
	if c.TopN <= 0 {
		c.TopN = 1
	}
	return c
}

// Retention converts the configured window into a duration.
func (c Config) Retention() time.Duration {
	return time.Duration(c.RetentionSeconds) * time.Second
}
