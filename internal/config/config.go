// SPDX-License-Identifier: EPL-2.0

// Package config loads the voxedit preset file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/voxedit"
	"github.com/ik5/voxedit/history"
	"github.com/ik5/voxedit/restore"
)

const (
	appName        = "voxedit"
	configFileName = "config.json"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the defaults the CLI starts from. Flags override it.
type Config struct {
	SampleRate      int                     `json:"sample_rate"`
	HistoryCapacity int                     `json:"history_capacity"`
	Gate            restore.GateParams      `json:"gate"`
	Silence         restore.SilenceSettings `json:"silence"`
	// Presets are extra named silence settings, selectable with --preset.
	Presets map[string]restore.SilenceSettings `json:"presets,omitempty"`
}

func Default() *Config {
	return &Config{
		SampleRate:      voxedit.DefaultSampleRate,
		HistoryCapacity: history.DefaultCapacity,
		Gate:            restore.DefaultGateSettings,
		Silence:         restore.DefaultSilenceSettings,
		Presets: map[string]restore.SilenceSettings{
			"default": restore.DefaultSilenceSettings,
			"auto":    restore.AutoSilenceSettings,
			"smart":   restore.SmartProfile.Silence,
		},
	}
}

// Path is the default location of the preset file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appName, configFileName), nil
}

// Load reads path on top of Default. An empty path or a missing file
// yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if r := c.Gate.ReductionPercent; r < 0 || r > 100 {
		return fmt.Errorf("%w: gate reduction_percent %v", ErrInvalidConfig, r)
	}
	check := func(name string, s restore.SilenceSettings) error {
		if s.ReductionPercent < 0 || s.ReductionPercent > 100 {
			return fmt.Errorf("%w: %s reduction_percent %v", ErrInvalidConfig, name, s.ReductionPercent)
		}
		if s.MinSilenceSeconds < 0 || s.MaxGapSeconds < 0 || s.FloorSeconds < 0 {
			return fmt.Errorf("%w: %s has negative durations", ErrInvalidConfig, name)
		}
		return nil
	}
	if err := check("silence", c.Silence); err != nil {
		return err
	}
	for name, p := range c.Presets {
		if err := check("preset "+name, p); err != nil {
			return err
		}
	}

	return nil
}

// Preset returns the named silence settings. An empty name is c.Silence.
func (c *Config) Preset(name string) (restore.SilenceSettings, bool) {
	if name == "" {
		return c.Silence, true
	}
	s, ok := c.Presets[name]

	return s, ok
}
