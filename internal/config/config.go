// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the accelstreamd runtime configuration from a
// YAML file and fills unset fields with the commissioned defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration for accelstreamd.
type Config struct {
	// Bus is the I2C bus name; empty selects the first available bus.
	Bus string `yaml:"bus"`
	// Addr is the 7-bit device address.
	Addr uint16 `yaml:"addr"`
	// Serial is the telemetry output device; "-" writes to stdout.
	Serial string `yaml:"serial"`
	Baud   int    `yaml:"baud"`
	// RateHz is the output data rate: 50 or 100.
	RateHz int `yaml:"rate_hz"`
	// RangeG is the full-scale range in g: 2 or 4.
	RangeG int `yaml:"range_g"`
	// PollIntervalMs overrides how often the loop re-checks the status
	// register; zero lets the streamer derive it from the rate.
	PollIntervalMs int `yaml:"poll_interval_ms"`
}

// Default is the commissioned configuration: 100 Hz, ±4g, stdout.
var Default = Config{
	Addr:   0x18,
	Serial: "-",
	Baud:   115200,
	RateHz: 100,
	RangeG: 4,
}

// Load reads path and returns the configuration with defaults applied.
func Load(path string) (Config, error) {
	cfg := Default
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize fills zero values with defaults so a sparse file works.
func (c *Config) normalize() {
	if c.Addr == 0 {
		c.Addr = Default.Addr
	}
	if c.Serial == "" {
		c.Serial = Default.Serial
	}
	if c.Baud == 0 {
		c.Baud = Default.Baud
	}
	if c.RateHz == 0 {
		c.RateHz = Default.RateHz
	}
	if c.RangeG == 0 {
		c.RangeG = Default.RangeG
	}
}

// Validate rejects configurations the device cannot honor.
func (c *Config) Validate() error {
	if c.Addr > 0x7F {
		return fmt.Errorf("config: addr 0x%X is not a 7-bit address", c.Addr)
	}
	if c.RateHz != 50 && c.RateHz != 100 {
		return fmt.Errorf("config: rate_hz must be 50 or 100, got %d", c.RateHz)
	}
	if c.RangeG != 2 && c.RangeG != 4 {
		return fmt.Errorf("config: range_g must be 2 or 4, got %d", c.RangeG)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.Baud)
	}
	if c.PollIntervalMs < 0 {
		return fmt.Errorf("config: poll_interval_ms must not be negative")
	}
	return nil
}

// Interval returns the sample period for the configured rate.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(c.RateHz)
}

// PollInterval returns the loop poll period, zero when unset.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}
