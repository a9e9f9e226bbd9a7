package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"attendly.com/attendly/core"
)

// Configuration is the process-wide settings, read once at startup.
// A yaml file provides the base values, environment variables override.
type Configuration struct {
	Addr     string `yaml:"addr"`
	DSN      string `yaml:"dsn"`
	Timezone string `yaml:"timezone"`

	OfficeStartTime    string `yaml:"officeStartTime"`
	GracePeriodMinutes int    `yaml:"gracePeriodMinutes"`
	MaxBreakMinutes    int    `yaml:"maxBreakMinutes"`
}

func defaults() Configuration {
	return Configuration{
		Addr:               "0.0.0.0:8090",
		Timezone:           "UTC",
		OfficeStartTime:    "09:00",
		GracePeriodMinutes: 10,
		MaxBreakMinutes:    30,
	}
}

// Load reads the configuration. path may be empty or point at a missing
// file; env overrides always apply.
func Load(path string) (Configuration, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("unmarshal config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Configuration) {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("OFFICE_START_TIME"); v != "" {
		cfg.OfficeStartTime = v
	}
	if v, err := strconv.Atoi(os.Getenv("GRACE_PERIOD_MINUTES")); err == nil {
		cfg.GracePeriodMinutes = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAX_BREAK_DURATION_MINUTES")); err == nil {
		cfg.MaxBreakMinutes = v
	}
}

// CoreConfig validates the office parameters and resolves the timezone.
func (c Configuration) CoreConfig() (core.Config, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return core.Config{}, fmt.Errorf("invalid timezone %s: %w", c.Timezone, err)
	}

	if _, err := core.ParseTimeOnDate(time.Now().In(loc), c.OfficeStartTime); err != nil {
		return core.Config{}, fmt.Errorf("invalid office start time %s: %w", c.OfficeStartTime, err)
	}
	if c.GracePeriodMinutes < 0 {
		return core.Config{}, fmt.Errorf("grace period must not be negative")
	}
	if c.MaxBreakMinutes < 0 {
		return core.Config{}, fmt.Errorf("max break must not be negative")
	}

	return core.Config{
		OfficeStart:     c.OfficeStartTime,
		GraceMinutes:    c.GracePeriodMinutes,
		MaxBreakMinutes: c.MaxBreakMinutes,
		Location:        loc,
	}, nil
}
