package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Events   EventsConfig   `yaml:"events"`
	Decision DecisionConfig `yaml:"decision"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type DecisionConfig struct {
	TargetRatio float64 `yaml:"target_ratio"`
	WarnRatio   float64 `yaml:"warn_ratio"`
	// TODO: nothing consults warn_decline_headroom yet; either fold it into
	// the pill calculation or retire the knob.
	WarnDeclineHeadroom int     `yaml:"warn_decline_headroom"`
	ConeDeg             float64 `yaml:"cone_deg"`
	LateralOffsetMi     float64 `yaml:"lateral_offset_mi"`
	MinPerMile          float64 `yaml:"min_per_mile"`
	MinPerMin           float64 `yaml:"min_per_min"`
	Mode                string  `yaml:"mode"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Decision: DecisionConfig{
			TargetRatio:         0.72,
			WarnRatio:           0.74,
			WarnDeclineHeadroom: 2,
			ConeDeg:             25,
			LateralOffsetMi:     8,
			MinPerMile:          2.00,
			MinPerMin:           0.40,
			Mode:                "SHADOW",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	cfg.Decision.Mode = strings.ToUpper(cfg.Decision.Mode)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	d := c.Decision
	if d.TargetRatio <= 0 || d.TargetRatio >= 1 {
		return fmt.Errorf("target_ratio %.3f out of range (0, 1)", d.TargetRatio)
	}
	if d.WarnRatio <= 0 || d.WarnRatio >= 1 {
		return fmt.Errorf("warn_ratio %.3f out of range (0, 1)", d.WarnRatio)
	}
	if d.WarnDeclineHeadroom < 0 {
		return fmt.Errorf("warn_decline_headroom must be non-negative, got %d", d.WarnDeclineHeadroom)
	}
	if d.ConeDeg <= 0 || d.ConeDeg > 180 {
		return fmt.Errorf("cone_deg %.1f out of range (0, 180]", d.ConeDeg)
	}
	if d.LateralOffsetMi < 0 {
		return fmt.Errorf("lateral_offset_mi must be non-negative, got %.2f", d.LateralOffsetMi)
	}
	if d.MinPerMile < 0 || d.MinPerMin < 0 {
		return fmt.Errorf("pay floors must be non-negative")
	}
	if d.Mode != "SHADOW" && d.Mode != "LIVE" {
		return fmt.Errorf("mode must be SHADOW or LIVE, got %q", d.Mode)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GIGLY_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("GIGLY_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("GIGLY_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("GIGLY_TARGET_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Decision.TargetRatio = f
		}
	}
	if v := os.Getenv("GIGLY_WARN_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Decision.WarnRatio = f
		}
	}
	if v := os.Getenv("GIGLY_WARN_DECLINE_HEADROOM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Decision.WarnDeclineHeadroom = n
		}
	}
	if v := os.Getenv("GIGLY_CONE_DEG"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Decision.ConeDeg = f
		}
	}
	if v := os.Getenv("GIGLY_LATERAL_OFFSET_MI"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Decision.LateralOffsetMi = f
		}
	}
	if v := os.Getenv("GIGLY_MIN_PER_MILE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Decision.MinPerMile = f
		}
	}
	if v := os.Getenv("GIGLY_MIN_PER_MIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Decision.MinPerMin = f
		}
	}
	if v := os.Getenv("GIGLY_MODE"); v != "" {
		cfg.Decision.Mode = v
	}
	if v := os.Getenv("GIGLY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
