package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"GIGLY_PORT", "GIGLY_METRICS_PORT", "GIGLY_NATS_URL",
		"GIGLY_TARGET_RATIO", "GIGLY_WARN_RATIO", "GIGLY_WARN_DECLINE_HEADROOM",
		"GIGLY_CONE_DEG", "GIGLY_LATERAL_OFFSET_MI",
		"GIGLY_MIN_PER_MILE", "GIGLY_MIN_PER_MIN",
		"GIGLY_MODE", "GIGLY_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if math.Abs(cfg.Decision.TargetRatio-0.72) > 0.001 {
		t.Errorf("expected target 0.72, got %f", cfg.Decision.TargetRatio)
	}
	if math.Abs(cfg.Decision.WarnRatio-0.74) > 0.001 {
		t.Errorf("expected warn 0.74, got %f", cfg.Decision.WarnRatio)
	}
	if cfg.Decision.WarnDeclineHeadroom != 2 {
		t.Errorf("expected warn decline headroom 2, got %d", cfg.Decision.WarnDeclineHeadroom)
	}
	if cfg.Decision.ConeDeg != 25 {
		t.Errorf("expected cone 25, got %f", cfg.Decision.ConeDeg)
	}
	if cfg.Decision.LateralOffsetMi != 8 {
		t.Errorf("expected lateral offset 8, got %f", cfg.Decision.LateralOffsetMi)
	}
	if cfg.Decision.MinPerMile != 2.00 {
		t.Errorf("expected min per mile 2.00, got %f", cfg.Decision.MinPerMile)
	}
	if cfg.Decision.MinPerMin != 0.40 {
		t.Errorf("expected min per min 0.40, got %f", cfg.Decision.MinPerMin)
	}
	if cfg.Decision.Mode != "SHADOW" {
		t.Errorf("expected mode SHADOW, got %s", cfg.Decision.Mode)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIGLY_PORT", "9100")
	t.Setenv("GIGLY_MODE", "live")
	t.Setenv("GIGLY_TARGET_RATIO", "0.65")
	t.Setenv("GIGLY_MIN_PER_MILE", "1.50")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Decision.Mode != "LIVE" {
		t.Errorf("expected mode normalized to LIVE, got %s", cfg.Decision.Mode)
	}
	if cfg.Decision.TargetRatio != 0.65 {
		t.Errorf("expected target 0.65, got %f", cfg.Decision.TargetRatio)
	}
	if cfg.Decision.MinPerMile != 1.50 {
		t.Errorf("expected min per mile 1.50, got %f", cfg.Decision.MinPerMile)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 9200\ndecision:\n  mode: LIVE\n  cone_deg: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Decision.Mode != "LIVE" {
		t.Errorf("expected mode LIVE, got %s", cfg.Decision.Mode)
	}
	if cfg.Decision.ConeDeg != 30 {
		t.Errorf("expected cone 30, got %f", cfg.Decision.ConeDeg)
	}
	// Untouched keys keep their defaults.
	if cfg.Decision.TargetRatio != 0.72 {
		t.Errorf("expected default target, got %f", cfg.Decision.TargetRatio)
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name   string
		env    map[string]string
		wantOK bool
	}{
		{"defaults are valid", nil, true},
		{"target ratio zero", map[string]string{"GIGLY_TARGET_RATIO": "0"}, false},
		{"target ratio one", map[string]string{"GIGLY_TARGET_RATIO": "1"}, false},
		{"warn ratio out of range", map[string]string{"GIGLY_WARN_RATIO": "1.5"}, false},
		{"bogus mode", map[string]string{"GIGLY_MODE": "DRYRUN"}, false},
		{"negative floor", map[string]string{"GIGLY_MIN_PER_MILE": "-1"}, false},
		{"cone too wide", map[string]string{"GIGLY_CONE_DEG": "200"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if tt.wantOK && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
