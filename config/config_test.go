// Package config provides application configuration management.
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.Engine.EWMAAlpha != 0.3 {
		t.Errorf("expected alpha 0.3, got %v", cfg.Engine.EWMAAlpha)
	}
	if cfg.Engine.SensitivityStep != 500 {
		t.Errorf("expected sensitivity step 500, got %v", cfg.Engine.SensitivityStep)
	}
	if cfg.Redis.ResultTTL != 10*time.Minute {
		t.Errorf("expected ttl 10m, got %s", cfg.Redis.ResultTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("ENGINE_EWMA_ALPHA", "0.5")
	t.Setenv("ENGINE_FORECAST_CONFIDENCE", "not-a-number")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := Load()

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Engine.EWMAAlpha != 0.5 {
		t.Errorf("expected alpha 0.5, got %v", cfg.Engine.EWMAAlpha)
	}
	if cfg.Engine.ForecastConfidence != 0.8 {
		t.Errorf("expected invalid value to fall back to 0.8, got %v", cfg.Engine.ForecastConfidence)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled")
	}
	if cfg.Engine.RateLimitWindow != 30*time.Second {
		t.Errorf("expected 30s window, got %s", cfg.Engine.RateLimitWindow)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "alpha out of range", mutate: func(c *Config) { c.Engine.EWMAAlpha = 1.5 }, wantErr: true},
		{name: "unsupported confidence", mutate: func(c *Config) { c.Engine.ForecastConfidence = 0.5 }, wantErr: true},
		{name: "default secret in production", mutate: func(c *Config) { c.Server.Environment = "production" }, wantErr: true},
		{name: "custom secret in production", mutate: func(c *Config) {
			c.Server.Environment = "production"
			c.JWT.Secret = "a-real-secret"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
