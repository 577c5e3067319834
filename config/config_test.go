package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Progress.Timezone != "UTC" {
		t.Errorf("expected UTC timezone, got %s", cfg.Progress.Timezone)
	}
	if cfg.Redis.FoodCacheTTL != 10*time.Minute {
		t.Errorf("expected 10m food cache TTL, got %s", cfg.Redis.FoodCacheTTL)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("expected rate limiting enabled outside tests")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("PROGRESS_TIMEZONE", "America/Sao_Paulo")
	t.Setenv("FOOD_CACHE_TTL", "30s")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.Progress.Timezone != "America/Sao_Paulo" {
		t.Errorf("unexpected timezone %s", cfg.Progress.Timezone)
	}
	if cfg.Redis.FoodCacheTTL != 30*time.Second {
		t.Errorf("unexpected TTL %s", cfg.Redis.FoodCacheTTL)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis disabled")
	}
	if cfg.RateLimit.Enabled {
		t.Error("expected rate limiting disabled in test environment")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("invalid port should fall back to default, got %d", cfg.Server.Port)
	}
}

func TestProgressConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "utc", timezone: "UTC"},
		{name: "named zone", timezone: "Europe/Berlin"},
		{name: "unknown zone", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ProgressConfig{Timezone: tt.timezone}.Location()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc.String() != tt.timezone {
				t.Errorf("expected %s, got %s", tt.timezone, loc.String())
			}
		})
	}
}
