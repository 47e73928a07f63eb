package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TELEMETRY_DB_URL", "")
	t.Setenv("TELEMETRY_TIMEOUT", "")
	t.Setenv("PREDICTOR_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Telemetry.BaseURL != "" {
		t.Fatalf("telemetry base URL must default to empty, got %s", cfg.Telemetry.BaseURL)
	}
	if cfg.Telemetry.TierTimeout != 3*time.Second {
		t.Fatalf("expected default tier timeout 3s, got %s", cfg.Telemetry.TierTimeout)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TELEMETRY_TIMEOUT", "500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Server.Port)
	}
	if cfg.Telemetry.TierTimeout != 500*time.Millisecond {
		t.Fatalf("expected 500ms tier timeout, got %s", cfg.Telemetry.TierTimeout)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TELEMETRY_TIMEOUT", "soon")
	cfg := Load()
	if cfg.Telemetry.TierTimeout != 3*time.Second {
		t.Fatalf("invalid duration must fall back to 3s, got %s", cfg.Telemetry.TierTimeout)
	}
}
