package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ponto")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("expected default token ttl 12h, got %v", cfg.TokenTTL)
	}
	if !cfg.RunMigrations {
		t.Fatalf("expected migrations enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid default config: %v", err)
	}
}

func TestValidateRequiresDatabase(t *testing.T) {
	cfg := Config{MaxBodyBytes: 4096, RateLimitPerMinute: 60}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}

func TestValidateProductionNeedsAuth(t *testing.T) {
	cfg := Config{
		DatabaseURL:        "postgres://localhost/ponto",
		Environment:        "production",
		MaxBodyBytes:       4096,
		RateLimitPerMinute: 60,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected production to require auth config")
	}

	cfg.JWTSecret = "secret"
	cfg.AdminPasswordHash = "$2a$10$hash"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid production config: %v", err)
	}
}

func TestValidateSyncNeedsSheetsURL(t *testing.T) {
	cfg := Config{
		DatabaseURL:        "postgres://localhost/ponto",
		SyncInterval:       time.Minute,
		MaxBodyBytes:       4096,
		RateLimitPerMinute: 60,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error when sync is enabled without a sheets URL")
	}
}

func TestAuthEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.AuthEnabled() {
		t.Fatalf("expected auth disabled with no credentials")
	}
	cfg.JWTSecret = "secret"
	if cfg.AuthEnabled() {
		t.Fatalf("expected auth disabled without password hash")
	}
	cfg.AdminPasswordHash = "$2a$10$hash"
	if !cfg.AuthEnabled() {
		t.Fatalf("expected auth enabled with both credentials")
	}
}
