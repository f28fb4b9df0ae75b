package config

import (
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"API_BASE_URL": "https://localhost:7001/api",
	}))
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q; want 8080", cfg.Port)
	}
	if cfg.SiteTitle != "Portfolio" {
		t.Errorf("SiteTitle = %q; want Portfolio", cfg.SiteTitle)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v; want 15s", cfg.RequestTimeout)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL = %v; want 10m", cfg.CacheTTL)
	}
	if cfg.WarmSchedule != "FREQ=MINUTELY;INTERVAL=5" {
		t.Errorf("WarmSchedule = %q", cfg.WarmSchedule)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing api base url",
			env:  map[string]string{},
		},
		{
			name: "api base url is not a url",
			env:  map[string]string{"API_BASE_URL": "not a url"},
		},
		{
			name: "bad timeout",
			env:  map[string]string{"API_BASE_URL": "http://api.local", "REQUEST_TIMEOUT": "soon"},
		},
		{
			name: "unknown env",
			env:  map[string]string{"API_BASE_URL": "http://api.local", "ENV": "staging"},
		},
		{
			name: "non numeric port",
			env:  map[string]string{"API_BASE_URL": "http://api.local", "PORT": "http"},
		},
		{
			name: "bad redis url",
			env:  map[string]string{"API_BASE_URL": "http://api.local", "REDIS_URL": "::"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tt.env)); err == nil {
				t.Errorf("FromEnv(%v) expected error, got nil", tt.env)
			}
		})
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"API_BASE_URL":    "http://api.local/api",
		"PORT":            "9090",
		"ENV":             "production",
		"SITE_TITLE":      "Jane Doe",
		"REQUEST_TIMEOUT": "3s",
		"REDIS_URL":       "redis://localhost:6379/0",
		"LOG_LEVEL":       "debug",
	}))
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.Port != "9090" || cfg.SiteTitle != "Jane Doe" || cfg.RequestTimeout != 3*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}
