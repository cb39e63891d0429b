package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Import.MaxFileSize != 20971520 {
		t.Errorf("Import.MaxFileSize = %d, want %d", cfg.Import.MaxFileSize, 20971520)
	}
	if cfg.Import.HighValueThreshold != 50000 {
		t.Errorf("Import.HighValueThreshold = %d, want %d", cfg.Import.HighValueThreshold, 50000)
	}
	if cfg.Catalog.Timeout != 10*time.Second {
		t.Errorf("Catalog.Timeout = %s, want %s", cfg.Catalog.Timeout, 10*time.Second)
	}
	if cfg.Matching.MinScore != 30 {
		t.Errorf("Matching.MinScore = %d, want %d", cfg.Matching.MinScore, 30)
	}
	if cfg.Matching.MaxResults != 5 {
		t.Errorf("Matching.MaxResults = %d, want %d", cfg.Matching.MaxResults, 5)
	}
	if cfg.Matching.Strict {
		t.Error("Matching.Strict = true, want false")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("MATCH_MIN_SCORE", "50")
	os.Setenv("MATCH_STRICT", "true")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("MATCH_MIN_SCORE")
		os.Unsetenv("MATCH_STRICT")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Matching.MinScore != 50 {
		t.Errorf("Matching.MinScore = %d, want %d", cfg.Matching.MinScore, 50)
	}
	if !cfg.Matching.Strict {
		t.Error("Matching.Strict = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"bad port", "SERVER_PORT", "0"},
		{"port out of range", "SERVER_PORT", "99999"},
		{"bad duration", "CATALOG_TIMEOUT", "soon"},
		{"negative retries", "CATALOG_MAX_RETRIES", "-1"},
		{"zero max results", "MATCH_MAX_RESULTS", "0"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.env, tt.value)
			defer os.Unsetenv(tt.env)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded, want error", tt.env, tt.value)
			}
		})
	}
}

func TestConfig_String_MasksAPIKey(t *testing.T) {
	os.Setenv("CATALOG_API_KEY", "super-secret")
	defer os.Unsetenv("CATALOG_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := cfg.String()
	if strings.Contains(s, "super-secret") {
		t.Errorf("String() leaked API key: %s", s)
	}
	if !strings.Contains(s, "[MASKED]") {
		t.Errorf("String() missing mask marker: %s", s)
	}
}
