package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LOG_LEVEL", "ENABLE_REQUEST_LOGGING", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BODY_BYTES"} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if !cfg.EnableRequestLogging {
		t.Fatalf("expected request logging enabled by default")
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Fatalf("unexpected body limit: %d", cfg.MaxBodyBytes)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENABLE_REQUEST_LOGGING", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" || cfg.LogLevel != "debug" || cfg.EnableRequestLogging {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 4 || cfg.MaxBodyBytes != 2048 {
		t.Fatalf("environment limits not applied: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("RATE_LIMIT_BURST", "9")

	path := writeConfigFile(t, `
port: "7100"
log_level: warn
write_timeout: 3s
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 3
`)
	port := "7200"

	cfg, err := Load(&CLIOverrides{ConfigFile: path, Port: &port})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7200" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.RateLimitBurst != 3 {
		t.Fatalf("expected YAML burst to override env, got %d", cfg.RateLimitBurst)
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected explicit zero rps from YAML, got %v", cfg.RateLimitRPS)
	}
	if cfg.LogLevel != "warn" || cfg.WriteTimeout != 3*time.Second || cfg.EnableRequestLogging {
		t.Fatalf("YAML values not applied: %+v", cfg)
	}
	if cfg.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("expected default read header timeout, got %s", cfg.ReadHeaderTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name     string
		yaml     string
		wantText string
	}{
		{name: "BadDuration", yaml: "idle_timeout: soon\n", wantText: "idle_timeout"},
		{name: "BadYAML", yaml: "port: [\n", wantText: "parse YAML"},
		{name: "NegativeRPS", yaml: "rate_limit:\n  rps: -1\n", wantText: "RATE_LIMIT_RPS"},
		{name: "UnknownLevel", yaml: "log_level: loud\n", wantText: "unknown log level"},
		{name: "ZeroBody", yaml: "max_body_bytes: 0\n", wantText: "MAX_BODY_BYTES"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(&CLIOverrides{ConfigFile: writeConfigFile(t, tc.yaml)})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantText) {
				t.Fatalf("expected error containing %q, got %v", tc.wantText, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
