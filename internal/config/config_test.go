package config

import (
	"errors"
	"log/slog"
	"testing"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		SignatureEnv: "abc123_1700000000_42",
	}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Signature != "abc123_1700000000_42" {
		t.Errorf("Expected signature abc123_1700000000_42, got %s", cfg.Signature)
	}
	if cfg.RuntimeDir != "/tmp/hypr" {
		t.Errorf("Expected runtime dir /tmp/hypr, got %s", cfg.RuntimeDir)
	}
	if cfg.DryRun {
		t.Error("Expected dry run to be off by default")
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("Expected default log level warn, got %v", cfg.LogLevel)
	}
}

func TestLoadMissingSignature(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unset", env: map[string]string{}},
		{name: "empty", env: map[string]string{SignatureEnv: ""}},
		{name: "unset with dry run", env: map[string]string{DryRunEnv: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(envFrom(tt.env))
			if !errors.Is(err, ErrNoSignature) {
				t.Errorf("Expected ErrNoSignature, got %v", err)
			}
			if cfg != nil {
				t.Errorf("Expected nil config, got %+v", cfg)
			}
		})
	}
}

func TestSocketPath(t *testing.T) {
	cfg := &Config{Signature: "sig", RuntimeDir: DefaultRuntimeDir}
	if got := cfg.SocketPath(); got != "/tmp/hypr/sig/.socket.sock" {
		t.Errorf("SocketPath() = %s, want /tmp/hypr/sig/.socket.sock", got)
	}

	cfg.RuntimeDir = "/run/user/1000/hypr"
	if got := cfg.SocketPath(); got != "/run/user/1000/hypr/sig/.socket.sock" {
		t.Errorf("SocketPath() = %s, want /run/user/1000/hypr/sig/.socket.sock", got)
	}
}

func TestLoadDryRun(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := Load(envFrom(map[string]string{
				SignatureEnv: "sig",
				DryRunEnv:    tt.value,
			}))
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg.DryRun != tt.want {
				t.Errorf("DryRun = %v for %q, want %v", cfg.DryRun, tt.value, tt.want)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.value); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
