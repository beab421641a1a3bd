package config

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
)

const (
	// SignatureEnv identifies the running Hyprland instance
	SignatureEnv = "HYPRLAND_INSTANCE_SIGNATURE"
	// DryRunEnv makes hypr-scene print commands instead of sending them
	DryRunEnv = "HYPR_SCENE_DRY_RUN"
	// LogLevelEnv selects the slog level (debug, info, warn, error)
	LogLevelEnv = "HYPR_SCENE_LOG_LEVEL"

	// DefaultRuntimeDir is where Hyprland keeps one directory per instance
	DefaultRuntimeDir = "/tmp/hypr"
	// SocketName is the control socket inside an instance directory
	SocketName = ".socket.sock"
)

var ErrNoSignature = errors.New(SignatureEnv + " not set")

// Config stores the runtime settings derived from the environment
type Config struct {
	// Instance signature of the running compositor
	Signature string
	// Directory holding per-instance socket directories
	RuntimeDir string
	// Print commands to stdout instead of connecting
	DryRun bool
	// Minimum level for debug logging on stderr
	LogLevel slog.Level
}

// Load builds a Config from the environment. getenv is usually os.Getenv.
// An empty signature is treated the same as an unset one.
func Load(getenv func(string) string) (*Config, error) {
	sig := getenv(SignatureEnv)
	if sig == "" {
		return nil, ErrNoSignature
	}

	return &Config{
		Signature:  sig,
		RuntimeDir: DefaultRuntimeDir,
		DryRun:     parseBool(getenv(DryRunEnv)),
		LogLevel:   ParseLogLevel(getenv(LogLevelEnv)),
	}, nil
}

// SocketPath returns the control socket of the configured instance
func (c *Config) SocketPath() string {
	return filepath.Join(c.RuntimeDir, c.Signature, SocketName)
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to warn
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
