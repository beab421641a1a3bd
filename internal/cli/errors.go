package cli

import (
	"fmt"
	"strings"

	"github.com/angristan/hypr-scene/internal/config"
	"github.com/angristan/hypr-scene/internal/models"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// UsageError is returned when the argument count is wrong
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return Usage()
}

// InvalidSceneError is returned for an argument that names no scene
type InvalidSceneError struct {
	Value string
	Err   error
}

func (e *InvalidSceneError) Error() string {
	return fmt.Sprintf("Invalid scene: %s. Must be 1, 2, or 3.", e.Value)
}

func (e *InvalidSceneError) Unwrap() error { return e.Err }

// EnvironmentError is returned when the instance signature is missing
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("Error: %s not set. Are you running Hyprland?", config.SignatureEnv)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// ConnectionError is returned when the control socket cannot be opened
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("Error connecting to Hyprland socket: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ExitCode maps an error from Run's validation steps to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// Usage returns the usage text, one line per scene
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: hypr-scene <1|2|3>")
	for _, s := range models.Scenes() {
		fmt.Fprintf(&b, "\n  %d = %s", s.ID, s.Label)
	}
	return b.String()
}
