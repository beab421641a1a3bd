package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/angristan/hypr-scene/internal/config"
	"github.com/angristan/hypr-scene/internal/hypr"
	"github.com/angristan/hypr-scene/internal/models"
	"github.com/angristan/hypr-scene/internal/scene"
)

// ConnectFunc opens the dispatcher for a validated configuration
type ConnectFunc func(ctx context.Context, cfg *config.Config, out io.Writer) (hypr.DispatchCloser, error)

// CLI runs hypr-scene against injected stdio and environment
type CLI struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	// Injectable for testing
	connect ConnectFunc
}

// New creates a CLI writing to stdout/stderr and reading env through getenv
func New(stdout, stderr io.Writer, getenv func(string) string) *CLI {
	return &CLI{
		stdout:  stdout,
		stderr:  stderr,
		getenv:  getenv,
		connect: hypr.Connect,
	}
}

// Run executes one invocation and returns the process exit code.
// Validation happens in order (argument count, scene, environment,
// connection) and every failure returns before any command is written.
func (c *CLI) Run(ctx context.Context, args []string) int {
	s, cfg, err := c.prepare(args)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return ExitCode(err)
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Debug("resolved scene", "scene", s.ID, "socket", cfg.SocketPath(), "dry_run", cfg.DryRun)

	d, err := c.connect(ctx, cfg, c.stdout)
	if err != nil {
		err = &ConnectionError{Path: cfg.SocketPath(), Err: err}
		fmt.Fprintln(c.stderr, err)
		return ExitCode(err)
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			logger.Debug("closing dispatcher failed", "error", cerr)
		}
	}()

	scene.Apply(d, s, c.stderr, logger)
	return ExitSuccess
}

// prepare performs every check that must pass before the socket is touched
func (c *CLI) prepare(args []string) (models.Scene, *config.Config, error) {
	if len(args) != 1 {
		return models.Scene{}, nil, &UsageError{Got: len(args)}
	}

	s, err := models.SceneByArg(args[0])
	if err != nil {
		return models.Scene{}, nil, &InvalidSceneError{Value: args[0], Err: err}
	}

	cfg, err := config.Load(c.getenv)
	if err != nil {
		return models.Scene{}, nil, &EnvironmentError{Err: err}
	}
	return s, cfg, nil
}
