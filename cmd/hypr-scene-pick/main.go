package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/angristan/hypr-scene/internal/cli"
	"github.com/angristan/hypr-scene/internal/config"
	"github.com/angristan/hypr-scene/internal/hypr"
	"github.com/angristan/hypr-scene/internal/tui"
)

func main() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: hypr-scene-pick needs a terminal. Use hypr-scene <1|2|3> instead.")
		os.Exit(cli.ExitFailure)
	}

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, &cli.EnvironmentError{Err: err})
		os.Exit(cli.ExitFailure)
	}

	// stderr is owned by the terminal UI
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	model := tui.NewModel(cfg, hypr.Connect, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(cli.ExitFailure)
	}
}
