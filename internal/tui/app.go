package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/angristan/hypr-scene/internal/config"
	"github.com/angristan/hypr-scene/internal/hypr"
	"github.com/angristan/hypr-scene/internal/models"
	"github.com/angristan/hypr-scene/internal/scene"
	"github.com/angristan/hypr-scene/internal/tui/components"
	"github.com/angristan/hypr-scene/internal/tui/messages"
	"github.com/angristan/hypr-scene/internal/tui/screens"
	"github.com/angristan/hypr-scene/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenScenes Screen = iota
	ScreenApplying
	ScreenResult
)

// ConnectFunc opens the dispatcher a scene is applied through
type ConnectFunc func(ctx context.Context, cfg *config.Config, out io.Writer) (hypr.DispatchCloser, error)

// Model is the main application model
type Model struct {
	config  *config.Config
	connect ConnectFunc
	logger  *slog.Logger

	screen       Screen
	scenesScreen screens.ScenesModel

	// Outcome of the last activation
	applying int
	applied  *messages.SceneAppliedMsg
	err      error

	// Window size
	width  int
	height int

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model
func NewModel(cfg *config.Config, connect ConnectFunc, logger *slog.Logger) Model {
	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		config:       cfg,
		connect:      connect,
		logger:       logger,
		screen:       ScreenScenes,
		scenesScreen: screens.NewScenesModel(models.Scenes()),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("hypr-scene")
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scenesScreen.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		switch m.screen {
		case ScreenApplying:
			return m, nil
		case ScreenResult:
			m.cancel()
			return m, tea.Quit
		}

	case messages.SceneActivatedMsg:
		m.screen = ScreenApplying
		m.applying = msg.SceneID
		return m, m.applySceneCmd(msg.SceneID)

	case messages.SceneAppliedMsg:
		m.applied = &msg
		m.screen = ScreenResult
		return m, nil

	case messages.ErrorMsg:
		m.err = msg.Err
		m.screen = ScreenResult
		return m, nil
	}

	if m.screen == ScreenScenes {
		var cmd tea.Cmd
		m.scenesScreen, cmd = m.scenesScreen.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current screen
func (m Model) View() string {
	header := components.RenderHeader(m.width, components.ShortSignature(m.config.Signature))

	var body string
	switch m.screen {
	case ScreenScenes:
		body = m.scenesScreen.View()
	case ScreenApplying:
		body = styles.StyleTextMuted.Render(fmt.Sprintf("Applying scene %d...", m.applying))
	case ScreenResult:
		body = m.renderResult()
	default:
		body = "Unknown screen"
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) renderResult() string {
	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(styles.StyleError.Render("Failed: " + m.err.Error()))
		b.WriteString("\n")

	case m.applied != nil:
		res := m.applied.Result
		if res.OK() {
			b.WriteString(styles.StyleSuccess.Render(fmt.Sprintf("Scene %d applied", m.applied.SceneID)))
		} else {
			b.WriteString(styles.StyleError.Render(fmt.Sprintf("Scene %d applied with errors", m.applied.SceneID)))
		}
		b.WriteString("\n")
		b.WriteString(styles.StyleTextMuted.Render(fmt.Sprintf("%d/%d commands sent", res.Sent, res.Attempted)))
		b.WriteString("\n")
		if m.applied.Report != "" {
			b.WriteString("\n")
			b.WriteString(styles.StyleError.Render(strings.TrimRight(m.applied.Report, "\n")))
			b.WriteString("\n")
		}
		if m.applied.Output != "" {
			b.WriteString("\n")
			b.WriteString(styles.StyleTextMuted.Render("Dry run:\n" + strings.TrimRight(m.applied.Output, "\n")))
			b.WriteString("\n")
		}
	}

	b.WriteString(styles.StyleHelp.Render("press any key to exit"))
	return styles.StyleModal.Render(b.String())
}

// applySceneCmd creates a command that connects and applies a scene
func (m Model) applySceneCmd(sceneID int) tea.Cmd {
	return func() tea.Msg {
		s, err := models.SceneByArg(strconv.Itoa(sceneID))
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}

		var output bytes.Buffer
		d, err := m.connect(m.ctx, m.config, &output)
		if err != nil {
			return messages.ErrorMsg{Err: fmt.Errorf("failed to connect to Hyprland socket: %w", err)}
		}
		defer func() {
			if cerr := d.Close(); cerr != nil {
				m.logger.Debug("closing dispatcher failed", "error", cerr)
			}
		}()

		var report bytes.Buffer
		res := scene.Apply(d, s, &report, m.logger)

		return messages.SceneAppliedMsg{
			SceneID: sceneID,
			Result:  res,
			Report:  report.String(),
			Output:  output.String(),
		}
	}
}
