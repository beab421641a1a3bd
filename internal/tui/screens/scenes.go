package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angristan/hypr-scene/internal/models"
	"github.com/angristan/hypr-scene/internal/tui/components"
	"github.com/angristan/hypr-scene/internal/tui/messages"
	"github.com/angristan/hypr-scene/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the picker key bindings
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Pick  key.Binding
	Apply key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Apply, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns the bindings used by the picker
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "apply scene"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScenesModel is the scene picker screen
type ScenesModel struct {
	scenes   []models.Scene
	selected int

	keys KeyMap
	help help.Model

	// Window size
	width  int
	height int
}

// NewScenesModel creates a picker over scenes
func NewScenesModel(scenes []models.Scene) ScenesModel {
	return ScenesModel{
		scenes: scenes,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// SetSize sets the terminal size
func (m *ScenesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Selected returns the highlighted scene
func (m ScenesModel) Selected() (models.Scene, bool) {
	if m.selected < 0 || m.selected >= len(m.scenes) {
		return models.Scene{}, false
	}
	return m.scenes[m.selected], true
}

// Update handles messages
func (m ScenesModel) Update(msg tea.Msg) (ScenesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.scenes)-1 {
			m.selected++
		}

	case key.Matches(keyMsg, m.keys.Pick):
		for i, s := range m.scenes {
			if strconv.Itoa(s.ID) == keyMsg.String() {
				m.selected = i
				return m, activate(s.ID)
			}
		}

	case key.Matches(keyMsg, m.keys.Apply):
		if s, ok := m.Selected(); ok {
			return m, activate(s.ID)
		}
	}

	return m, nil
}

func activate(id int) tea.Cmd {
	return func() tea.Msg {
		return messages.SceneActivatedMsg{SceneID: id}
	}
}

// View renders the picker modal
func (m ScenesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.StyleModalTitle.Render("Scenes"))
	b.WriteString("\n\n")

	for i, s := range m.scenes {
		style := styles.StyleSceneItem
		cursor := "  "
		if i == m.selected {
			style = styles.StyleSceneItemSelected
			cursor = "> "
		}
		name := style.Render(fmt.Sprintf("Scene %d", s.ID))
		b.WriteString(cursor + name + " " + styles.StyleSceneLabel.Render(s.Label) + "\n")
	}

	if len(m.scenes) == 0 {
		b.WriteString(styles.StyleTextMuted.Render("No scenes available"))
		b.WriteString("\n")
	}

	if s, ok := m.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(components.RenderPlacements(s))
		b.WriteString("\n")
		b.WriteString(styles.StyleTextMuted.Render("focus returns to " + models.FallbackMonitor))
		b.WriteString("\n")
	}

	b.WriteString(styles.StyleHelp.Render(m.help.View(m.keys)))

	// Responsive width (70% of screen, 48-72 chars)
	modalWidth := m.width * 70 / 100
	if modalWidth < 48 {
		modalWidth = 48
	}
	if modalWidth > 72 {
		modalWidth = 72
	}
	modal := styles.StyleModal.Width(modalWidth).Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
