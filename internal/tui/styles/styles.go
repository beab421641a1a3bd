package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - Lavender theme
var (
	// Primary colors
	ColorPrimary    = lipgloss.Color("#B794F4") // Lavender
	ColorSecondary  = lipgloss.Color("#9F7AEA") // Darker lavender
	ColorAccent     = lipgloss.Color("#E9D8FD") // Light lavender
	ColorSurface    = lipgloss.Color("#2D2D44") // Surface color
	ColorSurfaceAlt = lipgloss.Color("#3D3D5C") // Alternate surface

	// Text colors
	ColorText        = lipgloss.Color("#FAFAFA")
	ColorTextMuted   = lipgloss.Color("#A0A0B0")
	ColorTextDim     = lipgloss.Color("#6B6B80")
	ColorTextInverse = lipgloss.Color("#1A1A2E")

	// State colors
	ColorSuccess = lipgloss.Color("#68D391") // Green
	ColorError   = lipgloss.Color("#FC8181") // Red
)

var (
	// Scene list
	StyleSceneItem = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	StyleSceneItemSelected = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Padding(0, 1)

	StyleSceneLabel = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Monitor cards
	StyleMonitorCard = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSurfaceAlt).
				Padding(0, 1).
				MarginRight(1)

	StyleMonitorCardFallback = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorSecondary).
					Padding(0, 1).
					MarginRight(1)

	StyleMonitorName = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StyleWorkspace = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Modal
	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Background(ColorSurface).
			Padding(1, 2)

	StyleModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Help line under the list
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			MarginTop(1)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
