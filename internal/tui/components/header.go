package components

import (
	"strings"

	"github.com/angristan/hypr-scene/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders the application header.
// An empty status is shown as "No Hyprland instance".
func RenderHeader(width int, status string) string {
	title := " hypr-scene "

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.ColorText).
		Background(styles.ColorPrimary).
		Padding(0, 1)

	statusStyle := lipgloss.NewStyle().
		Foreground(styles.ColorSuccess).
		Padding(0, 1)

	if status == "" {
		status = "No Hyprland instance"
		statusStyle = statusStyle.Foreground(styles.ColorError)
	}

	left := titleStyle.Render(title)
	right := statusStyle.Render(status)

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}

	headerBg := lipgloss.NewStyle().
		Background(styles.ColorSurface).
		Width(width)

	return headerBg.Render(left + strings.Repeat(" ", spacing) + right)
}

// ShortSignature trims an instance signature to its leading hash for display
func ShortSignature(sig string) string {
	if i := strings.IndexByte(sig, '_'); i > 0 {
		sig = sig[:i]
	}
	if len(sig) > 12 {
		sig = sig[:12]
	}
	return sig
}
