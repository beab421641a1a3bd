package components

import (
	"fmt"

	"github.com/angristan/hypr-scene/internal/models"
	"github.com/angristan/hypr-scene/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// RenderMonitorCard renders one monitor and the workspace a scene puts on it.
// The fallback monitor gets a highlighted border since focus ends there.
func RenderMonitorCard(p models.Placement) string {
	name := styles.StyleMonitorName.Render(p.Monitor)
	ws := styles.StyleWorkspace.Render(fmt.Sprintf("ws %d", p.Workspace))

	card := styles.StyleMonitorCard
	if p.Monitor == models.FallbackMonitor {
		card = styles.StyleMonitorCardFallback
	}
	return card.Render(name + "\n" + ws)
}

// RenderPlacements lays out every monitor card of a scene on one row
func RenderPlacements(s models.Scene) string {
	cards := make([]string, len(s.Placements))
	for i, p := range s.Placements {
		cards[i] = RenderMonitorCard(p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
