package models

import (
	"errors"
	"fmt"
	"strconv"
)

// FallbackMonitor is focused after every scene, whichever scene was applied.
const FallbackMonitor = "DP-3"

// PlacementsPerScene is the number of monitors every scene assigns.
const PlacementsPerScene = 4

var ErrInvalidScene = errors.New("invalid scene")

// Placement pins a workspace to a monitor
type Placement struct {
	// Monitor connector name as Hyprland reports it (e.g. "DP-1")
	Monitor string
	// Workspace number shown on that monitor
	Workspace int
}

// Scene represents a preset mapping of monitors to workspaces
type Scene struct {
	// Identifier given on the command line
	ID int
	// Short description for usage text and the picker
	Label string
	// Placements in the order they are dispatched
	Placements []Placement
}

var scenes = [...]Scene{
	{
		ID:    1,
		Label: "Column 1 (workspaces 1,2,3,4)",
		Placements: []Placement{
			{Monitor: "DP-1", Workspace: 1},
			{Monitor: "DP-3", Workspace: 2},
			{Monitor: "DP-2", Workspace: 3},
			{Monitor: "HDMI-A-1", Workspace: 4},
		},
	},
	{
		ID:    2,
		Label: "Column 2 (workspaces 5,6,7,8)",
		Placements: []Placement{
			{Monitor: "DP-1", Workspace: 5},
			{Monitor: "DP-3", Workspace: 6},
			{Monitor: "DP-2", Workspace: 7},
			{Monitor: "HDMI-A-1", Workspace: 8},
		},
	},
	{
		ID:    3,
		Label: "Column 3 (workspaces 9,10,11,12)",
		Placements: []Placement{
			{Monitor: "DP-1", Workspace: 9},
			{Monitor: "DP-3", Workspace: 10},
			{Monitor: "DP-2", Workspace: 11},
			{Monitor: "HDMI-A-1", Workspace: 12},
		},
	},
}

// Scenes returns every scene in ID order. The returned values are copies.
func Scenes() []Scene {
	result := make([]Scene, len(scenes))
	for i := range scenes {
		result[i] = scenes[i].clone()
	}
	return result
}

// SceneByArg resolves a command-line argument to a scene.
// Only the exact strings "1", "2" and "3" are accepted; "01" or " 1" are not.
func SceneByArg(arg string) (Scene, error) {
	for i := range scenes {
		if arg == strconv.Itoa(scenes[i].ID) {
			return scenes[i].clone(), nil
		}
	}
	return Scene{}, fmt.Errorf("%w: %s", ErrInvalidScene, arg)
}

// Validate checks that a scene places exactly four distinct, positive
// workspaces on named monitors.
func (s Scene) Validate() error {
	if len(s.Placements) != PlacementsPerScene {
		return fmt.Errorf("scene %d has %d placements, want %d", s.ID, len(s.Placements), PlacementsPerScene)
	}
	seen := make(map[int]bool, len(s.Placements))
	for i, p := range s.Placements {
		if p.Monitor == "" {
			return fmt.Errorf("scene %d placement %d has no monitor", s.ID, i)
		}
		if p.Workspace <= 0 {
			return fmt.Errorf("scene %d placement %d has workspace %d", s.ID, i, p.Workspace)
		}
		if seen[p.Workspace] {
			return fmt.Errorf("scene %d assigns workspace %d twice", s.ID, p.Workspace)
		}
		seen[p.Workspace] = true
	}
	return nil
}

// Workspaces lists the workspace numbers of the scene in dispatch order
func (s Scene) Workspaces() []int {
	ws := make([]int, len(s.Placements))
	for i, p := range s.Placements {
		ws[i] = p.Workspace
	}
	return ws
}

func (s Scene) clone() Scene {
	c := s
	c.Placements = append([]Placement(nil), s.Placements...)
	return c
}
