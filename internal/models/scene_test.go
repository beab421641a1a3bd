package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestScenesValidate(t *testing.T) {
	all := Scenes()
	if len(all) != 3 {
		t.Fatalf("Expected 3 scenes, got %d", len(all))
	}

	for i, s := range all {
		if s.ID != i+1 {
			t.Errorf("Scene at index %d has ID %d, want %d", i, s.ID, i+1)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("Scene %d failed validation: %v", s.ID, err)
		}
	}
}

func TestSceneWorkspaces(t *testing.T) {
	tests := []struct {
		arg  string
		want []int
	}{
		{arg: "1", want: []int{1, 2, 3, 4}},
		{arg: "2", want: []int{5, 6, 7, 8}},
		{arg: "3", want: []int{9, 10, 11, 12}},
	}

	monitors := []string{"DP-1", "DP-3", "DP-2", "HDMI-A-1"}

	for _, tt := range tests {
		t.Run("scene "+tt.arg, func(t *testing.T) {
			s, err := SceneByArg(tt.arg)
			if err != nil {
				t.Fatalf("SceneByArg(%q) returned error: %v", tt.arg, err)
			}
			if got := s.Workspaces(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Workspaces() = %v, want %v", got, tt.want)
			}
			for i, p := range s.Placements {
				if p.Monitor != monitors[i] {
					t.Errorf("Placement %d monitor = %q, want %q", i, p.Monitor, monitors[i])
				}
			}
		})
	}
}

func TestSceneByArgInvalid(t *testing.T) {
	for _, arg := range []string{"", "0", "4", "01", " 1", "1 ", "one", "-1", "12"} {
		t.Run(arg, func(t *testing.T) {
			_, err := SceneByArg(arg)
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("SceneByArg(%q) error = %v, want ErrInvalidScene", arg, err)
			}
		})
	}
}

func TestScenesReturnsCopies(t *testing.T) {
	first := Scenes()
	first[0].Placements[0].Workspace = 99
	first[0].Label = "changed"

	second := Scenes()
	if second[0].Placements[0].Workspace != 1 {
		t.Errorf("Mutating a returned scene leaked into the table: workspace = %d", second[0].Placements[0].Workspace)
	}
	if second[0].Label == "changed" {
		t.Error("Mutating a returned label leaked into the table")
	}

	s, _ := SceneByArg("2")
	s.Placements[3].Monitor = ""
	again, _ := SceneByArg("2")
	if again.Placements[3].Monitor != "HDMI-A-1" {
		t.Errorf("SceneByArg returned shared placements, monitor = %q", again.Placements[3].Monitor)
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
	}{
		{
			name: "too few placements",
			scene: Scene{ID: 9, Placements: []Placement{
				{Monitor: "DP-1", Workspace: 1},
			}},
		},
		{
			name: "empty monitor",
			scene: Scene{ID: 9, Placements: []Placement{
				{Monitor: "DP-1", Workspace: 1},
				{Monitor: "", Workspace: 2},
				{Monitor: "DP-2", Workspace: 3},
				{Monitor: "HDMI-A-1", Workspace: 4},
			}},
		},
		{
			name: "zero workspace",
			scene: Scene{ID: 9, Placements: []Placement{
				{Monitor: "DP-1", Workspace: 0},
				{Monitor: "DP-3", Workspace: 2},
				{Monitor: "DP-2", Workspace: 3},
				{Monitor: "HDMI-A-1", Workspace: 4},
			}},
		},
		{
			name: "duplicate workspace",
			scene: Scene{ID: 9, Placements: []Placement{
				{Monitor: "DP-1", Workspace: 1},
				{Monitor: "DP-3", Workspace: 2},
				{Monitor: "DP-2", Workspace: 2},
				{Monitor: "HDMI-A-1", Workspace: 4},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.scene.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
