package messages

import (
	"github.com/angristan/hypr-scene/internal/scene"
)

// SceneActivatedMsg requests applying a scene
type SceneActivatedMsg struct {
	SceneID int
}

// SceneAppliedMsg reports a finished application
type SceneAppliedMsg struct {
	SceneID int
	Result  scene.Result
	// Write errors as they were reported, one per line
	Report string
	// Commands printed in dry-run mode
	Output string
}

// ErrorMsg indicates the scene could not be applied at all
type ErrorMsg struct {
	Err error
}
