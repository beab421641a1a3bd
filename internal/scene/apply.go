// Package scene applies a scene table to the compositor.
//
// Application is best effort: each placement is sent as a focus command
// followed by a workspace command, then focus returns to the fallback
// monitor. A failed write is reported and the sequence carries on, so a
// single bad write never leaves later monitors untouched.
package scene

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/angristan/hypr-scene/internal/hypr"
	"github.com/angristan/hypr-scene/internal/models"
)

// Result summarises one application of a scene
type Result struct {
	// Commands attempted, always 2*len(placements)+1
	Attempted int
	// Commands written without error
	Sent int
	// Write errors in the order they happened
	Errors []error
}

// OK reports whether every command was written
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Apply sends s through d. Write errors are printed to errOut and collected
// in the Result; they never stop the sequence.
func Apply(d hypr.Dispatcher, s models.Scene, errOut io.Writer, logger *slog.Logger) Result {
	var res Result

	record := func(err error, prefix string) {
		res.Attempted++
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", prefix, err)
			res.Errors = append(res.Errors, err)
			return
		}
		res.Sent++
	}

	for _, p := range s.Placements {
		logger.Debug("placing workspace", "monitor", p.Monitor, "workspace", p.Workspace)
		record(d.FocusMonitor(p.Monitor), "Error sending command")
		record(d.Workspace(p.Workspace), "Error sending command")
	}

	logger.Debug("refocusing fallback monitor", "monitor", models.FallbackMonitor)
	record(d.FocusMonitor(models.FallbackMonitor), "Error sending final focus")

	logger.Debug("scene applied", "scene", s.ID, "attempted", res.Attempted, "sent", res.Sent, "failed", len(res.Errors))
	return res
}
