package hypr

import (
	"context"
	"io"

	"github.com/angristan/hypr-scene/internal/config"
)

// Dispatcher sends dispatch commands to a compositor.
// This abstraction allows for both a real socket and dry-run mode.
type Dispatcher interface {
	// FocusMonitor moves focus to the named monitor
	FocusMonitor(name string) error
	// Workspace switches the focused monitor to a workspace
	Workspace(id int) error
}

// DispatchCloser is a Dispatcher holding a resource that must be released
type DispatchCloser interface {
	Dispatcher
	io.Closer
}

// Compile-time checks that both implementations satisfy DispatchCloser
var (
	_ DispatchCloser = (*Client)(nil)
	_ DispatchCloser = (*DryRun)(nil)
)

// Connect opens the dispatcher selected by cfg: a socket client for the
// configured instance, or a DryRun printing to out.
func Connect(ctx context.Context, cfg *config.Config, out io.Writer) (DispatchCloser, error) {
	if cfg.DryRun {
		return NewDryRun(out), nil
	}
	return Dial(ctx, cfg.SocketPath())
}
