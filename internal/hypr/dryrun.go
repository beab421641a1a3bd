package hypr

import (
	"fmt"
	"io"
)

// DryRun implements Dispatcher without a compositor.
// Every command is printed on its own line instead of being sent.
type DryRun struct {
	out io.Writer
}

// NewDryRun creates a dry-run dispatcher printing to out
func NewDryRun(out io.Writer) *DryRun {
	return &DryRun{out: out}
}

// FocusMonitor prints the focus command
func (d *DryRun) FocusMonitor(name string) error {
	return d.print(FocusMonitorCommand(name))
}

// Workspace prints the workspace command
func (d *DryRun) Workspace(id int) error {
	return d.print(WorkspaceCommand(id))
}

// Close is a no-op
func (d *DryRun) Close() error {
	return nil
}

func (d *DryRun) print(cmd string) error {
	if _, err := fmt.Fprintln(d.out, cmd); err != nil {
		return fmt.Errorf("failed to print %q: %w", cmd, err)
	}
	return nil
}
