package hypr

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

//go:generate mockgen -destination=mocks/mock_conn.go -package=mocks github.com/angristan/hypr-scene/internal/hypr Conn

// Conn is the part of a socket connection the client writes through.
type Conn interface {
	Write(b []byte) (int, error)
	Close() error
}

// FocusMonitorCommand returns the command that focuses a monitor
func FocusMonitorCommand(name string) string {
	return "dispatch focusmonitor " + name
}

// WorkspaceCommand returns the command that switches the focused monitor
func WorkspaceCommand(id int) string {
	return "dispatch workspace " + strconv.Itoa(id)
}

// Client writes commands to a Hyprland control socket.
// Commands are written back-to-back without a delimiter and no reply is read.
type Client struct {
	conn Conn
}

// Dial connects to the control socket at path.
// The returned error is the dialer's own, which already names the path.
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, err
	}
	return NewClient(conn), nil
}

// NewClient wraps an already open connection
func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// FocusMonitor sends "dispatch focusmonitor <name>"
func (c *Client) FocusMonitor(name string) error {
	return c.send(FocusMonitorCommand(name))
}

// Workspace sends "dispatch workspace <id>"
func (c *Client) Workspace(id int) error {
	return c.send(WorkspaceCommand(id))
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) send(cmd string) error {
	if _, err := c.conn.Write([]byte(cmd)); err != nil {
		return fmt.Errorf("failed to send %q: %w", cmd, err)
	}
	return nil
}
