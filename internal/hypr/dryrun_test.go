package hypr

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestDryRunPrintsOneCommandPerLine(t *testing.T) {
	var out bytes.Buffer
	d := NewDryRun(&out)

	assert.NoError(t, d.FocusMonitor("DP-1"))
	assert.NoError(t, d.Workspace(5))
	assert.NoError(t, d.FocusMonitor("DP-3"))
	assert.NoError(t, d.Close())

	assert.Equal(t, "dispatch focusmonitor DP-1\ndispatch workspace 5\ndispatch focusmonitor DP-3\n", out.String())
}

func TestDryRunWriteError(t *testing.T) {
	d := NewDryRun(failingWriter{})

	err := d.Workspace(2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stdout closed")
}
