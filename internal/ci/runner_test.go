package ci

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedRunner() (*Runner, *bytes.Buffer) {
	var audit bytes.Buffer
	r := New(
		WithOutput(&audit),
		WithChildOutput(io.Discard, io.Discard),
	)
	r.errOut = io.Discard
	return r, &audit
}

func TestCommandString(t *testing.T) {
	cmd := Command{"go", "test", "-v", "./..."}
	assert.Equal(t, "go test -v ./...", cmd.String())
}

func TestRun_Success(t *testing.T) {
	r, audit := newBufferedRunner()

	status := r.Run(context.Background(), Command{"true"})
	assert.Equal(t, 0, status)
	assert.Equal(t, "true\n", audit.String())
}

func TestRun_ForwardsExitStatus(t *testing.T) {
	r, _ := newBufferedRunner()

	status := r.Run(context.Background(), Command{"sh", "-c", "exit 7"})
	assert.Equal(t, 7, status)
}

func TestRun_EchoesBeforeSpawn(t *testing.T) {
	// A command that cannot even start must still have been echoed.
	r, audit := newBufferedRunner()

	status := r.Run(context.Background(), Command{"definitely-not-a-binary-xyz"})
	assert.Equal(t, 1, status)
	assert.Equal(t, "definitely-not-a-binary-xyz\n", audit.String())
}

func TestRunAll_AllSucceed(t *testing.T) {
	r, audit := newBufferedRunner()

	status := r.RunAll(context.Background(), []Command{
		{"true"},
		{"sh", "-c", "exit 0"},
	})
	assert.Equal(t, 0, status)
	assert.Equal(t, "true\nsh -c exit 0\n", audit.String())
}

func TestRunAll_AbortsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")

	r, audit := newBufferedRunner()
	status := r.RunAll(context.Background(), []Command{
		{"sh", "-c", "exit 1"},
		{"touch", marker},
	})

	assert.Equal(t, 1, status)
	assert.Equal(t, "sh -c exit 1\n", audit.String(), "second command must not be echoed")

	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "second command must not have run")
}

func TestRunAll_ThreeCommandVariant(t *testing.T) {
	r, audit := newBufferedRunner()

	status := r.RunAll(context.Background(), []Command{
		{"true"},
		{"sh", "-c", "exit 0"},
		{"echo", "done"},
	})
	assert.Equal(t, 0, status)
	assert.Equal(t, "true\nsh -c exit 0\necho done\n", audit.String())
}

func TestRunAll_EmptyCommand(t *testing.T) {
	r, _ := newBufferedRunner()

	status := r.RunAll(context.Background(), []Command{{}})
	assert.Equal(t, 1, status)
}

func TestRun_ChildOutputGoesToConfiguredWriter(t *testing.T) {
	var child bytes.Buffer
	r := New(
		WithOutput(io.Discard),
		WithChildOutput(&child, io.Discard),
	)

	status := r.Run(context.Background(), Command{"echo", "hello"})
	require.Equal(t, 0, status)
	assert.Equal(t, "hello\n", child.String())
}
