package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, client *fakeClient) *Manager {
	t.Helper()
	dir := t.TempDir()
	m, err := NewManager(client, "it_test_", dir, nil)
	require.NoError(t, err)
	return m
}

func TestCreateBindsWorkspaceAndAppliesDefaults(t *testing.T) {
	client := newFakeClient()
	m := newTestManager(t, client)

	workspace := filepath.Join(t.TempDir(), "ws")
	require.NoError(t, os.MkdirAll(workspace, 0755))

	handle, err := m.Create(context.Background(), Config{Image: "python:3.9-slim", Workspace: workspace})
	require.NoError(t, err)
	assert.NotEmpty(t, handle.ID)

	c := client.containers[handle.ID]
	require.NotNil(t, c)
	assert.Equal(t, defaultMemory, c.memory)
	assert.True(t, c.running)
}

func TestExecDemuxesStdoutAndStderr(t *testing.T) {
	client := newFakeClient()
	client.execScript = func(argv []string) (string, string, int) {
		return "out-line\n", "err-line\n", 0
	}
	m := newTestManager(t, client)

	workspace := filepath.Join(t.TempDir(), "ws")
	require.NoError(t, os.MkdirAll(workspace, 0755))
	handle, err := m.Create(context.Background(), Config{Image: "python:3.9-slim", Workspace: workspace})
	require.NoError(t, err)

	result, err := m.Exec(context.Background(), handle.ID, []string{"python3", "code.py"}, "/workspace", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "out-line\n", result.Stdout)
	assert.Equal(t, "err-line\n", result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
}

func TestWriteFileThenExecSeesIt(t *testing.T) {
	var seenCmd []string
	client := newFakeClient()
	client.execScript = func(argv []string) (string, string, int) {
		seenCmd = argv
		return "", "", 0
	}
	m := newTestManager(t, client)

	workspace := filepath.Join(t.TempDir(), "ws")
	require.NoError(t, os.MkdirAll(workspace, 0755))
	handle, err := m.Create(context.Background(), Config{Image: "node:18-alpine", Workspace: workspace})
	require.NoError(t, err)

	err = m.WriteFile(context.Background(), handle.ID, "/workspace", "code.js", "console.log(1)")
	require.NoError(t, err)
	assert.Contains(t, seenCmd, "sh")
}

func TestExecTimesOutAndStopsContainer(t *testing.T) {
	client := newFakeClient()
	client.hangReader = newHangingReader()
	m := newTestManager(t, client)

	workspace := filepath.Join(t.TempDir(), "ws")
	require.NoError(t, os.MkdirAll(workspace, 0755))
	handle, err := m.Create(context.Background(), Config{Image: "python:3.9-slim", Workspace: workspace})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = m.Exec(ctx, handle.ID, []string{"sleep", "5"}, "/workspace", nil, nil)
	assert.ErrorIs(t, err, ErrExecTimeout)

	running, err := m.IsRunning(context.Background(), handle.ID)
	require.NoError(t, err)
	assert.False(t, running, "a timed-out exec must stop the container it was running in")
}

func TestParseMemoryLimit(t *testing.T) {
	cases := map[string]int64{
		"512k": 512 * 1024,
		"512m": 512 * 1024 * 1024,
		"1g":   1024 * 1024 * 1024,
		"100":  100,
	}
	for in, want := range cases {
		got, err := ParseMemoryLimit(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseMemoryLimit("")
	assert.Error(t, err)
}

func TestSweepRemovesOnlyStoppedManagedContainers(t *testing.T) {
	client := newFakeClient()
	m := newTestManager(t, client)

	workspace1 := filepath.Join(t.TempDir(), "ws1")
	workspace2 := filepath.Join(t.TempDir(), "ws2")
	require.NoError(t, os.MkdirAll(workspace1, 0755))
	require.NoError(t, os.MkdirAll(workspace2, 0755))

	running, err := m.Create(context.Background(), Config{Image: "python:3.9-slim", Workspace: workspace1})
	require.NoError(t, err)
	stopped, err := m.Create(context.Background(), Config{Image: "python:3.9-slim", Workspace: workspace2})
	require.NoError(t, err)
	require.NoError(t, m.Stop(context.Background(), stopped.ID))

	require.NoError(t, m.Sweep(context.Background()))

	_, runningStillThere := client.containers[running.ID]
	_, stoppedStillThere := client.containers[stopped.ID]
	assert.True(t, runningStillThere)
	assert.False(t, stoppedStillThere)
}
