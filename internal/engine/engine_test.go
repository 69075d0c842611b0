package engine_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcodeengine/internal/container"
	"xcodeengine/internal/engine"
	"xcodeengine/internal/langs"
	"xcodeengine/internal/session"
	"xcodeengine/internal/telemetry"
)

func newTestEngine(t *testing.T, client *fakeDockerClient) (*engine.Engine, *container.Manager, *container.Pool) {
	t.Helper()

	dir := t.TempDir()
	manager, err := container.NewManager(client, "it_test_", dir, nil)
	require.NoError(t, err)

	pool := container.NewPool(manager, 1, 2, time.Minute)
	logger, err := telemetry.New("development", "", "")
	require.NoError(t, err)

	eng := engine.New(engine.Config{
		Registry:        langs.Default(),
		Containers:      manager,
		Pool:            pool,
		Sessions:        session.NewManager(),
		Logger:          logger,
		DefaultMemory:   "256m",
		DefaultCPUQuota: 0.5,
		DefaultTimeout:  5 * time.Second,
	})
	return eng, manager, pool
}

func TestExecuteCodePerExecutionLeavesNoContainerBehind(t *testing.T) {
	client := newFakeDockerClient()
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerExecution})
	require.NoError(t, err)

	result, err := eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "python",
		Code:     "print(1)",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)

	assert.Empty(t, client.containers, "per-execution container must be removed after the run completes")
}

func TestExecuteCodePoolLeavesContainerBoundUntilCleanup(t *testing.T) {
	client := newFakeDockerClient()
	var sawClean bool
	client.execScript = func(containerID string, argv []string, workdir string) (string, string, int) {
		if len(argv) == 3 && strings.Contains(argv[2], "rm -rf /workspace") {
			sawClean = true
		}
		return "", "", 0
	}
	eng, _, pool := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.Pool})
	require.NoError(t, err)

	_, err = eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "shell",
		Code:     "echo hi",
	})
	require.NoError(t, err)

	assert.False(t, sawClean, "a pooled container must stay bound to its session, not release, right after ExecuteCode")
	snap := pool.Snapshot()
	require.NotEmpty(t, snap)
	assert.True(t, snap[0].InUse, "the session's container must still be checked out of the pool")

	require.NoError(t, eng.CleanupSession(context.Background(), sessionID, false))

	assert.True(t, sawClean, "cleaning up the session must release the pooled container, which cleans its workspace")
	snap = pool.Snapshot()
	require.NotEmpty(t, snap)
	assert.False(t, snap[0].InUse, "cleanup must return the container to the pool")
}

func TestExecuteCodePoolReusesSameContainerAcrossCalls(t *testing.T) {
	client := newFakeDockerClient()
	var containerIDs []string
	client.execScript = func(containerID string, argv []string, workdir string) (string, string, int) {
		if len(argv) == 3 && strings.Contains(argv[2], "cat >") {
			containerIDs = append(containerIDs, containerID)
		}
		return "", "", 0
	}
	eng, _, pool := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.Pool})
	require.NoError(t, err)

	_, err = eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "python",
		Code:     "print(1)",
	})
	require.NoError(t, err)

	_, err = eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "python",
		Code:     "print(2)",
	})
	require.NoError(t, err)

	require.Len(t, containerIDs, 2)
	assert.Equal(t, containerIDs[0], containerIDs[1], "a POOL session must keep its own container across calls with a matching image")
	assert.Len(t, pool.Snapshot(), 1, "acquirePooled must not draw a second container from the pool while the session's own container still matches")
}

func TestExecuteCodeSkipsDependencyReinstallOnCacheHit(t *testing.T) {
	client := newFakeDockerClient()
	installCount := 0
	client.execScript = func(containerID string, argv []string, workdir string) (string, string, int) {
		if len(argv) == 3 && strings.Contains(argv[2], "pip install") {
			installCount++
		}
		return "", "", 0
	}
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	opts := engine.ExecutionOptions{
		Language:     "python",
		Code:         "print(1)",
		Dependencies: []string{"requests"},
	}
	_, err = eng.ExecuteCode(context.Background(), sessionID, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, installCount)

	_, err = eng.ExecuteCode(context.Background(), sessionID, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, installCount, "identical dependency set on the same container must not reinstall")
}

func TestFailedDependencyInstallIsRetriedNotCached(t *testing.T) {
	client := newFakeDockerClient()
	installCount := 0
	client.execScript = func(containerID string, argv []string, workdir string) (string, string, int) {
		if len(argv) == 3 && strings.Contains(argv[2], "pip install") {
			installCount++
			return "", "no matching distribution", 1
		}
		return "", "", 0
	}
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	opts := engine.ExecutionOptions{
		Language:     "python",
		Code:         "print(1)",
		Dependencies: []string{"not-a-real-package"},
	}
	_, err = eng.ExecuteCode(context.Background(), sessionID, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, installCount)

	_, err = eng.ExecuteCode(context.Background(), sessionID, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, installCount, "a nonzero-exit install must not be cached, so the identical dependency set is retried")
}

func TestGeneratedFilesAreSubsetOfSessionGeneratedFiles(t *testing.T) {
	client := newFakeDockerClient()
	client.execScript = func(containerID string, argv []string, workdir string) (string, string, int) {
		client.mu.Lock()
		c := client.containers[containerID]
		client.mu.Unlock()
		if c == nil {
			return "", "", 0
		}
		if len(argv) == 3 && strings.Contains(argv[2], "cat >") {
			_ = os.WriteFile(filepath.Join(c.hostWorkspace, "code.py"), []byte("print(1)"), 0644)
		}
		if len(argv) == 3 && strings.Contains(argv[2], "code.py") && !strings.Contains(argv[2], "cat >") {
			_ = os.WriteFile(filepath.Join(c.hostWorkspace, "output.txt"), []byte("1\n"), 0644)
		}
		return "", "", 0
	}
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	result, err := eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "python",
		Code:     "print(1)",
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"code.py", "output.txt"}, result.GeneratedFiles)
	for _, g := range result.GeneratedFiles {
		assert.Contains(t, result.SessionGeneratedFiles, g)
	}
}

func TestPerSessionSharedSwapCarriesWorkspaceForward(t *testing.T) {
	client := newFakeDockerClient()
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	first, err := eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language:         "python",
		Code:             "print(1)",
		WorkspaceSharing: session.Shared,
	})
	require.NoError(t, err)

	second, err := eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language:         "ecmascript-variant-A",
		Code:             "console.log(1)",
		WorkspaceSharing: session.Shared,
	})
	require.NoError(t, err)

	assert.Equal(t, first.WorkspaceDir, second.WorkspaceDir, "shared sharing must carry the host workspace dir across an image swap")
}

func TestResourceOverrideAppliesToContainer(t *testing.T) {
	client := newFakeDockerClient()
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	override := "128m"
	_, err = eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language:    "python",
		Code:        "print(1)",
		MemoryLimit: &override,
	})
	require.NoError(t, err)

	require.Len(t, client.containers, 1)
	for _, c := range client.containers {
		assert.Equal(t, int64(128*1024*1024), c.memory)
	}
}

func TestPoolStrategyRejectsSharedWorkspaceSharing(t *testing.T) {
	client := newFakeDockerClient()
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.Pool})
	require.NoError(t, err)

	_, err = eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language:         "python",
		Code:             "print(1)",
		WorkspaceSharing: session.Shared,
	})
	assert.ErrorIs(t, err, engine.ErrSharedRequiresSession)
}

func TestAddAndReadFileBase64RoundTrip(t *testing.T) {
	client := newFakeDockerClient()
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	_, err = eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "python",
		Code:     "print(1)",
	})
	require.NoError(t, err)

	payload := base64.StdEncoding.EncodeToString([]byte("hello world"))
	require.NoError(t, eng.AddFileFromBase64(sessionID, "greeting.txt", payload))

	got, err := eng.ReadFileBase64(sessionID, "greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestPoolOverflowDetachedContainerRemovedAtCleanup(t *testing.T) {
	client := newFakeDockerClient()
	manager, err := container.NewManager(client, "it_test_", t.TempDir(), nil)
	require.NoError(t, err)
	pool := container.NewPool(manager, 1, 1, time.Minute)
	logger, err := telemetry.New("development", "", "")
	require.NoError(t, err)

	eng := engine.New(engine.Config{
		Registry:        langs.Default(),
		Containers:      manager,
		Pool:            pool,
		Sessions:        session.NewManager(),
		Logger:          logger,
		DefaultMemory:   "256m",
		DefaultCPUQuota: 0.5,
		DefaultTimeout:  5 * time.Second,
	})

	firstSession, err := eng.CreateSession(session.Config{Strategy: session.Pool})
	require.NoError(t, err)
	_, err = eng.ExecuteCode(context.Background(), firstSession, engine.ExecutionOptions{Language: "python", Code: "print(1)"})
	require.NoError(t, err)

	// firstSession's container stays checked out of the pool (bound to its
	// session, not released) until cleanup, so a second POOL session with
	// the pool's only slot already taken overflows it.
	secondSession, err := eng.CreateSession(session.Config{Strategy: session.Pool})
	require.NoError(t, err)

	beforeCount := len(client.containers)
	_, err = eng.ExecuteCode(context.Background(), secondSession, engine.ExecutionOptions{Language: "python", Code: "print(2)"})
	require.NoError(t, err)

	assert.Equal(t, beforeCount+1, len(client.containers),
		"the overflow run must create a detached container alongside the one the pool already has checked out")

	require.NoError(t, eng.CleanupSession(context.Background(), secondSession, false))
	assert.Equal(t, beforeCount, len(client.containers),
		"cleaning up the overflow session must remove its detached container rather than leak it")
}

func TestCleanupSessionKeepGeneratedPrunesEverythingElse(t *testing.T) {
	client := newFakeDockerClient()
	client.execScript = func(containerID string, argv []string, workdir string) (string, string, int) {
		client.mu.Lock()
		c := client.containers[containerID]
		client.mu.Unlock()
		if c == nil {
			return "", "", 0
		}
		if len(argv) == 3 && strings.Contains(argv[2], "cat >") {
			_ = os.WriteFile(filepath.Join(c.hostWorkspace, "code.py"), []byte("print(1)"), 0644)
		}
		return "", "", 0
	}
	eng, _, _ := newTestEngine(t, client)

	sessionID, err := eng.CreateSession(session.Config{Strategy: session.PerSession})
	require.NoError(t, err)

	result, err := eng.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: "python",
		Code:     "print(1)",
	})
	require.NoError(t, err)

	leftoverPath := filepath.Join(result.WorkspaceDir, "leftover.txt")
	require.NoError(t, os.WriteFile(leftoverPath, []byte("stray"), 0644))

	require.NoError(t, eng.CleanupSession(context.Background(), sessionID, true))

	_, err = os.Stat(leftoverPath)
	assert.True(t, os.IsNotExist(err), "non-generated file must be pruned when keepGenerated is true")

	_, err = os.Stat(filepath.Join(result.WorkspaceDir, "code.py"))
	assert.NoError(t, err, "generated file must survive a keepGenerated cleanup")
}
