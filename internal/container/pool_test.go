package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAcquireCreatesWhenEmptyAndReleaseCleansWorkspace(t *testing.T) {
	client := newFakeClient()
	var cleanedWorkdir string
	client.execScript = func(argv []string) (string, string, int) {
		if len(argv) >= 2 && argv[0] == "sh" {
			cleanedWorkdir = "cleaned"
		}
		return "", "", 0
	}
	m := newTestManager(t, client)
	pool := NewPool(m, 1, 2, time.Minute)

	handle, found, err := pool.Acquire(context.Background(), Config{Image: "python:3.9-slim"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotEmpty(t, handle.ID)

	require.NoError(t, pool.Release(context.Background(), handle))
	assert.Equal(t, "cleaned", cleanedWorkdir)

	snap := pool.Snapshot()
	require.Len(t, snap, 1)
	assert.False(t, snap[0].InUse)
}

func TestPoolAcquireReusesFreeMatchingImage(t *testing.T) {
	client := newFakeClient()
	m := newTestManager(t, client)
	pool := NewPool(m, 1, 2, time.Minute)

	first, _, err := pool.Acquire(context.Background(), Config{Image: "python:3.9-slim"})
	require.NoError(t, err)
	require.NoError(t, pool.Release(context.Background(), first))

	second, found, err := pool.Acquire(context.Background(), Config{Image: "python:3.9-slim"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, first.ID, second.ID, "expected the freed entry to be reused, not a fresh container")
}

func TestPoolAcquireRespectsMaxSize(t *testing.T) {
	client := newFakeClient()
	m := newTestManager(t, client)
	pool := NewPool(m, 1, 1, time.Minute)

	first, found, err := pool.Acquire(context.Background(), Config{Image: "python:3.9-slim"})
	require.NoError(t, err)
	require.True(t, found)
	_ = first

	_, found, err = pool.Acquire(context.Background(), Config{Image: "python:3.9-slim"})
	require.NoError(t, err)
	assert.False(t, found, "pool is at maxSize with its only entry in use")
}

func TestImageMatchesIgnoresRegistryPrefix(t *testing.T) {
	assert.True(t, imageMatches("docker.io/library/node:18-alpine", "node:18-alpine"))
	assert.False(t, imageMatches("node:18-alpine", "python:3.9-slim"))
}
