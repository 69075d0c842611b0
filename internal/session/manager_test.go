package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcodeengine/internal/container"
)

func TestCreateGeneratesIDWhenNoneRequested(t *testing.T) {
	m := NewManager()
	id, err := m.Create(Config{Strategy: PerExecution})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestCreateWithRequestedIDReturnsExistingWithoutEnforce(t *testing.T) {
	m := NewManager()
	id, err := m.Create(Config{Strategy: PerSession, RequestedID: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)

	again, err := m.Create(Config{Strategy: PerSession, RequestedID: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", again)
}

func TestCreateWithEnforceNewSessionRejectsDuplicate(t *testing.T) {
	m := NewManager()
	_, err := m.Create(Config{RequestedID: "fixed"})
	require.NoError(t, err)

	_, err = m.Create(Config{RequestedID: "fixed", EnforceNewSession: true})
	assert.Error(t, err)
	var exists *ErrSessionExists
	assert.ErrorAs(t, err, &exists)
}

func TestSetCurrentIndexesByContainer(t *testing.T) {
	m := NewManager()
	id, err := m.Create(Config{Strategy: PerSession})
	require.NoError(t, err)

	meta := NewMeta(id, "c1", "python:3.9-slim", "it_c1", "/tmp/ws", time.Now())
	require.NoError(t, m.SetCurrent(id, meta))

	found, ok := m.MetaByContainer("c1")
	require.True(t, ok)
	assert.Equal(t, meta, found)

	sess, err := m.Get(id)
	require.NoError(t, err)
	assert.Len(t, sess.History, 1)
}

func TestIdleRetainedPopMatchesByImage(t *testing.T) {
	m := NewManager()
	id, err := m.Create(Config{Strategy: PerSession})
	require.NoError(t, err)

	meta := NewMeta(id, "c1", "node:18-alpine", "it_c1", "/tmp/ws", time.Now())
	require.NoError(t, m.PushIdleRetained(id, meta))

	none, err := m.PopIdleRetainedMatching(id, "python:3.9-slim")
	require.NoError(t, err)
	assert.Nil(t, none)

	got, err := m.PopIdleRetainedMatching(id, "node:18-alpine")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ContainerID)

	again, err := m.PopIdleRetainedMatching(id, "node:18-alpine")
	require.NoError(t, err)
	assert.Nil(t, again, "popped entries must not be returned twice")
}

func TestDeletePurgesContainerIndex(t *testing.T) {
	m := NewManager()
	id, err := m.Create(Config{Strategy: PerExecution})
	require.NoError(t, err)

	meta := NewMeta(id, "c1", "python:3.9-slim", "it_c1", "/tmp/ws", time.Now())
	require.NoError(t, m.SetCurrent(id, meta))

	m.Delete(id)

	_, ok := m.MetaByContainer("c1")
	assert.False(t, ok)
	_, err = m.Get(id)
	assert.Error(t, err)
}

func TestInfoFoldsCreatedAndLastExecutedAcrossHistory(t *testing.T) {
	m := NewManager()
	id, err := m.Create(Config{Strategy: PerSession, Container: container.Config{Image: "python:3.9-slim"}})
	require.NoError(t, err)

	older := NewMeta(id, "c1", "python:3.9-slim", "it_c1", "/tmp/ws1", time.Now().Add(-time.Hour))
	newer := NewMeta(id, "c2", "python:3.9-slim", "it_c2", "/tmp/ws2", time.Now())
	require.NoError(t, m.SetCurrent(id, older))
	require.NoError(t, m.SetCurrent(id, newer))

	info, err := m.Info(id)
	require.NoError(t, err)
	assert.Equal(t, 2, info.ContainerCount)
	assert.True(t, info.CreatedAt.Before(info.LastExecutedAt) || info.CreatedAt.Equal(info.LastExecutedAt))
}
