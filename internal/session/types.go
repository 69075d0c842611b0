// Package session is the in-memory bookkeeping layer: sessions mapped to
// their configuration, current container, container history, and idle
// retained containers kept for potential image-matched reuse.
package session

import (
	"time"

	"xcodeengine/internal/container"
)

// PlacementStrategy governs whether a run gets a fresh, pooled, or
// session-owned container.
type PlacementStrategy string

const (
	PerExecution PlacementStrategy = "per_execution"
	PerSession   PlacementStrategy = "per_session"
	Pool         PlacementStrategy = "pool"
)

// SharingMode governs whether a PER_SESSION session's workspace directory
// is reused across runs (shared) or replaced on every container swap
// (isolated).
type SharingMode string

const (
	Isolated SharingMode = "isolated"
	Shared   SharingMode = "shared"
)

// Config is what a caller hands to CreateSession.
type Config struct {
	Strategy           PlacementStrategy
	Container          container.Config
	RequestedID        string
	EnforceNewSession  bool
}

// Meta is a container's own state inside a session: the ContainerMeta of
// spec.md §3.
type Meta struct {
	SessionID    string
	DepsInstalled bool
	DepsChecksum string

	BaselineFiles         map[string]struct{}
	GeneratedFiles        map[string]struct{}
	SessionGeneratedFiles map[string]struct{}

	IsRunning      bool
	CreatedAt      time.Time
	LastExecutedAt time.Time

	ContainerID   string
	ImageName     string
	ContainerName string
	WorkspaceDir  string

	// Detached marks a POOL-strategy container created outside the warm
	// pool itself (the pool was already at maxSize with no free entry).
	// It must be torn down directly (at session cleanup, or when the
	// session detaches it for an image swap) rather than handed to
	// Pool.Release, which would never find it in the pool's own entries.
	Detached bool
}

// NewMeta builds a fresh Meta for a just-created container.
func NewMeta(sessionID, containerID, image, name, workspaceDir string, now time.Time) *Meta {
	return &Meta{
		SessionID:             sessionID,
		BaselineFiles:         make(map[string]struct{}),
		GeneratedFiles:        make(map[string]struct{}),
		SessionGeneratedFiles: make(map[string]struct{}),
		CreatedAt:             now,
		LastExecutedAt:        now,
		ContainerID:           containerID,
		ImageName:             image,
		ContainerName:         name,
		WorkspaceDir:          workspaceDir,
	}
}

// Session is a caller's persistent handle: configuration, current
// container, container history, and idle-retained containers kept for
// potential reuse in shared-workspace mode.
type Session struct {
	ID     string
	Config Config

	Current      *Meta
	History      []*Meta
	IdleRetained []*Meta

	CreatedAt      time.Time
	LastExecutedAt time.Time
}

// IsActive reports whether the session currently has a container that is
// mid-execution.
func (s *Session) IsActive() bool {
	return s.Current != nil && s.Current.IsRunning
}

// Info is the derived, read-only view returned by GetSessionInfo:
// CreatedAt/LastExecutedAt are folded across the whole history.
type Info struct {
	ID             string
	Config         Config
	CreatedAt      time.Time
	LastExecutedAt time.Time
	IsActive       bool
	ContainerCount int
}
