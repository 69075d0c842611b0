// Package container wraps the Docker Engine API: pulling images, creating
// and exec-ing into containers, and maintaining the warm pool described in
// the orchestrator's Container Manager component.
package container

import (
	"errors"
	"time"
)

// ErrExecTimeout is returned by Exec when ctx expires before the command's
// output stream closes on its own.
var ErrExecTimeout = errors.New("container: exec timed out")

// MountKind is the way a host path is bound into a container.
type MountKind string

const (
	MountFile      MountKind = "file"
	MountDirectory MountKind = "directory"
	MountZip       MountKind = "zip"
)

// Mount describes one host-to-container bind. Zip mounts are extracted to a
// temp directory and bound as a directory; file and directory mounts bind
// directly.
type Mount struct {
	Kind     MountKind
	Source   string
	Target   string
	ReadOnly bool
}

// Config is everything needed to create a container: image, bind mounts,
// environment, an optional fixed name, and resource caps. Zero-valued
// Memory/CPUQuota fall back to the manager's defaults.
type Config struct {
	Image     string
	Mounts    []Mount
	Env       map[string]string
	Name      string
	Memory    int64 // bytes; 0 means "use manager default"
	CPUQuota  float64
	Workspace string // host workspace directory, always bound at /workspace
}

// Handle identifies a live container and the host workspace bound into it.
type Handle struct {
	ID           string
	Name         string
	Image        string
	WorkspaceDir string
	CreatedAt    time.Time
}

// ExecResult is the outcome of a single ContainerExecCreate/Attach/Inspect
// round trip.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Sink receives chunks of a streaming exec's stdout or stderr as they
// arrive. Implementations must not block the reader for long; the engine
// does not reorder chunks within a single stream but makes no promise about
// interleaving between stdout and stderr.
type Sink interface {
	Write(chunk []byte)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(chunk []byte)

func (f SinkFunc) Write(chunk []byte) { f(chunk) }
