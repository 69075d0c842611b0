// Package engine is the orchestrator's core: it consumes the language
// registry, the container manager/pool, and the session manager to
// implement session creation, per-execution container selection, workspace
// preparation, dependency caching, code execution, and cleanup.
package engine

import (
	"errors"
	"time"

	"xcodeengine/internal/container"
	"xcodeengine/internal/session"
)

// Sentinel configuration errors, surfaced before any container is touched.
var (
	ErrSessionNotFound       = errors.New("engine: session not found")
	ErrSharedRequiresSession = errors.New("engine: shared workspace sharing requires PER_SESSION placement")
	ErrRunAppMountMissing    = errors.New("engine: runApp.cwd does not match any configured mount target")
	ErrUnsupportedLanguage   = errors.New("engine: unsupported language")
)

// RunAppSpec selects run-app mode: execution of a pre-existing entry file
// in a caller-supplied mounted directory, instead of an inline snippet.
type RunAppSpec struct {
	EntryFile string
	Cwd       string
}

// ExecutionOptions is a single executeCode call's input.
type ExecutionOptions struct {
	Language string

	// Code is the inline snippet. Mutually exclusive with RunApp.
	Code   string
	RunApp *RunAppSpec

	Dependencies []string

	// CPULimit/MemoryLimit override the container's resource caps for this
	// run only. MemoryLimit accepts "512m" | "1g" | "512k" | a bare byte
	// count; CPULimit is a fraction of a core (e.g. 0.5).
	CPULimit    *float64
	MemoryLimit *string

	StreamStdout    container.Sink
	StreamStderr    container.Sink
	StreamDepStdout container.Sink
	StreamDepStderr container.Sink

	WorkspaceSharing session.SharingMode

	Timeout time.Duration
}

// ExecutionResult is what executeCode returns.
type ExecutionResult struct {
	Stdout           string
	Stderr           string
	DependencyStdout string
	DependencyStderr string
	ExitCode         int
	ExecutionTimeMS  int64

	WorkspaceDir          string
	GeneratedFiles        []string
	SessionGeneratedFiles []string
}

// Verbosity is the level passed to Engine.SetVerbosity; the engine stores
// it but does not filter its own log calls by it.
type Verbosity string

const (
	VerbosityInfo  Verbosity = "info"
	VerbosityDebug Verbosity = "debug"
)
