// Package langs is the process-wide language registry: a table mapping a
// language name to a plugin describing how to materialize, install
// dependencies for, and invoke code in that language inside a container.
package langs

import "context"

// Execer is the capability a plugin needs to run an install command inside
// a live container. The engine satisfies it with an adapter over
// internal/container.Manager's Exec.
type Execer interface {
	Exec(ctx context.Context, containerID string, argv []string, workdir string) (stdout, stderr string, exitCode int, err error)
}

// MaterializeOptions carries what a plugin needs to write its workspace
// files: the inline snippet and the declared dependency tokens.
type MaterializeOptions struct {
	Code         string
	Dependencies []string
}

// InstallResult is what InstallDependencies reports back to the engine.
type InstallResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Plugin is a capability record, not a base class: any type implementing
// these eight methods can be registered for a language name.
type Plugin interface {
	// Name is the language identifier this plugin is registered under.
	Name() string
	// DefaultImage is the container image used when the session doesn't
	// override it.
	DefaultImage() string
	// InlineFilename is the in-workspace file inline snippets are written to.
	InlineFilename() string
	// Materialize writes the snippet plus any manifest files (package.json,
	// requirements.txt, tsconfig.json, ...) into the host workspace
	// directory dir, ahead of dependency installation.
	Materialize(dir string, opts MaterializeOptions) error
	// InlineCommand builds the argv used to run the inline snippet.
	// depsInstalled tells the plugin whether it can assume the manifest's
	// dependencies are already present.
	InlineCommand(depsInstalled bool) []string
	// RunAppCommand builds the argv used to run a pre-existing entry file
	// in run-app mode.
	RunAppCommand(entryFile string, depsInstalled bool) []string
	// HasInstaller reports whether this language has a dependency-install
	// story; InstallDependencies installs deps inside the running
	// container. Plugins without one return false from HasInstaller and the
	// engine treats the phase as a no-op success.
	HasInstaller() bool
	InstallDependencies(ctx context.Context, exec Execer, containerID, workdir string, deps []string) (InstallResult, error)
}
