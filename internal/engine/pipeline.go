package engine

import (
	"context"
	"fmt"

	"xcodeengine/internal/container"
	"xcodeengine/internal/langs"
	"xcodeengine/internal/session"
)

// runDependencyPhase implements Step 6: install the requested dependencies
// unless the container's cached checksum already matches (invariant: a
// dependency-install that already succeeded for this exact dependency set
// is never repeated on the same container).
func (e *Engine) runDependencyPhase(ctx context.Context, meta *session.Meta, plugin langs.Plugin, opts ExecutionOptions) (langs.InstallResult, error) {
	if len(opts.Dependencies) == 0 || !plugin.HasInstaller() {
		return langs.InstallResult{}, nil
	}

	checksum := dependencyChecksum(opts.Dependencies)
	if meta.DepsInstalled && meta.DepsChecksum == checksum {
		return langs.InstallResult{}, nil
	}

	if err := plugin.Materialize(meta.WorkspaceDir, langs.MaterializeOptions{
		Code:         opts.Code,
		Dependencies: opts.Dependencies,
	}); err != nil {
		return langs.InstallResult{}, fmt.Errorf("engine: materialize: %w", err)
	}

	adapter := execAdapter{manager: e.containers, stdout: opts.StreamDepStdout, stderr: opts.StreamDepStderr}
	result, err := plugin.InstallDependencies(ctx, adapter, meta.ContainerID, container.WorkspaceTarget, opts.Dependencies)
	if err != nil {
		return result, fmt.Errorf("engine: install dependencies: %w", err)
	}

	// A nil Go error only means the exec transport succeeded; the install
	// command itself may still have exited nonzero (bad package name, no
	// network). Only a clean exit earns the checksum cache, so a failed
	// install is retried on the next run instead of being treated as done.
	if result.ExitCode == 0 {
		meta.DepsInstalled = true
		meta.DepsChecksum = checksum
	}
	return result, nil
}

// prepareAndExecute implements Steps 7-8: either running a pre-existing
// entry file in a mounted directory (run-app mode) or writing the inline
// snippet into the container's workspace and running it.
func (e *Engine) prepareAndExecute(ctx context.Context, meta *session.Meta, plugin langs.Plugin, opts ExecutionOptions) (container.ExecResult, error) {
	depsInstalled := meta.DepsInstalled

	if opts.RunApp != nil {
		argv := plugin.RunAppCommand(opts.RunApp.EntryFile, depsInstalled)
		return e.containers.Exec(ctx, meta.ContainerID, argv, opts.RunApp.Cwd, opts.StreamStdout, opts.StreamStderr)
	}

	if err := e.containers.WriteFile(ctx, meta.ContainerID, container.WorkspaceTarget, plugin.InlineFilename(), opts.Code); err != nil {
		return container.ExecResult{}, fmt.Errorf("engine: write inline snippet: %w", err)
	}

	argv := plugin.InlineCommand(depsInstalled)
	return e.containers.Exec(ctx, meta.ContainerID, argv, container.WorkspaceTarget, opts.StreamStdout, opts.StreamStderr)
}

// finalizePlacement implements Step 10: PER_EXECUTION containers are always
// torn down. POOL and PER_SESSION containers are both left bound to the
// session so the next call on it can reuse them; a POOL container only goes
// back through release semantics when the session itself is cleaned up (see
// teardownMeta in cleanup.go).
func (e *Engine) finalizePlacement(ctx context.Context, sess *session.Session, meta *session.Meta) error {
	switch sess.Config.Strategy {
	case session.PerExecution:
		return e.containers.Remove(ctx, &container.Handle{ID: meta.ContainerID, WorkspaceDir: meta.WorkspaceDir}, true)
	case session.Pool, session.PerSession:
		return nil
	default:
		return nil
	}
}
