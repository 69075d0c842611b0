package engine

import (
	"context"
	"fmt"
	"time"

	"xcodeengine/internal/container"
	"xcodeengine/internal/langs"
	"xcodeengine/internal/session"
	"xcodeengine/internal/telemetry"
)

// Engine is the orchestrator described by the spec's Component Design §4.4:
// it consumes the Language Registry, the Container Manager (and its pool),
// and the Session Manager to run executeCode's ten-step pipeline.
type Engine struct {
	registry   *langs.Registry
	containers *container.Manager
	pool       *container.Pool
	sessions   *session.Manager

	log *telemetry.Component

	defaultMemory   string
	defaultCPUQuota float64
	defaultTimeout  time.Duration

	verbosity Verbosity
}

// Config bundles an Engine's construction-time dependencies.
type Config struct {
	Registry   *langs.Registry
	Containers *container.Manager
	Pool       *container.Pool
	Sessions   *session.Manager
	Logger     *telemetry.Logger

	DefaultMemory   string
	DefaultCPUQuota float64
	DefaultTimeout  time.Duration
}

// New builds an Engine from its collaborators.
func New(cfg Config) *Engine {
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = session.NewManager()
	}
	return &Engine{
		registry:        cfg.Registry,
		containers:      cfg.Containers,
		pool:            cfg.Pool,
		sessions:        sessions,
		log:             cfg.Logger.Named("engine"),
		defaultMemory:   cfg.DefaultMemory,
		defaultCPUQuota: cfg.DefaultCPUQuota,
		defaultTimeout:  cfg.DefaultTimeout,
		verbosity:       VerbosityInfo,
	}
}

// SetVerbosity records the requested verbosity on the engine. The engine's
// log calls do not consult it; what is emitted is decided by the logger.
func (e *Engine) SetVerbosity(v Verbosity) { e.verbosity = v }

// CreateSession registers a new session per spec.md §6.
func (e *Engine) CreateSession(cfg session.Config) (string, error) {
	id, err := e.sessions.Create(cfg)
	if err != nil {
		return "", err
	}
	e.log.Debug("session created", map[string]any{"session": id, "strategy": string(cfg.Strategy)})
	return id, nil
}

// GetSessionInfo returns the derived view of a session's lifetime.
func (e *Engine) GetSessionInfo(sessionID string) (session.Info, error) {
	return e.sessions.Info(sessionID)
}

// ExecuteCode is the ten-step pipeline of spec.md §4.4.
func (e *Engine) ExecuteCode(ctx context.Context, sessionID string, opts ExecutionOptions) (*ExecutionResult, error) {
	start := time.Now()

	// Step 1 — validate.
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if opts.WorkspaceSharing == session.Shared && sess.Config.Strategy != session.PerSession {
		return nil, ErrSharedRequiresSession
	}

	plugin, ok := e.registry.Get(opts.Language)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, opts.Language)
	}

	// Step 2 — resolve image.
	image := plugin.DefaultImage()
	if sess.Config.Container.Image != "" {
		image = sess.Config.Container.Image
	}

	if opts.RunApp != nil {
		if !mountTargetPresent(sess.Config.Container.Mounts, opts.RunApp.Cwd) {
			return nil, ErrRunAppMountMissing
		}
	}

	// Step 3 — acquire container and workspace.
	meta, err := e.acquireContainer(ctx, sess, image, opts)
	if err != nil {
		return nil, fmt.Errorf("engine: acquire container: %w", err)
	}
	e.sessions.UpdateRunning(sessionID, meta.ContainerID, true)

	// Step 4 — per-execution resource overrides (falls back to the creation
	// defaults whenever a run doesn't specify its own, so a pooled
	// container never silently inherits the previous borrower's caps).
	if err := e.applyResourceOverrides(ctx, meta, opts); err != nil {
		e.log.Warn("resource override failed", map[string]any{"container": meta.ContainerID, "err": err.Error()})
	}

	// Step 5 — capture baseline.
	baseline, err := snapshotFiles(meta.WorkspaceDir)
	if err != nil {
		e.sessions.UpdateRunning(sessionID, meta.ContainerID, false)
		return nil, err
	}
	meta.BaselineFiles = baseline

	// Step 6 — dependency phase.
	depResult, depErr := e.runDependencyPhase(ctx, meta, plugin, opts)
	if depErr != nil {
		e.log.Warn("dependency install error", map[string]any{"container": meta.ContainerID, "err": depErr.Error()})
	}
	if meta.DepsInstalled {
		// Re-capture so files the installer created are not later reported
		// as generated by the user's code (spec invariant I4).
		baseline, err = snapshotFiles(meta.WorkspaceDir)
		if err != nil {
			e.sessions.UpdateRunning(sessionID, meta.ContainerID, false)
			return nil, err
		}
		meta.BaselineFiles = baseline
	}

	// Step 7 + 8 — prepare run target and execute.
	execCtx := ctx
	var cancel context.CancelFunc
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = e.defaultTimeout
	}
	if timeout > 0 {
		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, execErr := e.prepareAndExecute(execCtx, meta, plugin, opts)
	if execErr != nil {
		e.sessions.UpdateRunning(sessionID, meta.ContainerID, false)
		return nil, execErr
	}

	// Step 9 — post-run accounting.
	after, err := snapshotFiles(meta.WorkspaceDir)
	if err != nil {
		e.sessions.UpdateRunning(sessionID, meta.ContainerID, false)
		return nil, err
	}
	generated := diffGenerated(meta.BaselineFiles, after)
	meta.GeneratedFiles = generated
	for p := range generated {
		meta.SessionGeneratedFiles[p] = struct{}{}
	}
	meta.LastExecutedAt = time.Now()
	meta.IsRunning = false
	e.sessions.UpdateRunning(sessionID, meta.ContainerID, false)

	execResult := &ExecutionResult{
		Stdout:                result.Stdout,
		Stderr:                result.Stderr,
		DependencyStdout:      depResult.Stdout,
		DependencyStderr:      depResult.Stderr,
		ExitCode:              result.ExitCode,
		ExecutionTimeMS:       time.Since(start).Milliseconds(),
		WorkspaceDir:          meta.WorkspaceDir,
		GeneratedFiles:        relativePaths(meta.WorkspaceDir, sortedKeys(generated)),
		SessionGeneratedFiles: relativePaths(meta.WorkspaceDir, sortedKeys(meta.SessionGeneratedFiles)),
	}

	// Step 10 — return/retain.
	if err := e.finalizePlacement(ctx, sess, meta); err != nil {
		e.log.Warn("finalize placement failed", map[string]any{"session": sessionID, "err": err.Error()})
	}

	return execResult, nil
}

func mountTargetPresent(mounts []container.Mount, target string) bool {
	for _, m := range mounts {
		if m.Kind == container.MountDirectory && m.Target == target {
			return true
		}
	}
	return false
}
