package engine

import (
	"context"
	"fmt"
	"time"

	"xcodeengine/internal/container"
	"xcodeengine/internal/session"
)

// acquireContainer implements spec.md §4.4 Step 3: picking (or creating) the
// container and workspace a run will use, per the session's placement
// strategy.
func (e *Engine) acquireContainer(ctx context.Context, sess *session.Session, image string, opts ExecutionOptions) (*session.Meta, error) {
	switch sess.Config.Strategy {
	case session.PerExecution:
		return e.acquirePerExecution(ctx, sess, image)
	case session.Pool:
		return e.acquirePooled(ctx, sess, image)
	case session.PerSession:
		return e.acquirePerSession(ctx, sess, image, opts.WorkspaceSharing)
	default:
		return nil, fmt.Errorf("engine: unknown placement strategy %q", sess.Config.Strategy)
	}
}

// acquirePerExecution always provisions a brand new container and workspace;
// nothing from a prior run is reused.
func (e *Engine) acquirePerExecution(ctx context.Context, sess *session.Session, image string) (*session.Meta, error) {
	name := e.containers.NewContainerName()
	workspaceDir, err := e.containers.WorkspaceDir(name)
	if err != nil {
		return nil, err
	}

	cfg := sess.Config.Container
	cfg.Image = image
	cfg.Name = name
	cfg.Workspace = workspaceDir

	handle, err := e.containers.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}

	meta := session.NewMeta(sess.ID, handle.ID, image, name, workspaceDir, time.Now())
	if err := e.sessions.SetCurrent(sess.ID, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// acquirePooled reuses the session's own current container when its image
// still matches, otherwise detaches it (returning it to the pool, or
// removing it outright if it was itself a detached overflow container) and
// acquires a warm pool container matching image, falling back to a
// detached, pool-bypassing container when the pool has no room.
func (e *Engine) acquirePooled(ctx context.Context, sess *session.Session, image string) (*session.Meta, error) {
	current := sess.Current

	if current != nil && current.ImageName == image {
		return current, nil
	}

	if current != nil {
		if err := e.detachPooled(ctx, current); err != nil {
			e.log.Warn("detach previous pooled container failed", map[string]any{"container": current.ContainerID, "err": err.Error()})
		}
	}

	cfg := sess.Config.Container
	cfg.Image = image

	handle, found, err := e.pool.Acquire(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("engine: pool acquire: %w", err)
	}

	detached := false
	if !found {
		name := e.containers.NewContainerName()
		workspaceDir, werr := e.containers.WorkspaceDir(name)
		if werr != nil {
			return nil, werr
		}
		cfg.Name = name
		cfg.Workspace = workspaceDir
		handle, err = e.containers.Create(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("engine: pool overflow create: %w", err)
		}
		detached = true
		e.log.Debug("pool full, created detached container", map[string]any{"container": handle.ID})
	}

	meta := session.NewMeta(sess.ID, handle.ID, image, handle.Name, handle.WorkspaceDir, time.Now())
	meta.Detached = detached
	if err := e.sessions.SetCurrent(sess.ID, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// detachPooled gives up a POOL session's current container when the next
// run needs a different image: a genuinely pooled container goes back
// through release semantics so another session can reuse it, while a
// detached overflow container (never part of the pool's own bookkeeping)
// is removed outright.
func (e *Engine) detachPooled(ctx context.Context, meta *session.Meta) error {
	if meta.Detached {
		return e.containers.Remove(ctx, &container.Handle{ID: meta.ContainerID, WorkspaceDir: meta.WorkspaceDir}, true)
	}
	return e.pool.Release(ctx, &container.Handle{ID: meta.ContainerID, Image: meta.ImageName, WorkspaceDir: meta.WorkspaceDir})
}

// acquirePerSession reuses the session's current container when its image
// still matches the request. Otherwise it swaps: isolated sharing discards
// the old container and workspace outright; shared sharing parks the old
// container as idle-retained (in case the same image comes back) and, when
// no idle-retained container matches, carries the old workspace directory
// forward onto the replacement container so on-disk state survives the
// swap.
func (e *Engine) acquirePerSession(ctx context.Context, sess *session.Session, image string, sharing session.SharingMode) (*session.Meta, error) {
	current := sess.Current

	if current != nil && current.ImageName == image {
		return current, nil
	}

	var carryWorkspace string

	if current != nil {
		if sharing == session.Shared {
			if err := e.containers.Stop(ctx, current.ContainerID); err != nil {
				e.log.Warn("stop for park failed", map[string]any{"container": current.ContainerID, "err": err.Error()})
			}
			if err := e.sessions.PushIdleRetained(sess.ID, current); err != nil {
				return nil, err
			}
			carryWorkspace = current.WorkspaceDir
		} else {
			handle := &container.Handle{ID: current.ContainerID, WorkspaceDir: current.WorkspaceDir}
			if err := e.containers.Remove(ctx, handle, true); err != nil {
				e.log.Warn("remove on isolated swap failed", map[string]any{"container": current.ContainerID, "err": err.Error()})
			}
		}
	}

	if sharing == session.Shared {
		if retained, err := e.sessions.PopIdleRetainedMatching(sess.ID, image); err == nil && retained != nil {
			if running, rerr := e.containers.IsRunning(ctx, retained.ContainerID); rerr != nil || !running {
				if serr := e.containers.Start(ctx, retained.ContainerID); serr != nil {
					return nil, fmt.Errorf("engine: restart idle-retained container: %w", serr)
				}
			}
			retained.IsRunning = false
			if err := e.sessions.SetCurrent(sess.ID, retained); err != nil {
				return nil, err
			}
			return retained, nil
		}
	}

	name := e.containers.NewContainerName()
	workspaceDir := carryWorkspace
	if workspaceDir == "" {
		dir, err := e.containers.WorkspaceDir(name)
		if err != nil {
			return nil, err
		}
		workspaceDir = dir
	}

	cfg := sess.Config.Container
	cfg.Image = image
	cfg.Name = name
	cfg.Workspace = workspaceDir

	handle, err := e.containers.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}

	meta := session.NewMeta(sess.ID, handle.ID, image, name, workspaceDir, time.Now())
	if err := e.sessions.SetCurrent(sess.ID, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// applyResourceOverrides re-applies the session's creation-time resource
// profile (its configured caps, or the engine's defaults where the session
// sets none), then layers a per-run override on top if one was supplied.
// This always happens (Step 4) so a pooled container never silently
// inherits a prior borrower's caps when the current run specifies none of
// its own.
func (e *Engine) applyResourceOverrides(ctx context.Context, meta *session.Meta, opts ExecutionOptions) error {
	memory := e.defaultMemory
	var memoryBytes *int64
	if memory != "" {
		if b, err := container.ParseMemoryLimit(memory); err == nil {
			memoryBytes = &b
		}
	}
	cpuQuota := e.defaultCPUQuota
	if sess, err := e.sessions.Get(meta.SessionID); err == nil {
		if m := sess.Config.Container.Memory; m != 0 {
			memoryBytes = &m
		}
		if c := sess.Config.Container.CPUQuota; c != 0 {
			cpuQuota = c
		}
	}

	if opts.MemoryLimit != nil {
		b, err := container.ParseMemoryLimit(*opts.MemoryLimit)
		if err != nil {
			return fmt.Errorf("engine: parse memory override: %w", err)
		}
		memoryBytes = &b
	}
	if opts.CPULimit != nil {
		cpuQuota = *opts.CPULimit
	}

	cq := cpuQuota
	return e.containers.UpdateResources(ctx, meta.ContainerID, memoryBytes, &cq)
}
