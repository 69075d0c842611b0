package engine

import (
	"context"
	"fmt"

	"xcodeengine/internal/container"
	"xcodeengine/internal/session"
)

// CleanupSession tears a single session's containers down, per spec.md §4.5.
// When keepGenerated is true, each container's workspace is pruned to only
// the files that session ever generated instead of being deleted outright.
func (e *Engine) CleanupSession(ctx context.Context, sessionID string, keepGenerated bool) error {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return ErrSessionNotFound
	}

	retained, _ := e.sessions.TakeIdleRetained(sessionID)
	metas := append(append([]*session.Meta(nil), sess.History...), retained...)

	// Containers that shared one workspace directory (a PER_SESSION shared
	// swap) prune it against everything any of them generated.
	keepByDir := make(map[string]map[string]struct{})
	for _, meta := range metas {
		if keepByDir[meta.WorkspaceDir] == nil {
			keepByDir[meta.WorkspaceDir] = make(map[string]struct{})
		}
		for p := range meta.SessionGeneratedFiles {
			keepByDir[meta.WorkspaceDir][p] = struct{}{}
		}
	}
	for _, meta := range metas {
		meta.SessionGeneratedFiles = keepByDir[meta.WorkspaceDir]
	}

	for _, meta := range metas {
		if err := e.teardownMeta(ctx, meta, sess.Config.Strategy, keepGenerated); err != nil {
			e.log.Warn("cleanup session container failed", map[string]any{
				"session": sessionID, "container": meta.ContainerID, "err": err.Error(),
			})
		}
	}

	e.sessions.Delete(sessionID)
	return nil
}

// Cleanup tears down every known session (used by the façade's cleanup
// subject), then sweeps any orphaned managed containers left behind by a
// prior crash.
func (e *Engine) Cleanup(ctx context.Context, keepGenerated bool) error {
	for _, id := range e.sessions.IDs() {
		if err := e.CleanupSession(ctx, id, keepGenerated); err != nil {
			e.log.Warn("cleanup failed for session", map[string]any{"session": id, "err": err.Error()})
		}
	}
	return e.containers.Sweep(ctx)
}

// teardownMeta removes one container, honoring PER_SESSION/shared's desire
// to keep generated output on disk, and POOL containers' desire to go back
// through release semantics (clean workspace, return to the warm set)
// rather than be destroyed.
func (e *Engine) teardownMeta(ctx context.Context, meta *session.Meta, strategy session.PlacementStrategy, keepGenerated bool) error {
	if strategy == session.Pool && !meta.Detached {
		return e.pool.Release(ctx, &container.Handle{ID: meta.ContainerID, Image: meta.ImageName, WorkspaceDir: meta.WorkspaceDir})
	}
	if strategy == session.Pool && meta.Detached {
		return e.containers.Remove(ctx, &container.Handle{ID: meta.ContainerID, WorkspaceDir: meta.WorkspaceDir}, true)
	}

	if keepGenerated && len(meta.SessionGeneratedFiles) > 0 {
		if err := pruneToGenerated(meta.WorkspaceDir, meta.SessionGeneratedFiles); err != nil {
			return fmt.Errorf("engine: prune workspace before teardown: %w", err)
		}
		return e.containers.Remove(ctx, &container.Handle{ID: meta.ContainerID, WorkspaceDir: ""}, false)
	}

	return e.containers.Remove(ctx, &container.Handle{ID: meta.ContainerID, WorkspaceDir: meta.WorkspaceDir}, true)
}
