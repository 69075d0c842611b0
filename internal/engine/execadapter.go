package engine

import (
	"context"

	"xcodeengine/internal/container"
)

// execAdapter satisfies langs.Execer by delegating to the container
// manager's richer Exec. stdout/stderr are optional streaming sinks forwarded
// from the run's ExecutionOptions for the dependency-install phase.
type execAdapter struct {
	manager *container.Manager
	stdout  container.Sink
	stderr  container.Sink
}

func (a execAdapter) Exec(ctx context.Context, containerID string, argv []string, workdir string) (string, string, int, error) {
	result, err := a.manager.Exec(ctx, containerID, argv, workdir, a.stdout, a.stderr)
	if err != nil {
		return "", "", 1, err
	}
	return result.Stdout, result.Stderr, result.ExitCode, nil
}
