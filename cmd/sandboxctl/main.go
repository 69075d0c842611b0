// Command sandboxctl is the operator CLI for the sandbox orchestrator: it
// talks directly to the Docker daemon (the same way the teacher's
// dockerkill did) to report on and clean up managed containers, since the
// pool and session tables themselves are private, in-process state owned
// by a running enginesvc.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"xcodeengine/internal/config"
	"xcodeengine/internal/container"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()

	client, err := container.NewDockerClient()
	if err != nil {
		color.Red("sandboxctl: connect docker: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	manager, err := container.NewManager(client, cfg.ContainerNamePrefix, cfg.TempBaseDir, nil)
	if err != nil {
		color.Red("sandboxctl: init manager: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "status":
		runStatus(ctx, manager)
	case "sweep":
		runSweep(ctx, manager)
	case "cleanup":
		runCleanup(ctx, manager, hasFlag("--keep-generated"))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: sandboxctl <status|sweep|cleanup> [--keep-generated]")
}

func hasFlag(name string) bool {
	for _, a := range os.Args[2:] {
		if a == name {
			return true
		}
	}
	return false
}

// runStatus lists every managed container and its running state, the
// nearest cross-process equivalent of pool membership available without
// talking to a live enginesvc.
func runStatus(ctx context.Context, manager *container.Manager) {
	containers, err := manager.ListManaged(ctx)
	if err != nil {
		color.Red("sandboxctl: list managed containers: %v", err)
		os.Exit(1)
	}

	if len(containers) == 0 {
		color.Yellow("no managed containers")
		return
	}

	for _, c := range containers {
		name := ""
		if len(c.Names) > 0 {
			name = c.Names[0]
		}
		stateColor := color.New(color.FgGreen)
		if c.State != "running" {
			stateColor = color.New(color.FgRed)
		}
		fmt.Printf("%s  %s  image=%s  state=", c.ID[:12], name, c.Image)
		stateColor.Println(c.State)
	}
}

// runSweep removes every managed container that isn't running and its host
// workspace directory, recovering from a crash that left containers behind.
func runSweep(ctx context.Context, manager *container.Manager) {
	if err := manager.Sweep(ctx); err != nil {
		color.Red("sandboxctl: sweep: %v", err)
		os.Exit(1)
	}
	color.Green("sweep complete")
}

// runCleanup force-removes every managed container regardless of state,
// optionally preserving each container's workspace directory on disk
// instead of deleting it (an operator-driven full reset, distinct from a
// single session's own keep-generated teardown).
func runCleanup(ctx context.Context, manager *container.Manager, keepWorkspace bool) {
	containers, err := manager.ListManaged(ctx)
	if err != nil {
		color.Red("sandboxctl: list managed containers: %v", err)
		os.Exit(1)
	}

	for _, c := range containers {
		name := ""
		if len(c.Names) > 0 {
			name = c.Names[0]
		}
		handle := &container.Handle{ID: c.ID, Name: name}
		if !keepWorkspace {
			if dir, derr := manager.WorkspaceDir(trimLeadingSlash(name)); derr == nil {
				handle.WorkspaceDir = dir
			}
		}
		if err := manager.Remove(ctx, handle, !keepWorkspace); err != nil {
			color.Red("sandboxctl: remove %s: %v", c.ID[:12], err)
			continue
		}
		color.Green("removed %s", c.ID[:12])
	}
}

func trimLeadingSlash(name string) string {
	if len(name) > 0 && name[0] == '/' {
		return name[1:]
	}
	return name
}
