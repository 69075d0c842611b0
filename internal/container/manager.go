package container

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types"
	dockercontainer "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// WorkspaceTarget is the in-container path the session workspace is
	// always bound at, regardless of what else a config mounts alongside it.
	WorkspaceTarget = "/workspace"
	workspaceTarget = WorkspaceTarget

	// defaultMemory / defaultCPUQuota mirror the teacher's baseline
	// resource profile (half a CPU, 512MiB), applied whenever a Config or
	// per-run override doesn't specify its own cap.
	defaultMemory       int64   = 512 * 1024 * 1024
	defaultCPUQuota     float64 = 0.5
	cpuPeriodMicros     int64   = 100000
	idleCommandShell            = "/bin/sh"
)

// Manager wraps a Docker Engine API client and applies the orchestrator's
// fixed security/resource profile to every container it creates.
type Manager struct {
	client      APIClient
	logger      *logrus.Logger
	namePrefix  string
	tempBaseDir string
}

// NewManager builds a Manager around an existing API client.
func NewManager(client APIClient, namePrefix, tempBaseDir string, logger *logrus.Logger) (*Manager, error) {
	if logger == nil {
		logger = logrus.New()
	}
	if err := os.MkdirAll(tempBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("container: ensure temp base dir: %w", err)
	}
	return &Manager{
		client:      client,
		logger:      logger,
		namePrefix:  namePrefix,
		tempBaseDir: tempBaseDir,
	}, nil
}

// WorkspaceDir returns the deterministic host directory bound into the
// container named containerName, creating it if absent.
func (m *Manager) WorkspaceDir(containerName string) (string, error) {
	dir := filepath.Join(m.tempBaseDir, containerName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("container: ensure workspace dir: %w", err)
	}
	return dir, nil
}

// NewContainerName allocates a unique, prefixed container name.
func (m *Manager) NewContainerName() string {
	return m.namePrefix + uuid.NewString()
}

// EnsureImage pulls image if no local copy is present, awaiting pull
// completion before returning.
func (m *Manager) EnsureImage(ctx context.Context, imageRef string) error {
	images, err := m.client.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return fmt.Errorf("container: list images: %w", err)
	}
	for _, im := range images {
		for _, tag := range im.RepoTags {
			if tag == imageRef {
				return nil
			}
		}
	}

	rc, err := m.client.ImagePull(ctx, imageRef, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("container: pull image %s: %w", imageRef, err)
	}
	defer rc.Close()
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return fmt.Errorf("container: await image pull %s: %w", imageRef, err)
	}
	return nil
}

// Create provisions and starts a new container per the orchestrator's fixed
// profile: a TTY, no-new-privileges, bridged networking, the workspace
// bound at /workspace alongside any caller mounts, and a long-running idle
// command so it survives multiple Exec calls.
func (m *Manager) Create(ctx context.Context, cfg Config) (*Handle, error) {
	if err := m.EnsureImage(ctx, cfg.Image); err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = m.NewContainerName()
	}

	binds, err := m.resolveMounts(cfg)
	if err != nil {
		return nil, err
	}

	env := make([]string, 0, len(cfg.Env))
	for k, v := range cfg.Env {
		env = append(env, k+"="+v)
	}

	memory := cfg.Memory
	if memory == 0 {
		memory = defaultMemory
	}
	cpuQuota := cfg.CPUQuota
	if cpuQuota == 0 {
		cpuQuota = defaultCPUQuota
	}

	containerCfg := &dockercontainer.Config{
		Image:      cfg.Image,
		Tty:        true,
		Env:        env,
		WorkingDir: workspaceTarget,
		Cmd:        []string{"tail", "-f", "/dev/null"},
	}
	hostCfg := &dockercontainer.HostConfig{
		Binds:       binds,
		NetworkMode: "bridge",
		SecurityOpt: []string{"no-new-privileges"},
		Resources: dockercontainer.Resources{
			Memory:     memory,
			MemorySwap: memory,
			CPUPeriod:  cpuPeriodMicros,
			CPUQuota:   int64(math.Floor(cpuQuota * float64(cpuPeriodMicros))),
		},
	}

	resp, err := m.client.ContainerCreate(ctx, containerCfg, hostCfg, nil, nil, name)
	if err != nil {
		return nil, fmt.Errorf("container: create %s: %w", name, err)
	}

	if err := m.client.ContainerStart(ctx, resp.ID, dockercontainer.StartOptions{}); err != nil {
		_ = m.client.ContainerRemove(ctx, resp.ID, dockercontainer.RemoveOptions{Force: true})
		return nil, fmt.Errorf("container: start %s: %w", name, err)
	}

	m.logger.WithFields(logrus.Fields{"container": shortID(resp.ID), "image": cfg.Image}).Debug("container created")

	return &Handle{
		ID:           resp.ID,
		Name:         name,
		Image:        cfg.Image,
		WorkspaceDir: cfg.Workspace,
	}, nil
}

// resolveMounts turns the session's workspace plus any caller mounts into
// Docker bind-mount strings, extracting zip mounts to a temp directory
// first.
func (m *Manager) resolveMounts(cfg Config) ([]string, error) {
	binds := []string{cfg.Workspace + ":" + workspaceTarget}

	for _, mnt := range cfg.Mounts {
		source := mnt.Source
		switch mnt.Kind {
		case MountZip:
			extracted, err := m.extractZip(mnt.Source)
			if err != nil {
				return nil, err
			}
			source = extracted
		case MountDirectory:
			if _, err := os.Stat(mnt.Source); err != nil {
				return nil, fmt.Errorf("container: mount source %s: %w", mnt.Source, err)
			}
		case MountFile:
			if _, err := os.Stat(mnt.Source); err != nil {
				return nil, fmt.Errorf("container: mount source %s: %w", mnt.Source, err)
			}
		}

		bind := source + ":" + mnt.Target
		if mnt.ReadOnly || mnt.Kind == MountFile {
			bind += ":ro"
		}
		binds = append(binds, bind)
	}

	return binds, nil
}

// extractZip unpacks a zip mount source into a fresh temp directory so it
// can be bound as a read-write directory.
func (m *Manager) extractZip(zipPath string) (string, error) {
	dest, err := os.MkdirTemp(m.tempBaseDir, "zipmount-*")
	if err != nil {
		return "", fmt.Errorf("container: create zip mount dir: %w", err)
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("container: open zip %s: %w", zipPath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return "", fmt.Errorf("container: zip entry escapes destination: %s", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", err
		}
		if err := extractZipFile(f, target); err != nil {
			return "", err
		}
	}
	return dest, nil
}

func extractZipFile(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// Exec runs argv inside containerID, with stdout+stderr attached and
// demultiplexed into separate buffers, invoking the optional sinks as
// chunks arrive. It returns the combined result once the exec stream ends
// and the exit code has been inspected.
func (m *Manager) Exec(ctx context.Context, containerID string, argv []string, workdir string, stdoutSink, stderrSink Sink) (ExecResult, error) {
	execCfg := types.ExecConfig{
		Cmd:          argv,
		WorkingDir:   workdir,
		AttachStdout: true,
		AttachStderr: true,
	}

	created, err := m.client.ContainerExecCreate(ctx, containerID, execCfg)
	if err != nil {
		return ExecResult{}, fmt.Errorf("container: exec create: %w", err)
	}

	attached, err := m.client.ContainerExecAttach(ctx, created.ID, types.ExecStartCheck{})
	if err != nil {
		return ExecResult{}, fmt.Errorf("container: exec attach: %w", err)
	}
	defer attached.Close()

	var stdoutBuf, stderrBuf strings.Builder
	stdoutW := &sinkWriter{buf: &stdoutBuf, sink: stdoutSink}
	stderrW := &sinkWriter{buf: &stderrBuf, sink: stderrSink}

	copyDone := make(chan error, 1)
	go func() {
		_, cerr := stdcopy.StdCopy(stdoutW, stderrW, attached.Reader)
		copyDone <- cerr
	}()

	select {
	case err := <-copyDone:
		if err != nil && err != io.EOF {
			return ExecResult{}, fmt.Errorf("container: demux exec stream: %w", err)
		}
	case <-ctx.Done():
		// The exec has no kill endpoint of its own; stopping the container
		// it runs in is what actually unblocks the hijacked stream.
		if err := m.client.ContainerStop(context.Background(), containerID, dockercontainer.StopOptions{}); err != nil {
			m.logger.WithFields(logrus.Fields{"container": shortID(containerID)}).Warnf("stop on exec timeout failed: %v", err)
		}
		<-copyDone
		return ExecResult{}, ErrExecTimeout
	}

	inspect, err := m.client.ContainerExecInspect(ctx, created.ID)
	exitCode := 1
	if err == nil && !inspect.Running {
		exitCode = inspect.ExitCode
	}

	return ExecResult{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: exitCode,
	}, nil
}

// sinkWriter implements io.Writer, appending to a buffer and forwarding
// each write verbatim (in order, un-reordered) to an optional Sink.
type sinkWriter struct {
	buf  *strings.Builder
	sink Sink
}

func (w *sinkWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	if w.sink != nil {
		w.sink.Write(p)
	}
	return len(p), nil
}

// WriteFile executes a shell here-document inside the container to create
// or overwrite a file under the working directory. This runs through Exec
// rather than the host filesystem so that a workspace cleaned via
// `rm -rf /workspace/*` inside a pooled container sees the new file
// immediately.
func (m *Manager) WriteFile(ctx context.Context, containerID, workdir, relPath, content string) error {
	script := fmt.Sprintf("cat > %s <<'SANDBOX_EOF'\n%s\nSANDBOX_EOF\n", shellQuotePath(relPath), content)
	result, err := m.Exec(ctx, containerID, []string{"sh", "-c", script}, workdir, nil, nil)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("container: write %s failed (exit %d): %s", relPath, result.ExitCode, result.Stderr)
	}
	return nil
}

func shellQuotePath(p string) string {
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}

// CleanWorkspace removes every entry under /workspace inside the container,
// used both when acquiring a pooled container and when releasing it back.
func (m *Manager) CleanWorkspace(ctx context.Context, containerID string) error {
	result, err := m.Exec(ctx, containerID, []string{"sh", "-c", "rm -rf /workspace/* /workspace/.[!.]* 2>/dev/null; true"}, workspaceTarget, nil, nil)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("container: workspace clean failed (exit %d): %s", result.ExitCode, result.Stderr)
	}
	return nil
}

// UpdateResources applies a new memory cap (bytes) and/or CPU quota
// (fraction of a core) to a live container.
func (m *Manager) UpdateResources(ctx context.Context, containerID string, memory *int64, cpuQuota *float64) error {
	update := dockercontainer.UpdateConfig{}
	if memory != nil {
		update.Resources.Memory = *memory
		update.Resources.MemorySwap = *memory
	}
	if cpuQuota != nil {
		update.Resources.CPUPeriod = cpuPeriodMicros
		update.Resources.CPUQuota = int64(math.Floor(*cpuQuota * float64(cpuPeriodMicros)))
	}
	_, err := m.client.ContainerUpdate(ctx, containerID, update)
	if err != nil {
		return fmt.Errorf("container: update resources %s: %w", shortID(containerID), err)
	}
	return nil
}

// Inspect returns the raw container JSON (state, resource caps, image) for
// verifying overrides took effect.
func (m *Manager) Inspect(ctx context.Context, containerID string) (types.ContainerJSON, error) {
	return m.client.ContainerInspect(ctx, containerID)
}

// Start (re)starts a stopped container.
func (m *Manager) Start(ctx context.Context, containerID string) error {
	return m.client.ContainerStart(ctx, containerID, dockercontainer.StartOptions{})
}

// Stop stops a running container without removing it, used when parking a
// PER_SESSION container as idle-retained.
func (m *Manager) Stop(ctx context.Context, containerID string) error {
	return m.client.ContainerStop(ctx, containerID, dockercontainer.StopOptions{})
}

// IsRunning reports whether the container is currently running.
func (m *Manager) IsRunning(ctx context.Context, containerID string) (bool, error) {
	info, err := m.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return false, err
	}
	return info.State != nil && info.State.Running, nil
}

// Remove force-removes a container and, optionally, its host workspace
// directory.
func (m *Manager) Remove(ctx context.Context, handle *Handle, deleteDir bool) error {
	if err := m.client.ContainerRemove(ctx, handle.ID, dockercontainer.RemoveOptions{Force: true}); err != nil {
		m.logger.WithFields(logrus.Fields{"container": shortID(handle.ID)}).Warnf("remove failed: %v", err)
	}
	if deleteDir && handle.WorkspaceDir != "" {
		if err := os.RemoveAll(handle.WorkspaceDir); err != nil {
			return fmt.Errorf("container: remove workspace dir %s: %w", handle.WorkspaceDir, err)
		}
	}
	return nil
}

// ListManaged lists every container whose name carries the orchestrator's
// prefix, used by the orphan sweep.
func (m *Manager) ListManaged(ctx context.Context) ([]types.Container, error) {
	all, err := m.client.ContainerList(ctx, dockercontainer.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("container: list: %w", err)
	}
	var managed []types.Container
	for _, c := range all {
		for _, n := range c.Names {
			if strings.HasPrefix(strings.TrimPrefix(n, "/"), m.namePrefix) {
				managed = append(managed, c)
				break
			}
		}
	}
	return managed, nil
}

// Sweep removes every managed container that is no longer running, and its
// host workspace directory, recovering from crashes where containers were
// left behind.
func (m *Manager) Sweep(ctx context.Context) error {
	managed, err := m.ListManaged(ctx)
	if err != nil {
		return err
	}
	for _, c := range managed {
		if c.State == "running" {
			continue
		}
		name := strings.TrimPrefix(firstName(c.Names), "/")
		workspaceDir := filepath.Join(m.tempBaseDir, name)
		if err := m.Remove(ctx, &Handle{ID: c.ID, Name: name, WorkspaceDir: workspaceDir}, true); err != nil {
			m.logger.Warnf("sweep: remove %s: %v", shortID(c.ID), err)
		}
	}
	return nil
}

func firstName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// ParseMemoryLimit converts strings like "512m", "1g", "512k", or a bare
// byte count into bytes.
func ParseMemoryLimit(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("container: empty memory limit")
	}
	multiplier := int64(1)
	numeric := s
	switch {
	case strings.HasSuffix(s, "g"):
		multiplier = 1024 * 1024 * 1024
		numeric = strings.TrimSuffix(s, "g")
	case strings.HasSuffix(s, "m"):
		multiplier = 1024 * 1024
		numeric = strings.TrimSuffix(s, "m")
	case strings.HasSuffix(s, "k"):
		multiplier = 1024
		numeric = strings.TrimSuffix(s, "k")
	}
	value, err := strconv.ParseInt(numeric, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("container: invalid memory limit %q: %w", s, err)
	}
	return value * multiplier, nil
}
