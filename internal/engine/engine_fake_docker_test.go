package engine_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/docker/docker/api/types"
	dockercontainer "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

// newStdcopyFrame encodes stdout/stderr into the Docker stdcopy wire format
// so the production stdcopy.StdCopy demuxer sees realistic framed data.
func newStdcopyFrame(stdout, stderr string) *bufio.Reader {
	var buf bytes.Buffer
	writeFrame(&buf, 1, stdout)
	writeFrame(&buf, 2, stderr)
	return bufio.NewReader(&buf)
}

func writeFrame(buf *bytes.Buffer, streamType byte, payload string) {
	if payload == "" {
		return
	}
	header := make([]byte, 8)
	header[0] = streamType
	binary.BigEndian.PutUint32(header[4:], uint32(len(payload)))
	buf.Write(header)
	buf.WriteString(payload)
}

type fakeContainer struct {
	id            string
	name          string
	image         string
	running       bool
	memory        int64
	cpu           int64
	hostWorkspace string
}

type execRequest struct {
	containerID string
	argv        []string
	workdir     string
}

// fakeDockerClient is a minimal, in-memory stand-in for the Docker Engine
// API, narrowed to the container.APIClient surface, so the full engine
// pipeline can run end to end without a daemon.
type fakeDockerClient struct {
	mu         sync.Mutex
	containers map[string]*fakeContainer
	nextID     int

	execs      map[string]execRequest
	execNextID int
	exitCodes  map[string]int

	// execScript, when set, is invoked for every exec round trip; it may
	// inspect/mutate the fake's own state (e.g. write into a container's
	// host workspace directory) to simulate program side effects.
	execScript func(containerID string, argv []string, workdir string) (stdout, stderr string, exitCode int)
}

func newFakeDockerClient() *fakeDockerClient {
	return &fakeDockerClient{
		containers: make(map[string]*fakeContainer),
		execs:      make(map[string]execRequest),
		exitCodes:  make(map[string]int),
	}
}

func (f *fakeDockerClient) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeDockerClient) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	return nil, nil
}

func (f *fakeDockerClient) ContainerCreate(ctx context.Context, config *dockercontainer.Config, hostConfig *dockercontainer.HostConfig, networkingConfig *network.NetworkingConfig, platform *specs.Platform, containerName string) (dockercontainer.CreateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := "fake" + strconv.Itoa(f.nextID)

	var hostWorkspace string
	if len(hostConfig.Binds) > 0 {
		parts := strings.SplitN(hostConfig.Binds[0], ":", 2)
		hostWorkspace = parts[0]
	}

	f.containers[id] = &fakeContainer{
		id:            id,
		name:          containerName,
		image:         config.Image,
		memory:        hostConfig.Resources.Memory,
		cpu:           hostConfig.Resources.CPUQuota,
		hostWorkspace: hostWorkspace,
	}
	return dockercontainer.CreateResponse{ID: id}, nil
}

func (f *fakeDockerClient) ContainerStart(ctx context.Context, containerID string, options dockercontainer.StartOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.containers[containerID]; ok {
		c.running = true
	}
	return nil
}

func (f *fakeDockerClient) ContainerStop(ctx context.Context, containerID string, options dockercontainer.StopOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.containers[containerID]; ok {
		c.running = false
	}
	return nil
}

func (f *fakeDockerClient) ContainerRemove(ctx context.Context, containerID string, options dockercontainer.RemoveOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.containers, containerID)
	return nil
}

func (f *fakeDockerClient) ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.containers[containerID]
	if !ok {
		return types.ContainerJSON{}, notFoundErr(containerID)
	}
	return types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:    c.id,
			Image: c.image,
			State: &types.ContainerState{Running: c.running},
		},
	}, nil
}

func (f *fakeDockerClient) ContainerList(ctx context.Context, options dockercontainer.ListOptions) ([]types.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []types.Container
	for _, c := range f.containers {
		state := "exited"
		if c.running {
			state = "running"
		}
		out = append(out, types.Container{ID: c.id, Names: []string{"/" + c.name}, Image: c.image, State: state})
	}
	return out, nil
}

func (f *fakeDockerClient) ContainerUpdate(ctx context.Context, containerID string, updateConfig dockercontainer.UpdateConfig) (dockercontainer.ContainerUpdateOKBody, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.containers[containerID]; ok {
		if updateConfig.Resources.Memory != 0 {
			c.memory = updateConfig.Resources.Memory
		}
		if updateConfig.Resources.CPUQuota != 0 {
			c.cpu = updateConfig.Resources.CPUQuota
		}
	}
	return dockercontainer.ContainerUpdateOKBody{}, nil
}

func (f *fakeDockerClient) ContainerExecCreate(ctx context.Context, containerID string, config types.ExecConfig) (types.IDResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execNextID++
	id := "exec" + strconv.Itoa(f.execNextID)
	f.execs[id] = execRequest{containerID: containerID, argv: config.Cmd, workdir: config.WorkingDir}
	return types.IDResponse{ID: id}, nil
}

func (f *fakeDockerClient) ContainerExecAttach(ctx context.Context, execID string, config types.ExecStartCheck) (types.HijackedResponse, error) {
	f.mu.Lock()
	req := f.execs[execID]
	script := f.execScript
	f.mu.Unlock()

	stdout, stderr, exitCode := "", "", 0
	if script != nil {
		stdout, stderr, exitCode = script(req.containerID, req.argv, req.workdir)
	}

	f.mu.Lock()
	f.exitCodes[execID] = exitCode
	f.mu.Unlock()

	conn, peer := net.Pipe()
	_ = peer.Close()
	// Manager.Exec closes the response, which closes its Conn, so the fake
	// supplies a real one.
	return types.HijackedResponse{Conn: conn, Reader: newStdcopyFrame(stdout, stderr)}, nil
}

func (f *fakeDockerClient) ContainerExecInspect(ctx context.Context, execID string) (types.ContainerExecInspect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return types.ContainerExecInspect{Running: false, ExitCode: f.exitCodes[execID]}, nil
}

func (f *fakeDockerClient) Close() error { return nil }

type notFoundErr string

func (e notFoundErr) Error() string { return "container not found: " + string(e) }
