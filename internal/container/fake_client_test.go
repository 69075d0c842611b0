package container

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
// (an 8-byte header per frame: stream type, 3 zero bytes, big-endian
// length), so stdcopy.StdCopy in the production code can demux it exactly
// as it would a real hijacked exec stream.
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

// fakeContainer is one in-memory container tracked by fakeClient.
type fakeContainer struct {
	id      string
	name    string
	image   string
	running bool
	memory  int64
	cpu     int64
}

// fakeClient is a minimal, in-memory stand-in for the Docker Engine API,
// narrowed to exactly the APIClient surface the manager needs. It lets the
// manager/pool tests run without a daemon.
type fakeClient struct {
	mu         sync.Mutex
	containers map[string]*fakeContainer
	nextID     int
	images     map[string]bool

	// execScript, when set, is invoked for every ContainerExecCreate/Attach
	// round trip and its return values are what Exec observes.
	execScript func(argv []string) (stdout, stderr string, exitCode int)
	lastExit   int

	// hangReader, when set, makes ContainerExecAttach return a stream that
	// never produces output until ContainerStop is called on it, simulating
	// a command that hangs past its timeout.
	hangReader *hangingReader
}

// hangingReader blocks Read until stopped, standing in for a hijacked exec
// stream attached to a container that's still running.
type hangingReader struct {
	once    sync.Once
	unblock chan struct{}
}

func newHangingReader() *hangingReader {
	return &hangingReader{unblock: make(chan struct{})}
}

func (r *hangingReader) stop() {
	r.once.Do(func() { close(r.unblock) })
}

func (r *hangingReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, io.EOF
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		containers: make(map[string]*fakeContainer),
		images:     make(map[string]bool),
	}
}

func (f *fakeClient) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	f.mu.Lock()
	f.images[refStr] = true
	f.mu.Unlock()
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeClient) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []image.Summary
	for ref := range f.images {
		out = append(out, image.Summary{RepoTags: []string{ref}})
	}
	return out, nil
}

func (f *fakeClient) ContainerCreate(ctx context.Context, config *dockercontainer.Config, hostConfig *dockercontainer.HostConfig, networkingConfig *network.NetworkingConfig, platform *specs.Platform, containerName string) (dockercontainer.CreateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := "fake" + strconv.Itoa(f.nextID)
	f.containers[id] = &fakeContainer{
		id:     id,
		name:   containerName,
		image:  config.Image,
		memory: hostConfig.Resources.Memory,
		cpu:    hostConfig.Resources.CPUQuota,
	}
	return dockercontainer.CreateResponse{ID: id}, nil
}

func (f *fakeClient) ContainerStart(ctx context.Context, containerID string, options dockercontainer.StartOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.containers[containerID]; ok {
		c.running = true
	}
	return nil
}

func (f *fakeClient) ContainerStop(ctx context.Context, containerID string, options dockercontainer.StopOptions) error {
	f.mu.Lock()
	if c, ok := f.containers[containerID]; ok {
		c.running = false
	}
	hang := f.hangReader
	f.mu.Unlock()
	if hang != nil {
		hang.stop()
	}
	return nil
}

func (f *fakeClient) ContainerRemove(ctx context.Context, containerID string, options dockercontainer.RemoveOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.containers, containerID)
	return nil
}

func (f *fakeClient) ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.containers[containerID]
	if !ok {
		return types.ContainerJSON{}, errNotFound(containerID)
	}
	return types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:    c.id,
			Image: c.image,
			State: &types.ContainerState{Running: c.running},
		},
	}, nil
}

func (f *fakeClient) ContainerList(ctx context.Context, options dockercontainer.ListOptions) ([]types.Container, error) {
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

func (f *fakeClient) ContainerUpdate(ctx context.Context, containerID string, updateConfig dockercontainer.UpdateConfig) (dockercontainer.ContainerUpdateOKBody, error) {
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

func (f *fakeClient) ContainerExecCreate(ctx context.Context, containerID string, config types.ExecConfig) (types.IDResponse, error) {
	return types.IDResponse{ID: containerID + ":" + strings.Join(config.Cmd, " ")}, nil
}

func (f *fakeClient) ContainerExecAttach(ctx context.Context, execID string, config types.ExecStartCheck) (types.HijackedResponse, error) {
	parts := strings.SplitN(execID, ":", 2)
	var argv []string
	if len(parts) == 2 {
		argv = strings.Fields(parts[1])
	}

	f.mu.Lock()
	hang := f.hangReader
	f.mu.Unlock()
	if hang != nil {
		return types.HijackedResponse{Conn: closableConn(), Reader: bufio.NewReader(hang)}, nil
	}

	stdout, stderr := "", ""
	exitCode := 0
	if f.execScript != nil {
		stdout, stderr, exitCode = f.execScript(argv)
	}

	f.mu.Lock()
	f.lastExit = exitCode
	f.mu.Unlock()

	return types.HijackedResponse{Conn: closableConn(), Reader: newStdcopyFrame(stdout, stderr)}, nil
}

// closableConn gives a fake HijackedResponse a real net.Conn, since
// Manager.Exec closes the response (and with it its Conn) when done.
func closableConn() net.Conn {
	conn, peer := net.Pipe()
	_ = peer.Close()
	return conn
}

func (f *fakeClient) ContainerExecInspect(ctx context.Context, execID string) (types.ContainerExecInspect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return types.ContainerExecInspect{Running: false, ExitCode: f.lastExit}, nil
}

func (f *fakeClient) Close() error { return nil }

type notFoundErr string

func (e notFoundErr) Error() string { return "container not found: " + string(e) }

func errNotFound(id string) error { return notFoundErr(id) }
