package container

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// poolEntry tracks one warm container's liveness state.
type poolEntry struct {
	handle   *Handle
	inUse    bool
	lastUsed time.Time
}

// Pool is a bounded collection of already-created containers kept idle for
// fast acquisition, keyed implicitly by image (repository+tag, ignoring any
// registry prefix).
type Pool struct {
	manager *Manager

	mu      sync.Mutex
	entries []*poolEntry

	minSize     int
	maxSize     int
	idleTimeout time.Duration
}

// NewPool builds a pool bounds-configured per the orchestrator defaults
// (minSize=2, maxSize=5, idleTimeout=5m unless overridden).
func NewPool(manager *Manager, minSize, maxSize int, idleTimeout time.Duration) *Pool {
	if minSize <= 0 {
		minSize = 2
	}
	if maxSize <= 0 {
		maxSize = 5
	}
	if idleTimeout <= 0 {
		idleTimeout = 5 * time.Minute
	}
	return &Pool{manager: manager, minSize: minSize, maxSize: maxSize, idleTimeout: idleTimeout}
}

// imageMatches compares repository+tag, ignoring any registry host prefix
// (e.g. "docker.io/library/node:18-alpine" matches "node:18-alpine").
func imageMatches(a, b string) bool {
	return canonicalImage(a) == canonicalImage(b)
}

func canonicalImage(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// withFreshWorkspace stamps cfg with a newly allocated container name and
// its matching host workspace directory, so pool-created containers each
// get their own bind-mounted directory instead of an empty one.
func (p *Pool) withFreshWorkspace(cfg Config) Config {
	name := p.manager.NewContainerName()
	cfg.Name = name
	if dir, err := p.manager.WorkspaceDir(name); err == nil {
		cfg.Workspace = dir
	}
	return cfg
}

// Acquire returns a warm container whose image matches expectedImage,
// cleaning its workspace before handing it back. If none is free, and the
// pool has room, a fresh container is created. Returns found=false when
// neither path yields a container.
func (p *Pool) Acquire(ctx context.Context, cfg Config) (handle *Handle, found bool, err error) {
	p.mu.Lock()
	for _, e := range p.entries {
		if e.inUse || !imageMatches(e.handle.Image, cfg.Image) {
			continue
		}
		e.inUse = true
		h := e.handle
		p.mu.Unlock()

		if running, rerr := p.manager.IsRunning(ctx, h.ID); rerr != nil || !running {
			if serr := p.manager.Start(ctx, h.ID); serr != nil {
				p.removeEntry(h.ID, true)
				return nil, false, nil
			}
		}
		if cerr := p.manager.CleanWorkspace(ctx, h.ID); cerr != nil {
			p.removeEntry(h.ID, true)
			return nil, false, nil
		}
		return h, true, nil
	}

	room := len(p.entries) < p.maxSize
	p.mu.Unlock()

	if !room {
		return nil, false, nil
	}

	created, cerr := p.manager.Create(ctx, p.withFreshWorkspace(cfg))
	if cerr != nil {
		return nil, false, fmt.Errorf("pool: create on acquire: %w", cerr)
	}

	p.mu.Lock()
	p.entries = append(p.entries, &poolEntry{handle: created, inUse: true, lastUsed: time.Now()})
	p.mu.Unlock()

	return created, true, nil
}

// Release cleans the container's workspace, marks it free, and runs pool
// maintenance (idle eviction, top-up to minSize).
func (p *Pool) Release(ctx context.Context, handle *Handle) error {
	if err := p.manager.CleanWorkspace(ctx, handle.ID); err != nil {
		p.removeEntry(handle.ID, true)
		return err
	}

	p.mu.Lock()
	for _, e := range p.entries {
		if e.handle.ID == handle.ID {
			e.inUse = false
			e.lastUsed = time.Now()
			break
		}
	}
	p.mu.Unlock()

	p.maintain(ctx, handle.Image)
	return nil
}

// maintain evicts idle entries past idleTimeout and tops the pool back up
// to minSize with fresh containers of the given image. Container I/O for
// both eviction and top-up happens outside the lock; only the inUse flip
// and slice mutation are protected, matching the spec's concurrency model.
func (p *Pool) maintain(ctx context.Context, image string) {
	now := time.Now()

	p.mu.Lock()
	var toEvict []*Handle
	kept := p.entries[:0:0]
	for _, e := range p.entries {
		if !e.inUse && now.Sub(e.lastUsed) > p.idleTimeout {
			toEvict = append(toEvict, e.handle)
			continue
		}
		kept = append(kept, e)
	}
	p.entries = kept
	currentCount := len(p.entries)
	p.mu.Unlock()

	for _, h := range toEvict {
		_ = p.manager.Remove(ctx, h, true)
	}

	for currentCount < p.minSize {
		created, err := p.manager.Create(ctx, p.withFreshWorkspace(Config{Image: image}))
		if err != nil {
			return
		}
		p.mu.Lock()
		p.entries = append(p.entries, &poolEntry{handle: created, inUse: false, lastUsed: time.Now()})
		currentCount = len(p.entries)
		p.mu.Unlock()
	}
}

func (p *Pool) removeEntry(containerID string, deleteDir bool) {
	p.mu.Lock()
	var removed *Handle
	kept := p.entries[:0:0]
	for _, e := range p.entries {
		if e.handle.ID == containerID {
			removed = e.handle
			continue
		}
		kept = append(kept, e)
	}
	p.entries = kept
	p.mu.Unlock()

	if removed != nil {
		_ = p.manager.Remove(context.Background(), removed, deleteDir)
	}
}

// EntryStatus is one pool entry as reported by Snapshot.
type EntryStatus struct {
	ContainerID string
	Image       string
	InUse       bool
	LastUsed    time.Time
}

// Snapshot returns a point-in-time view of pool membership, for status
// reporting.
func (p *Pool) Snapshot() []EntryStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]EntryStatus, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, EntryStatus{
			ContainerID: e.handle.ID,
			Image:       e.handle.Image,
			InUse:       e.inUse,
			LastUsed:    e.lastUsed,
		})
	}
	return out
}

// Shutdown removes every container the pool is tracking.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	entries := p.entries
	p.entries = nil
	p.mu.Unlock()

	for _, e := range entries {
		_ = p.manager.Remove(ctx, e.handle, true)
	}
}
