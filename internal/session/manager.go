package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionExists is returned by Create when RequestedID names an existing
// session and EnforceNewSession was set.
type ErrSessionExists struct{ ID string }

func (e *ErrSessionExists) Error() string {
	return fmt.Sprintf("session: %s already exists", e.ID)
}

// ErrSessionNotFound is returned by any lookup against an unknown id.
type ErrSessionNotFound struct{ ID string }

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session: %s not found", e.ID)
}

// Manager is the process's in-memory session table. A single mutex guards
// both the session table and the container-id index; it is held only for
// table mutations, never across container I/O, so independent sessions can
// execute concurrently without contending on this lock for long.
type Manager struct {
	mu              sync.Mutex
	sessions        map[string]*Session
	metaByContainer map[string]*Meta
}

// NewManager returns an empty session table.
func NewManager() *Manager {
	return &Manager{
		sessions:        make(map[string]*Session),
		metaByContainer: make(map[string]*Meta),
	}
}

// Create registers a new session. If RequestedID names an existing session
// and EnforceNewSession is false, that existing session's id is returned
// unchanged; if EnforceNewSession is true, ErrSessionExists is returned.
func (m *Manager) Create(cfg Config) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := cfg.RequestedID
	if id != "" {
		if _, exists := m.sessions[id]; exists {
			if cfg.EnforceNewSession {
				return "", &ErrSessionExists{ID: id}
			}
			return id, nil
		}
	} else {
		id = uuid.NewString()
	}

	now := time.Now()
	m.sessions[id] = &Session{
		ID:             id,
		Config:         cfg,
		CreatedAt:      now,
		LastExecutedAt: now,
	}
	return id, nil
}

// Get returns the session for id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return s, nil
}

// SetCurrent assigns meta as the session's active container and appends it
// to history (idempotent on ContainerID).
func (m *Manager) SetCurrent(sessionID string, meta *Meta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return &ErrSessionNotFound{ID: sessionID}
	}
	s.Current = meta
	m.appendHistoryLocked(s, meta)
	m.metaByContainer[meta.ContainerID] = meta
	return nil
}

// ClearCurrent detaches the session's active container without forgetting
// its history entry.
func (m *Manager) ClearCurrent(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return &ErrSessionNotFound{ID: sessionID}
	}
	s.Current = nil
	return nil
}

func (m *Manager) appendHistoryLocked(s *Session, meta *Meta) {
	for _, h := range s.History {
		if h.ContainerID == meta.ContainerID {
			return
		}
	}
	s.History = append(s.History, meta)
}

// MetaByContainer looks a container's meta up by container id, regardless
// of which session currently calls it "current".
func (m *Manager) MetaByContainer(containerID string) (*Meta, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.metaByContainer[containerID]
	return meta, ok
}

// UpdateRunning toggles a container's running flag and, when starting a
// run, stamps LastExecutedAt on both the meta and its owning session.
func (m *Manager) UpdateRunning(sessionID, containerID string, running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.metaByContainer[containerID]
	if !ok {
		return
	}
	meta.IsRunning = running
	if running {
		now := time.Now()
		meta.LastExecutedAt = now
		if s, ok := m.sessions[sessionID]; ok {
			s.LastExecutedAt = now
		}
	}
}

// PushIdleRetained parks meta on the session's idle-retained list, for
// potential later reuse in shared-workspace mode when the image mismatches
// the active request.
func (m *Manager) PushIdleRetained(sessionID string, meta *Meta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return &ErrSessionNotFound{ID: sessionID}
	}
	s.IdleRetained = append(s.IdleRetained, meta)
	return nil
}

// PopIdleRetainedMatching removes and returns the first idle-retained
// container whose image matches, or nil if none does.
func (m *Manager) PopIdleRetainedMatching(sessionID, image string) (*Meta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, &ErrSessionNotFound{ID: sessionID}
	}
	for i, meta := range s.IdleRetained {
		if meta.ImageName == image {
			s.IdleRetained = append(s.IdleRetained[:i], s.IdleRetained[i+1:]...)
			return meta, nil
		}
	}
	return nil, nil
}

// TakeIdleRetained removes and returns every idle-retained meta for a
// session, for cleanup.
func (m *Manager) TakeIdleRetained(sessionID string) ([]*Meta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, &ErrSessionNotFound{ID: sessionID}
	}
	retained := s.IdleRetained
	s.IdleRetained = nil
	return retained, nil
}

// Delete erases a session's table entry and drops every container in its
// history from the MetaByContainer index.
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return
	}
	for _, h := range s.History {
		delete(m.metaByContainer, h.ContainerID)
	}
	delete(m.sessions, sessionID)
}

// Info derives the read-only summary GetSessionInfo returns: CreatedAt is
// the earliest history entry, LastExecutedAt the latest.
func (m *Manager) Info(sessionID string) (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return Info{}, &ErrSessionNotFound{ID: sessionID}
	}

	createdAt := s.CreatedAt
	lastExecutedAt := s.LastExecutedAt
	if len(s.History) > 0 {
		createdAt = s.History[0].CreatedAt
		lastExecutedAt = s.History[0].LastExecutedAt
	}
	for _, h := range s.History {
		if h.CreatedAt.Before(createdAt) {
			createdAt = h.CreatedAt
		}
		if h.LastExecutedAt.After(lastExecutedAt) {
			lastExecutedAt = h.LastExecutedAt
		}
	}

	return Info{
		ID:             s.ID,
		Config:         s.Config,
		CreatedAt:      createdAt,
		LastExecutedAt: lastExecutedAt,
		IsActive:       s.IsActive(),
		ContainerCount: len(s.History),
	}, nil
}

// IDs returns every known session id, for Cleanup(all sessions).
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}
