package httpapi

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Store errors.
var (
	ErrSessionNotFound = errors.New("httpapi: session not found")
	ErrStoreFull       = errors.New("httpapi: session limit reached")
)

// session is one game played over the API. The controller is not safe for
// concurrent use, so every access goes through mu.
type session struct {
	mu   sync.Mutex
	id   string
	ctrl *t2048.Controller
}

// state is a consistent copy of a session taken under its lock.
type state struct {
	ID    string
	Board t2048.Board
	Moves int
}

func (s *session) snapshot() state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return state{ID: s.id, Board: s.ctrl.Board(), Moves: s.ctrl.Moves()}
}

func (s *session) move(dir t2048.Direction) (t2048.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.ctrl.HandleDirection(dir)
	return s.ctrl.Board(), changed
}

// MemoryStore keeps sessions in a map keyed by ID.
// State is lost when the process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	limit    int
}

// NewMemoryStore creates an empty store holding at most limit sessions.
// A limit <= 0 means no limit.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*session), limit: limit}
}

// Create registers a new session for ctrl and returns its ID.
// It returns ErrStoreFull when the store is at its limit.
func (m *MemoryStore) Create(ctrl *t2048.Controller) (string, error) {
	s := &session{id: uuid.New().String(), ctrl: ctrl}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.sessions) >= m.limit {
		return "", ErrStoreFull
	}
	m.sessions[s.id] = s
	return s.id, nil
}

func (m *MemoryStore) get(id string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

// Delete removes a session. It reports whether the session existed.
func (m *MemoryStore) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
