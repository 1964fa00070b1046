// Package session owns the lifecycle of storefront sessions. Each session is
// created explicitly, owns exactly one cart, and is discarded when ended or
// after sitting idle past the TTL.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/cart"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
)

// Session is a single shopper's state.
type Session struct {
	ID        string
	Cart      *cart.Store
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// LastSeen returns when the session was last created or looked up.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Manager is the registry of live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewManager creates a registry expiring sessions idle for longer than
// idleTTL. A nil clock defaults to time.Now.
func NewManager(idleTTL time.Duration, clock func() time.Time) *Manager {
	if clock == nil {
		clock = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		now:      clock,
	}
}

// Create starts a new session with an empty cart.
func (m *Manager) Create() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.New().String(),
		Cart:      cart.New(),
		CreatedAt: now,
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session with the given id and marks it as seen.
// Unknown and idle-expired sessions yield a NOT_FOUND error; an expired one
// is dropped on the spot.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, apperrors.NotFound("session", id)
	}

	now := m.now()
	if m.expired(s, now) {
		m.End(id)
		return nil, apperrors.NotFound("session", id)
	}
	s.touch(now)
	return s, nil
}

// End discards the session and its cart. Ending an unknown session is a
// no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep drops every session idle for longer than the TTL and reports how
// many were dropped.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Count returns the number of registered sessions, expired or not.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idleTTL > 0 && now.Sub(s.LastSeen()) > m.idleTTL
}
