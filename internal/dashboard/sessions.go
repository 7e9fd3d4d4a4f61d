package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
)

// ControllerFactory builds a fresh controller with the default selection.
type ControllerFactory func(ctx context.Context) (*Controller, error)

// SessionStore hands out one Controller per session ID so each visitor owns
// their own SelectionState. Behind a multi-worker deployment every process
// keeps its own store; nothing here is persisted.
type SessionStore struct {
	mu       sync.Mutex
	factory  ControllerFactory
	ttl      time.Duration
	sessions map[string]*session
	now      func() time.Time
}

type session struct {
	ctl      *Controller
	lastSeen time.Time
}

// NewSessionStore creates a store that expires sessions idle longer than ttl.
func NewSessionStore(factory ControllerFactory, ttl time.Duration) *SessionStore {
	return &SessionStore{
		factory:  factory,
		ttl:      ttl,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Get returns the controller for a session ID, creating one with the
// default selection on first contact. Expired sessions are pruned lazily.
func (s *SessionStore) Get(ctx context.Context, id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if sess, ok := s.sessions[id]; ok {
		sess.lastSeen = now
		return sess.ctl, nil
	}

	ctl, err := s.factory(ctx)
	if err != nil {
		return nil, err
	}
	s.sessions[id] = &session{ctl: ctl, lastSeen: now}
	logger.FromContext(ctx).Debug("created dashboard session %s (%d active)", id, len(s.sessions))
	return ctl, nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
