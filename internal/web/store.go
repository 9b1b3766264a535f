package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// Reasons a session leaves the store.
const (
	RemovedClosed  = "closed"
	RemovedExpired = "expired"
	RemovedEvicted = "evicted"
)

// StoreObserver is notified when sessions enter or leave a Store.
type StoreObserver interface {
	SessionStarted()
	SessionRemoved(reason string)
}

type nopObserver struct{}

func (nopObserver) SessionStarted()       {}
func (nopObserver) SessionRemoved(string) {}

type storeEntry struct {
	session  *launch.Session
	lastSeen time.Time
}

// Store keeps wizard sessions in memory, keyed by a random ID.
// Sessions are independent; the mutex only guards the map and the entry
// being worked on.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*storeEntry

	ttl        time.Duration
	max        int
	now        func() time.Time
	observer   StoreObserver
	newSession func() *launch.Session
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the time source, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithObserver sets the observer notified on session changes.
func WithObserver(o StoreObserver) StoreOption {
	return func(s *Store) { s.observer = o }
}

// WithSessionFactory sets how new sessions are built.
func WithSessionFactory(f func() *launch.Session) StoreOption {
	return func(s *Store) { s.newSession = f }
}

// NewStore creates a store that drops sessions idle for longer than ttl
// and holds at most maxSessions sessions.
func NewStore(ttl time.Duration, maxSessions int, opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]*storeEntry),
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
		observer: nopObserver{},
		newSession: func() *launch.Session {
			return launch.NewSession()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a new session and returns its ID. When the store is full the
// least recently used session is evicted first.
func (s *Store) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	s.sessions[id] = &storeEntry{session: s.newSession(), lastSeen: s.now()}
	s.observer.SessionStarted()
	return id
}

// Update runs fn against the session with the given ID and returns a
// snapshot taken after fn. It reports false if the session does not exist
// or has expired.
func (s *Store) Update(id string, fn func(*launch.Session)) (launch.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.liveLocked(id)
	if !ok {
		return launch.View{}, false
	}
	if fn != nil {
		fn(e.session)
	}
	e.lastSeen = s.now()
	return e.session.Snapshot(), true
}

// Get returns a snapshot of the session with the given ID.
func (s *Store) Get(id string) (launch.View, bool) {
	return s.Update(id, nil)
}

// Delete removes a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	s.removeLocked(id, RemovedClosed)
	return true
}

// Len returns the number of sessions held, including expired ones not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			s.removeLocked(id, RemovedExpired)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) liveLocked(id string) (*storeEntry, bool) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl {
		s.removeLocked(id, RemovedExpired)
		return nil, false
	}
	return e, true
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID != "" {
		s.removeLocked(oldestID, RemovedEvicted)
	}
}

func (s *Store) removeLocked(id, reason string) {
	delete(s.sessions, id)
	s.observer.SessionRemoved(reason)
}
