// Package session keeps per-citizen conversation state in memory. Sessions
// expire after a TTL; there is no persistence across restarts.
package session

import (
	"sync"
	"time"

	"github.com/Daniel-Abiy/AfriDesk/internal/assistant"
	"github.com/Daniel-Abiy/AfriDesk/internal/profile"
	"github.com/Daniel-Abiy/AfriDesk/internal/recommend"
	"github.com/google/uuid"
)

// Session holds everything the API remembers about one citizen.
type Session struct {
	ID             string
	Profile        profile.Profile
	Recommendation *recommend.Result
	History        []assistant.Message
	CreatedAt      time.Time
	LastSeen       time.Time
}

// Store is a TTL-bound in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
// A background janitor sweeps expired sessions until Close is called.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *Store) janitor() {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) sweep() {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// Close stops the janitor. Sessions remain readable until the store is
// garbage collected.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Create registers a new session for the profile and returns it.
func (s *Store) Create(prof profile.Profile) *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Profile:   prof,
		CreatedAt: now,
		LastSeen:  now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session and refreshes its expiry. Expired or unknown IDs
// return false.
func (s *Store) Get(id string) (*Session, bool) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if sess.LastSeen.Before(now.Add(-s.ttl)) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.LastSeen = now
	return sess, true
}

// Update applies fn to the session under the store lock.
func (s *Store) Update(id string, fn func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	fn(sess)
	sess.LastSeen = s.now()
	return true
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
