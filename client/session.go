package client

import "sync"

// Session holds the signed-in identity as the caller sees it.
type Session struct {
	Access      string
	Refresh     string
	UserID      uint
	AccountType string
	Role        string
}

// SessionStore keeps the current session in memory. Last write wins, so a
// second login simply replaces the first.
type SessionStore struct {
	mu      sync.RWMutex
	session Session
	set     bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns the current session and whether one is set.
func (s *SessionStore) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.set
}

func (s *SessionStore) Set(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.set = true
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	s.set = false
}

// AccessToken is a convenience for the bearer header; empty when signed out.
func (s *SessionStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Access
}
