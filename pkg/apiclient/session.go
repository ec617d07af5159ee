package apiclient

import "sync"

// Session holds the access/refresh token pair for the lifetime of a login.
// Both tokens are overwritten together on login and refresh and cleared
// together on logout or a failed refresh. Two concurrent requests that both
// hit a 401 may both refresh; last write wins, which is harmless since any
// freshly issued pair is valid.
type Session struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewSession() *Session { return &Session{} }

// Set stores a new token pair. An empty refresh token keeps the previous
// one, matching refresh endpoints that only rotate the access token.
func (s *Session) Set(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	if refresh != "" {
		s.refresh = refresh
	}
}

// Tokens returns the current pair. Empty strings mean not logged in.
func (s *Session) Tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access, s.refresh
}

// Clear drops both tokens.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
}

// Authenticated reports whether an access token is stored.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}
