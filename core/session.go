package core

import (
	"strings"
	"sync/atomic"
)

// Session holds the configuration shared by the auth flow and every resource
// accessor as an immutable snapshot behind an atomic pointer. A token
// exchange installs a new snapshot instead of mutating fields in place, so a
// request in flight observes either the old credentials or the new ones,
// never a torn mix. Concurrent exchanges race on last-writer-wins; callers
// that refresh from multiple goroutines must serialize that themselves.
type Session struct {
	current atomic.Pointer[Config]
}

func NewSession(cfg Config) *Session {
	session := &Session{}
	snapshot := cfg.Normalized()
	session.current.Store(&snapshot)
	return session
}

// Snapshot returns a copy of the current configuration.
func (s *Session) Snapshot() Config {
	if s == nil {
		return Config{}
	}
	if cfg := s.current.Load(); cfg != nil {
		return *cfg
	}
	return Config{}
}

// BearerToken returns the access token of the current snapshot. The
// transport reads it per request, so a refresh is visible to every call
// issued after the exchange completes.
func (s *Session) BearerToken() string {
	return strings.TrimSpace(s.Snapshot().AccessToken)
}

// ApplyToken installs a new snapshot carrying the exchanged credentials.
func (s *Session) ApplyToken(token AuthorizationToken) {
	if s == nil {
		return
	}
	next := s.Snapshot()
	next.AccessToken = strings.TrimSpace(token.AccessToken)
	next.RefreshToken = strings.TrimSpace(token.RefreshToken)
	next.TokenExpiresAt = token.ExpiresAt
	s.current.Store(&next)
}
