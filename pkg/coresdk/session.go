package coresdk

import "sync"

// Session makes bearer-authenticated requests with the ID token handed out
// at sign-in. Tokens are not refreshed; sign in again once one expires.
type Session struct {
	client *SDKClient

	mu       sync.RWMutex
	identity Identity
	idToken  string
}

func newSession(c *SDKClient, resp *SessionResponse) *Session {
	return &Session{client: c, identity: resp.Identity, idToken: resp.IDToken}
}

// Identity returns the identity the session was created for.
func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// IDToken returns the bearer token.
func (s *Session) IDToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idToken
}
