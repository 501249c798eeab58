// Package session holds the explicit identity context for a client's
// workflow. A Session is constructed at workflow entry and passed to the
// handlers that need to know who, if anyone, is signed in. There is no global
// ambient identity.
package session

import (
	"sync"

	"pickleshop/internal/core/domain/model/kernel"
)

// Identity is the signed-in customer attached to a session.
type Identity struct {
	UserID kernel.UUID
	Email  kernel.EmailAddress
}

// Session carries the current identity, or none for an anonymous client.
// Safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	identity Identity
	signedIn bool
}

// NewSession creates an anonymous session.
func NewSession() *Session {
	return &Session{}
}

// Establish attaches an identity to the session, replacing any previous one.
func (s *Session) Establish(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.signedIn = true
}

// Current returns the attached identity and whether one is present.
func (s *Session) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.signedIn
}

// Clear detaches the identity, returning the session to anonymous. Used by
// sign-out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = Identity{}
	s.signedIn = false
}
