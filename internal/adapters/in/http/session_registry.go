package http

import (
	"strings"
	"sync"

	"pickleshop/internal/core/application/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionRegistry maps bearer tokens to their sessions. A request without a
// known token gets a fresh anonymous session that lives only for that
// request; signed-in sessions persist until sign-out.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*session.Session),
	}
}

// Issue creates a new session and returns its bearer token.
func (r *SessionRegistry) Issue() (string, *session.Session) {
	token := uuid.NewString()
	sess := session.NewSession()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = sess
	return token, sess
}

// Resolve returns the session for a token, or an anonymous one-off session
// when the token is empty or unknown.
func (r *SessionRegistry) Resolve(token string) *session.Session {
	if token == "" {
		return session.NewSession()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if sess, ok := r.sessions[token]; ok {
		return sess
	}
	return session.NewSession()
}

// Revoke clears and removes the session for a token.
func (r *SessionRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok := r.sessions[token]; ok {
		sess.Clear()
		delete(r.sessions, token)
	}
}

// bearerToken extracts the bearer token from an echo request, empty when absent.
func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
