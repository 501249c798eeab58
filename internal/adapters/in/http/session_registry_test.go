package http_test

import (
	"testing"

	httpadapter "pickleshop/internal/adapters/in/http"
	"pickleshop/internal/core/application/session"
	"pickleshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_IssueAndResolve(t *testing.T) {
	registry := httpadapter.NewSessionRegistry()

	token, sess := registry.Issue()
	require.NotEmpty(t, token)

	email, _ := kernel.NewEmailAddress("customer@example.com")
	sess.Establish(session.Identity{UserID: kernel.NewUUID(), Email: email})

	resolved := registry.Resolve(token)
	identity, ok := resolved.Current()
	require.True(t, ok)
	assert.Equal(t, "customer@example.com", identity.Email.String())
}

func TestSessionRegistry_UnknownTokenIsAnonymous(t *testing.T) {
	registry := httpadapter.NewSessionRegistry()

	_, ok := registry.Resolve("no-such-token").Current()
	assert.False(t, ok)

	_, ok = registry.Resolve("").Current()
	assert.False(t, ok)
}

func TestSessionRegistry_Revoke(t *testing.T) {
	registry := httpadapter.NewSessionRegistry()

	token, sess := registry.Issue()
	email, _ := kernel.NewEmailAddress("customer@example.com")
	sess.Establish(session.Identity{UserID: kernel.NewUUID(), Email: email})

	registry.Revoke(token)

	_, ok := registry.Resolve(token).Current()
	assert.False(t, ok)
	_, ok = sess.Current()
	assert.False(t, ok, "revoking must clear the session itself")
}
