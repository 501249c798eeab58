package session_test

import (
	"testing"

	"pickleshop/internal/core/application/session"
	"pickleshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartsAnonymous(t *testing.T) {
	s := session.NewSession()

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSession_EstablishAndClear(t *testing.T) {
	s := session.NewSession()
	email, _ := kernel.NewEmailAddress("customer@example.com")
	id := session.Identity{UserID: kernel.NewUUID(), Email: email}

	s.Establish(id)
	current, ok := s.Current()
	require.True(t, ok)
	assert.True(t, current.UserID.IsEqual(id.UserID))
	assert.Equal(t, "customer@example.com", current.Email.String())

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestSession_EstablishReplaces(t *testing.T) {
	s := session.NewSession()
	email, _ := kernel.NewEmailAddress("first@example.com")
	s.Establish(session.Identity{UserID: kernel.NewUUID(), Email: email})

	second, _ := kernel.NewEmailAddress("second@example.com")
	replacement := session.Identity{UserID: kernel.NewUUID(), Email: second}
	s.Establish(replacement)

	current, ok := s.Current()
	require.True(t, ok)
	assert.True(t, current.UserID.IsEqual(replacement.UserID))
}
