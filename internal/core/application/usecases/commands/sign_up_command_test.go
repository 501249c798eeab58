package commands_test

import (
	"testing"

	"pickleshop/internal/core/application/usecases/commands"
	"pickleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignUpCommand(t *testing.T) {
	cmd, err := commands.NewSignUpCommand("Customer@Example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "customer@example.com", cmd.Email().String())
	assert.Equal(t, "hunter22", cmd.Password())
}

func TestNewSignUpCommand_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "hunter22"},
		{"empty email", "", "hunter22"},
		{"empty password", "customer@example.com", ""},
		{"short password", "customer@example.com", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewSignUpCommand(tt.email, tt.password)
			require.Error(t, err)
		})
	}
}

func TestNewSignUpCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewSignUpCommand("customer@example.com", "abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSignUpCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SignUpCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSignUpCommandIsNotConstructed)
}

func TestNewSignInCommand(t *testing.T) {
	cmd, err := commands.NewSignInCommand("customer@example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "customer@example.com", cmd.Email().String())
}

func TestNewSignInCommand_Invalid(t *testing.T) {
	t.Run("bad email", func(t *testing.T) {
		_, err := commands.NewSignInCommand("not-an-email", "hunter22")
		require.Error(t, err)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := commands.NewSignInCommand("customer@example.com", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSignInCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SignInCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSignInCommandIsNotConstructed)
}
