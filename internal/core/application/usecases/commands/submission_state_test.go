package commands_test

import (
	"testing"

	"pickleshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionState_HappyPath(t *testing.T) {
	s := commands.Idle

	s, err := s.StartValidating()
	require.NoError(t, err)
	s, err = s.StartPersisting()
	require.NoError(t, err)
	s, err = s.StartNotifying()
	require.NoError(t, err)
	s, err = s.StartGeneratingReceipt()
	require.NoError(t, err)
	s, err = s.Confirm()
	require.NoError(t, err)

	assert.Equal(t, commands.Confirmed, s)
	assert.True(t, s.IsTerminal())
}

func TestSubmissionState_FailOnlyFromPersisting(t *testing.T) {
	tests := []struct {
		name    string
		state   commands.SubmissionState
		wantErr bool
	}{
		{"from Idle", commands.Idle, true},
		{"from Validating", commands.Validating, true},
		{"from Persisting", commands.Persisting, false},
		{"from Notifying", commands.Notifying, true},
		{"from GeneratingReceipt", commands.GeneratingReceipt, true},
		{"from Confirmed", commands.Confirmed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.state.Fail()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, commands.Failed, s)
			assert.True(t, s.IsTerminal())
		})
	}
}

func TestSubmissionState_NoStageSkipping(t *testing.T) {
	_, err := commands.Idle.StartPersisting()
	require.Error(t, err)

	_, err = commands.Validating.StartNotifying()
	require.Error(t, err)

	_, err = commands.Persisting.Confirm()
	require.Error(t, err)

	_, err = commands.Failed.StartValidating()
	require.Error(t, err)
}

func TestSubmissionState_String(t *testing.T) {
	assert.Equal(t, "Idle", commands.Idle.String())
	assert.Equal(t, "Confirmed", commands.Confirmed.String())
	assert.Equal(t, "Unknown", commands.SubmissionState(42).String())
}

func TestSubmissionState_Validate(t *testing.T) {
	require.NoError(t, commands.Notifying.Validate())
	require.Error(t, commands.SubmissionState(42).Validate())
}
