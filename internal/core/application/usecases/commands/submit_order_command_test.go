package commands_test

import (
	"testing"

	"pickleshop/internal/core/application/usecases/commands"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	draft := order.Draft{FullName: "Nimal Perera"}

	cmd, err := commands.NewSubmitOrderCommand(id, "order_draft", draft)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, "order_draft", cmd.SnapshotSlot())
	assert.Equal(t, draft, cmd.Details())
}

func TestNewSubmitOrderCommand_AcceptsIncompleteDraft(t *testing.T) {
	// field validation belongs to the pipeline, not the constructor
	cmd, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), "order_draft", order.Draft{})
	require.NoError(t, err)
	assert.True(t, cmd.Details().IsEmpty())
}

func TestNewSubmitOrderCommand_Invalid(t *testing.T) {
	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.UUID{}, "order_draft", order.Draft{})
		require.Error(t, err)
	})

	t.Run("empty slot", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), "", order.Draft{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSubmitOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SubmitOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
}
