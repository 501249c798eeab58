package kernel_test

import (
	"testing"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBottleCount(t *testing.T) {
	for _, value := range []int{1, 2, 25, 50} {
		count, err := kernel.NewBottleCount(value)
		require.NoError(t, err)
		require.NoError(t, count.Validate())
		assert.Equal(t, value, count.Value())
	}
}

func TestNewBottleCount_OutOfRange(t *testing.T) {
	for _, value := range []int{0, -1, 51, 100} {
		_, err := kernel.NewBottleCount(value)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestBottleCount_Validate_ZeroValue(t *testing.T) {
	var count kernel.BottleCount
	require.Error(t, count.Validate())
	assert.ErrorIs(t, count.Validate(), kernel.ErrBottleCountIsNotConstructed)
}
