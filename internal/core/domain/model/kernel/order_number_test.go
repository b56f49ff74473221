package kernel_test

import (
	"testing"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("should create valid order number", func(t *testing.T) {
		number := kernel.NewOrderNumber()

		require.NoError(t, number.Validate())
		assert.Len(t, number.String(), 36)
	})

	t.Run("should create unique order numbers", func(t *testing.T) {
		first := kernel.NewOrderNumber()
		second := kernel.NewOrderNumber()

		assert.False(t, first.IsEqual(second))
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("should parse canonical representation", func(t *testing.T) {
		original := kernel.NewOrderNumber()

		parsed, err := kernel.OrderNumberFromString(original.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("should fail for malformed input", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("not-an-order-number")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for nil uuid", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("00000000-0000-0000-0000-000000000000")

		require.Error(t, err)
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var number kernel.OrderNumber

		err := number.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderNumberIsNotConstructed, err)
	})
}
