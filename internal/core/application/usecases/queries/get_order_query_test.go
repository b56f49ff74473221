package queries_test

import (
	"testing"

	"microshop/internal/core/application/usecases/queries"
	"microshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderNumber := kernel.NewOrderNumber()
	query, err := queries.NewGetOrderQuery(orderNumber)
	require.NoError(t, err)
	assert.True(t, orderNumber.IsEqual(query.OrderNumber()))
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidOrderNumber(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.OrderNumber{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderNumberIsNotConstructed)
}

func TestGetOrderQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrderQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
