package http

import (
	"errors"
	netHTTP "net/http"
	"net/http/httptest"
	"testing"

	"microshop/internal/core/application/usecases/queries"
	"microshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"value required", errs.NewValueIsRequiredError("customerId"), netHTTP.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("quantity"), netHTTP.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("limit", 0, 1, 100), netHTTP.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("orderNumber", "x"), netHTTP.StatusNotFound},
		{"invalid state", errs.NewInvalidStateError("pay", "CREATED"), netHTTP.StatusConflict},
		{"version conflict", errs.NewVersionConflictError("orderNumber", "x", 3), netHTTP.StatusConflict},
		{"already exists", errs.NewObjectAlreadyExistsError("sku", "SKU-001"), netHTTP.StatusConflict},
		{"unknown", errors.New("boom"), netHTTP.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusFor(tc.err))
		})
	}
}

func TestParseProductListing_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(netHTTP.MethodGet, "/api/v1/products", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	filter, limit, offset, err := parseProductListing(ctx)
	require.NoError(t, err)
	assert.Equal(t, queries.ProductFilter{}, filter)
	assert.Equal(t, defaultPageLimit, limit)
	assert.Equal(t, defaultOffset, offset)
}

func TestParseProductListing_FullQuery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(netHTTP.MethodGet,
		"/api/v1/products?name=widget&sku=SKU&minPrice=5.00&maxPrice=25.00&limit=50&offset=10", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	filter, limit, offset, err := parseProductListing(ctx)
	require.NoError(t, err)
	assert.Equal(t, "widget", filter.Name)
	assert.Equal(t, "SKU", filter.SKU)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, "5.00", filter.MinPrice.String())
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, "25.00", filter.MaxPrice.String())
	assert.Equal(t, 50, limit)
	assert.Equal(t, 10, offset)
}

func TestParseProductListing_BadLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(netHTTP.MethodGet, "/api/v1/products?limit=abc", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	_, _, _, err := parseProductListing(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseProductListing_BadPrice(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(netHTTP.MethodGet, "/api/v1/products?minPrice=cheap", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	_, _, _, err := parseProductListing(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
