// Package http implements the inbound HTTP adapter. It translates requests
// into commands and queries, and maps domain error kinds onto HTTP statuses:
// invalid values become 400, missing objects 404, illegal transitions and
// concurrent modifications 409.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"microshop/internal/core/application/usecases/commands"
	"microshop/internal/core/application/usecases/queries"
	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CustomerIDHeader carries the customer identity on order creation.
const CustomerIDHeader = "X-Customer-Id"

const (
	defaultPageLimit = 20
	defaultOffset    = 0
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	updateItemQuantityHandler commands.UpdateItemQuantityCommandHandler
	removeItemHandler         commands.RemoveItemCommandHandler
	placeOrderHandler         commands.PlaceOrderCommandHandler
	payOrderHandler           commands.PayOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler

	createProductHandler commands.CreateProductCommandHandler
	updateProductHandler commands.UpdateProductCommandHandler
	deleteProductHandler commands.DeleteProductCommandHandler

	getOrderHandler    queries.GetOrderQueryHandler
	getProductHandler  queries.GetProductQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateItemQuantityHandler commands.UpdateItemQuantityCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateItemQuantityHandler: updateItemQuantityHandler,
		removeItemHandler:         removeItemHandler,
		placeOrderHandler:         placeOrderHandler,
		payOrderHandler:           payOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		createProductHandler:      createProductHandler,
		updateProductHandler:      updateProductHandler,
		deleteProductHandler:      deleteProductHandler,
		getOrderHandler:           getOrderHandler,
		getProductHandler:         getProductHandler,
		getProductsHandler:        getProductsHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1 to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderNumber", s.GetOrder)
	api.PATCH("/orders/:orderNumber/items/:productId", s.UpdateItemQuantity)
	api.DELETE("/orders/:orderNumber/items/:productId", s.RemoveItem)
	api.POST("/orders/:orderNumber/place", s.PlaceOrder)
	api.POST("/orders/:orderNumber/pay", s.PayOrder)
	api.DELETE("/orders/:orderNumber/cancel", s.CancelOrder)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID := ctx.Request().Header.Get(CustomerIDHeader)
	if customerID == "" {
		return errorResponse(ctx, http.StatusBadRequest, "missing "+CustomerIDHeader+" header")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	items := make([]*order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		price, err := kernel.MoneyFromString(itemReq.Price)
		if err != nil {
			return domainError(ctx, err)
		}

		item, err := order.NewItem(itemReq.ProductID, itemReq.SKU, price, itemReq.Quantity)
		if err != nil {
			return domainError(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		OrderNumber: created.OrderNumber.String(),
		Status:      created.Status.String(),
		Currency:    created.Currency,
		TotalAmount: created.TotalAmount.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:orderNumber.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	projection, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailsFrom(projection))
}

// UpdateItemQuantity handles PATCH /api/v1/orders/:orderNumber/items/:productId.
func (s *Server) UpdateItemQuantity(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	productID, err := strconv.ParseInt(ctx.Param("productId"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid product id")
	}

	var req UpdateItemQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(orderNumber, productID, req.Quantity)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateItemQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(updated))
}

// RemoveItem handles DELETE /api/v1/orders/:orderNumber/items/:productId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	productID, err := strconv.ParseInt(ctx.Param("productId"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid product id")
	}

	cmd, err := commands.NewRemoveItemCommand(orderNumber, productID)
	if err != nil {
		return domainError(ctx, err)
	}

	if _, err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders/:orderNumber/place.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(orderNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(placed))
}

// PayOrder handles POST /api/v1/orders/:orderNumber/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	var req PayOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderNumber, paymentMethod, req.PaymentReference)
	if err != nil {
		return domainError(ctx, err)
	}

	paid, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(paid))
}

// CancelOrder handles DELETE /api/v1/orders/:orderNumber/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.Param("orderNumber"))
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderNumber)
	if err != nil {
		return domainError(ctx, err)
	}

	if _, err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Description, price, req.SKU)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponseFrom(created))
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	filter, limit, offset, err := parseProductListing(ctx)
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetProductsQuery(filter, limit, offset)
	if err != nil {
		return domainError(ctx, err)
	}

	page, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productListFrom(page))
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return domainError(ctx, err)
	}

	projection, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productProjectionFrom(projection))
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid product id")
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(id, req.Name, req.Description, price, req.SKU)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponseFrom(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// deletion is idempotent at the API surface
			return ctx.NoContent(http.StatusNoContent)
		}
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseProductListing extracts the filter and pagination from query params.
func parseProductListing(ctx echo.Context) (queries.ProductFilter, int, int, error) {
	filter := queries.ProductFilter{
		Name: ctx.QueryParam("name"),
		SKU:  ctx.QueryParam("sku"),
	}

	if raw := ctx.QueryParam("minPrice"); raw != "" {
		minPrice, err := kernel.MoneyFromString(raw)
		if err != nil {
			return queries.ProductFilter{}, 0, 0, err
		}
		filter.MinPrice = &minPrice
	}
	if raw := ctx.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := kernel.MoneyFromString(raw)
		if err != nil {
			return queries.ProductFilter{}, 0, 0, err
		}
		filter.MaxPrice = &maxPrice
	}

	limit := defaultPageLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return queries.ProductFilter{}, 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		limit = parsed
	}

	offset := defaultOffset
	if raw := ctx.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return queries.ProductFilter{}, 0, 0, errs.NewValueIsInvalidErrorWithCause("offset", err)
		}
		offset = parsed
	}

	return filter, limit, offset, nil
}

// domainError translates a domain error kind into an HTTP response.
func domainError(ctx echo.Context, err error) error {
	return errorResponse(ctx, statusFor(err), err.Error())
}

func errorResponse(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
