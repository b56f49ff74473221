package http

import (
	"time"

	"microshop/internal/core/application/usecases/commands"
	"microshop/internal/core/application/usecases/queries"
	"microshop/internal/core/domain/model/order"
)

// Request bodies. Prices travel as decimal strings so nothing is lost to
// floating point on the wire.
type (
	// CreateOrderRequest carries the line items for a new order. The customer
	// identity arrives in the X-Customer-Id header, not in the body.
	CreateOrderRequest struct {
		Items []CreateOrderItemRequest `json:"items"`
	}

	// CreateOrderItemRequest is one line item snapshot in an order creation
	// request.
	CreateOrderItemRequest struct {
		ProductID int64  `json:"productId"`
		SKU       string `json:"sku"`
		Price     string `json:"price"`
		Quantity  int    `json:"quantity"`
	}

	// UpdateItemQuantityRequest carries the new quantity for a line item.
	// Zero or negative removes the item.
	UpdateItemQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	// PayOrderRequest carries the payment details for a placed order.
	PayOrderRequest struct {
		PaymentMethod    string `json:"paymentMethod"`
		PaymentReference string `json:"paymentReference"`
	}

	// ProductRequest carries the product fields for creation and update.
	ProductRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		SKU         string `json:"sku"`
	}
)

// Response bodies.
type (
	// OrderResponse is the projection returned by every mutating order
	// endpoint.
	OrderResponse struct {
		OrderNumber string `json:"orderNumber"`
		Status      string `json:"status"`
		Currency    string `json:"currency"`
		TotalAmount string `json:"totalAmount"`
	}

	// OrderDetailsResponse is the full projection returned by the order
	// lookup endpoint.
	OrderDetailsResponse struct {
		OrderNumber      string              `json:"orderNumber"`
		CustomerID       string              `json:"customerId"`
		Status           string              `json:"status"`
		PaymentMethod    string              `json:"paymentMethod,omitempty"`
		PaymentReference string              `json:"paymentReference,omitempty"`
		Currency         string              `json:"currency"`
		TotalAmount      string              `json:"totalAmount"`
		CreatedAt        time.Time           `json:"createdAt"`
		Items            []OrderItemResponse `json:"items"`
	}

	// OrderItemResponse is one line item within an order projection.
	OrderItemResponse struct {
		ProductID int64  `json:"productId"`
		SKU       string `json:"sku"`
		Price     string `json:"price"`
		Quantity  int    `json:"quantity"`
		Subtotal  string `json:"subtotal"`
	}

	// ProductResponse is the projection of one catalog product.
	ProductResponse struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		SKU         string `json:"sku"`
	}

	// ProductListResponse is one page of the catalog listing.
	ProductListResponse struct {
		Products []ProductResponse `json:"products"`
		Total    int64             `json:"total"`
		Limit    int               `json:"limit"`
		Offset   int               `json:"offset"`
	}

	// Error is the uniform error body for all endpoints.
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

func orderResponseFrom(resp commands.OrderResponse) OrderResponse {
	return OrderResponse{
		OrderNumber: resp.OrderNumber.String(),
		Status:      resp.Status.String(),
		Currency:    resp.Currency,
		TotalAmount: resp.TotalAmount.String(),
	}
}

func orderDetailsFrom(projection queries.GetOrderQueryResponse) OrderDetailsResponse {
	paymentMethod := ""
	if projection.PaymentMethod != order.PaymentMethodUnknown {
		paymentMethod = projection.PaymentMethod.String()
	}

	items := make([]OrderItemResponse, 0, len(projection.Items))
	for _, item := range projection.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.String(),
		})
	}

	return OrderDetailsResponse{
		OrderNumber:      projection.OrderNumber.String(),
		CustomerID:       projection.CustomerID,
		Status:           projection.Status.String(),
		PaymentMethod:    paymentMethod,
		PaymentReference: projection.PaymentReference,
		Currency:         projection.Currency,
		TotalAmount:      projection.TotalAmount.String(),
		CreatedAt:        projection.CreatedAt,
		Items:            items,
	}
}

func productResponseFrom(resp commands.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price.String(),
		SKU:         resp.SKU,
	}
}

func productProjectionFrom(projection queries.GetProductQueryResponse) ProductResponse {
	return ProductResponse{
		ID:          projection.ID,
		Name:        projection.Name,
		Description: projection.Description,
		Price:       projection.Price.String(),
		SKU:         projection.SKU,
	}
}

func productListFrom(page queries.GetProductsQueryResponse) ProductListResponse {
	products := make([]ProductResponse, 0, len(page.Products))
	for _, projection := range page.Products {
		products = append(products, productProjectionFrom(projection))
	}

	return ProductListResponse{
		Products: products,
		Total:    page.Total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
}
