// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order aggregate. The order
// number is the primary key; the version column carries the optimistic
// concurrency token.
type OrderDTO struct {
	OrderNumber      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       string          `gorm:"index"`
	Status           string          `gorm:"index"`
	PaymentMethod    string          // empty until a payment is assigned
	PaymentReference string          //
	Currency         string          //
	TotalAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Version          int64           //
	CreatedAt        time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
	Items            []ItemDTO       `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderNumber uuid.UUID       `gorm:"type:uuid;index"`
	ProductID   int64           //
	SKU         string          //
	Price       decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity    int             //
}

// TableName overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	paymentMethod := ""
	if aggregate.PaymentMethod() != order.PaymentMethodUnknown {
		paymentMethod = aggregate.PaymentMethod().String()
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderNumber: aggregate.OrderNumber().Value(),
			ProductID:   item.ProductID(),
			SKU:         item.SKU(),
			Price:       item.Price().Amount(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		OrderNumber:      aggregate.OrderNumber().Value(),
		CustomerID:       aggregate.CustomerID(),
		Status:           aggregate.Status().String(),
		PaymentMethod:    paymentMethod,
		PaymentReference: aggregate.PaymentReference(),
		Currency:         aggregate.Currency(),
		TotalAmount:      aggregate.TotalAmount().Amount(),
		Version:          aggregate.Version(),
		Items:            items,
	}
}

// toDomain converts a database row back to an order aggregate using
// RestoreOrder, which revalidates the structural invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber.String())
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod := order.PaymentMethodUnknown
	if dto.PaymentMethod != "" {
		paymentMethod, err = order.PaymentMethodFromString(dto.PaymentMethod)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.SKU, price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		orderNumber,
		dto.CustomerID,
		status,
		paymentMethod,
		dto.PaymentReference,
		dto.Currency,
		items,
		dto.Version,
	)
}
