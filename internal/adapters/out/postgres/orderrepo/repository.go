package orderrepo

import (
	"context"
	"errors"
	"time"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Writes are arbitrated through the version column: Add inserts version 1,
// Update compares-and-increments it in a single statement so that of two
// concurrent writers loading the same version exactly one commits.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update saves an existing order under the optimistic concurrency check.
// The row is updated only when the stored version still equals the version
// read at load time; the item rows are replaced wholesale.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_number = ? AND version = ?", dto.OrderNumber, dto.Version).
		Updates(map[string]any{
			"customer_id":       dto.CustomerID,
			"status":            dto.Status,
			"payment_method":    dto.PaymentMethod,
			"payment_reference": dto.PaymentReference,
			"currency":          dto.Currency,
			"total_amount":      dto.TotalAmount,
			"version":           dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate)
	}

	if err := r.db.WithContext(ctx).
		Where("order_number = ?", dto.OrderNumber).
		Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	return nil
}

// classifyMissedUpdate distinguishes a vanished order from a concurrent
// modification after the version check matched zero rows.
func (r *GormOrderRepository) classifyMissedUpdate(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_number = ?", aggregate.OrderNumber().Value()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("orderNumber", aggregate.OrderNumber().String())
	}

	return errs.NewVersionConflictError("orderNumber", aggregate.OrderNumber().String(), aggregate.Version())
}

// GetByOrderNumber retrieves an order with its items by the natural key.
func (r *GormOrderRepository) GetByOrderNumber(
	ctx context.Context,
	orderNumber kernel.OrderNumber,
) (*order.Order, error) {
	if err := orderNumber.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "order_number = ?", orderNumber.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", orderNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCreatedBefore retrieves orders still in Created status older than the
// cutoff, with their items.
func (r *GormOrderRepository) GetAllCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "status = ? AND created_at < ?", order.Created.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
