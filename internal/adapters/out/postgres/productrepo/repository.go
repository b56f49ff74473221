package productrepo

import (
	"context"
	"errors"

	"microshop/internal/core/domain/model/product"
	"microshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product and returns it with the database-assigned identity.
func (r *GormProductRepository) Add(ctx context.Context, entity *product.Product) (*product.Product, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(entity)
	dto.ID = 0 // let the database assign the identity

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, entity *product.Product) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"description": dto.Description,
			"price":       dto.Price,
			"sku":         dto.SKU,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", dto.ID)
	}

	return nil
}

// Delete removes a product by identity. Deleting a missing product is a no-op.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ProductDTO{}, id).Error
}

// GetByID retrieves a product by identity.
func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsBySKU reports whether a product other than excludeID carries the SKU.
func (r *GormProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("sku = ? AND id <> ?", sku, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
