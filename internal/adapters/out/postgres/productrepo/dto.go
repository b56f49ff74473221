// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"time"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database row for a catalog product.
// The SKU carries a unique index; the repository still checks uniqueness
// explicitly so the violation surfaces as a domain error instead of a raw
// database error.
type ProductDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"index"`
	Description string          //
	Price       decimal.Decimal `gorm:"type:numeric(14,2)"`
	SKU         string          `gorm:"uniqueIndex"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product entity to its database representation.
func fromDomain(entity *product.Product) ProductDTO {
	return ProductDTO{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Price:       entity.Price().Amount(),
		SKU:         entity.SKU(),
	}
}

// toDomain converts a database row back to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(dto.ID, dto.Name, dto.Description, price, dto.SKU)
}
