// Package productrepo persists product aggregates with their stock counters.
// It maps the domain aggregate to a flat products table; the row lock taken
// by GetForUpdate is what serializes concurrent stock reservations.
package productrepo

import (
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"index"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock             int
	LowStockThreshold int
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Price:             aggregate.Price(),
		Stock:             aggregate.Stock(),
		LowStockThreshold: aggregate.LowStockThreshold(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, dto.Stock, dto.LowStockThreshold)
}
