package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type ProductFilter struct {
	Category  string
	USImport  *bool
	FlashSale *bool
}

type ProductRepository interface {
	// GetByID returns the product or a NOT_FOUND AppError.
	GetByID(ctx context.Context, productID string) (*entity.Product, error)

	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]entity.Product, int64, error)

	// Seed writes the given products if the catalog is empty.
	Seed(ctx context.Context, products []entity.Product) error
}
