package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryCount holds the number of products in one category
type CategoryCount struct {
	Category string
	Count    int64
}

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, category string) ([]Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}
