package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductService handles catalog management operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// List returns products newest-first, optionally filtered by category.
// An empty category returns the whole catalog.
func (s *ProductService) List(ctx context.Context, category string) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, category)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return responses, nil
}

// Get returns a single product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Create adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Price, req.Image, req.Category, req.Description, req.Inventory)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := product.SetCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Inventory != nil {
		if err := product.SetInventory(*req.Inventory); err != nil {
			return nil, err
		}
	}
	if req.Image != nil {
		product.SetImage(*req.Image)
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
