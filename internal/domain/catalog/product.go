package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Product represents a sellable item in the catalog context
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Image       string          `gorm:"type:varchar(500)"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Inventory   int             `gorm:"not null;default:0;check:inventory >= 0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with required fields
func NewProduct(name string, price decimal.Decimal, image, category, description string, inventory int) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if inventory < 0 {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		Category:    category,
		Inventory:   inventory,
	}, nil
}

// Rename updates the product name
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrice updates the product price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// SetCategory updates the product category
func (p *Product) SetCategory(category string) error {
	category = strings.TrimSpace(category)
	if err := validateCategory(category); err != nil {
		return err
	}
	p.Category = category
	p.UpdatedAt = time.Now()
	return nil
}

// SetImage updates the product image URL
func (p *Product) SetImage(image string) {
	p.Image = image
	p.UpdatedAt = time.Now()
}

// SetDescription updates the product description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.UpdatedAt = time.Now()
}

// SetInventory replaces the inventory count
func (p *Product) SetInventory(inventory int) error {
	if inventory < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}
	p.Inventory = inventory
	p.UpdatedAt = time.Now()
	return nil
}

// DecreaseInventory removes stock after a sale
func (p *Product) DecreaseInventory(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Inventory < quantity {
		return shared.ErrInsufficientStock
	}
	p.Inventory -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// IncreaseInventory adds stock
func (p *Product) IncreaseInventory(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Inventory += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// InStock returns true if at least the given quantity is available
func (p *Product) InStock(quantity int) bool {
	return p.Inventory >= quantity
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	return nil
}
