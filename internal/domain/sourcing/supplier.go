package sourcing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "ACTIVE"
	SupplierStatusInactive SupplierStatus = "INACTIVE"
)

// Supplier represents a provisioned vendor. A supplier always originates
// from an approved quotation; name and email are copied from the quotation
// at creation time and do not follow later quotation edits.
type Supplier struct {
	shared.BaseEntity
	Name         string         `gorm:"type:varchar(100);not null"`
	Email        string         `gorm:"type:varchar(200);not null"`
	Quantity     int            `gorm:"not null;check:quantity > 0"`
	ProductName  string         `gorm:"type:varchar(200);not null"`
	ProductImage string         `gorm:"type:varchar(500);not null"`
	ProductCode  string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	Status       SupplierStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null"`
	QuotationID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Quotation    *Quotation     `gorm:"foreignKey:QuotationID"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier provisions a supplier from an approved quotation.
// The quotation gate is enforced here so a supplier can never be built
// from a pending or rejected application.
func NewSupplier(quotation *Quotation, quantity int, productName, productImage, productCode string, createdBy uuid.UUID) (*Supplier, error) {
	if quotation == nil {
		return nil, shared.ErrNotFound
	}
	if !quotation.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE", "Quotation must be approved to create supplier")
	}

	productName = strings.TrimSpace(productName)
	productImage = strings.TrimSpace(productImage)
	productCode = strings.TrimSpace(productCode)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if productImage == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_IMAGE", "Product image cannot be empty")
	}
	if err := validateProductCode(productCode); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         quotation.Name,
		Email:        quotation.Email,
		Quantity:     quantity,
		ProductName:  productName,
		ProductImage: productImage,
		ProductCode:  productCode,
		Status:       SupplierStatusActive,
		CreatedBy:    createdBy,
		QuotationID:  quotation.ID,
	}, nil
}

// SetQuantity updates the supplied quantity
func (s *Supplier) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	s.Quantity = quantity
	s.UpdatedAt = time.Now()
	return nil
}

// SetProductName updates the supplied product name
func (s *Supplier) SetProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	s.ProductName = productName
	s.UpdatedAt = time.Now()
	return nil
}

// SetProductImage updates the product image URL
func (s *Supplier) SetProductImage(productImage string) error {
	productImage = strings.TrimSpace(productImage)
	if productImage == "" {
		return shared.NewDomainError("INVALID_PRODUCT_IMAGE", "Product image cannot be empty")
	}
	s.ProductImage = productImage
	s.UpdatedAt = time.Now()
	return nil
}

// SetProductCode updates the product code. Global uniqueness is enforced
// by the service and, authoritatively, by the database unique index.
func (s *Supplier) SetProductCode(productCode string) error {
	productCode = strings.TrimSpace(productCode)
	if err := validateProductCode(productCode); err != nil {
		return err
	}
	s.ProductCode = productCode
	s.UpdatedAt = time.Now()
	return nil
}

// SetStatus updates the supplier status
func (s *Supplier) SetStatus(status SupplierStatus) error {
	switch status {
	case SupplierStatusActive, SupplierStatusInactive:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid supplier status")
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return nil
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return nil
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if len(code) > 100 {
		return shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot exceed 100 characters")
	}
	return nil
}
