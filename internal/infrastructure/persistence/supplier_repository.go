package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/sourcing"
	"gorm.io/gorm"
)

// GormSupplierRepository implements sourcing.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

var _ sourcing.SupplierRepository = (*GormSupplierRepository)(nil)

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Create inserts a new supplier inside a transaction. The source
// quotation is re-read with a row lock so a concurrent rejection cannot
// slip in between the service's check and the insert, and the unique
// index on product_code is the authoritative duplicate guard.
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *sourcing.Supplier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quotation sourcing.Quotation
		if err := tx.
			Clauses(forUpdateClause()).
			First(&quotation, "id = ?", supplier.QuotationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if !quotation.IsApproved() {
			return shared.NewDomainError("INVALID_STATE", "Quotation must be approved to create supplier")
		}

		if err := tx.Omit("Quotation").Create(supplier).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.NewDomainError("ALREADY_EXISTS", "Product code already exists")
			}
			return err
		}
		return nil
	})
}

// Save persists changes to an existing supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *sourcing.Supplier) error {
	if err := r.db.WithContext(ctx).Omit("Quotation").Save(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ALREADY_EXISTS", "Product code already exists")
		}
		return err
	}
	return nil
}

// FindByID finds a supplier by ID with its quotation loaded
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*sourcing.Supplier, error) {
	var supplier sourcing.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Quotation").
		First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll returns suppliers newest-first with their quotations loaded
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]sourcing.Supplier, error) {
	var suppliers []sourcing.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Quotation").
		Order("created_at DESC").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Delete removes a supplier by ID
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sourcing.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByProductCode checks whether a supplier uses the product code
func (r *GormSupplierRepository) ExistsByProductCode(ctx context.Context, productCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&sourcing.Supplier{}).
		Where("product_code = ?", productCode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByProductCodeExcluding checks whether another supplier than the
// given one uses the product code
func (r *GormSupplierRepository) ExistsByProductCodeExcluding(ctx context.Context, productCode string, excludeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&sourcing.Supplier{}).
		Where("product_code = ? AND id <> ?", productCode, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
