package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/sourcing"
	"gorm.io/gorm"
)

// GormQuotationRepository implements sourcing.QuotationRepository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

var _ sourcing.QuotationRepository = (*GormQuotationRepository)(nil)

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// Save persists a quotation
func (r *GormQuotationRepository) Save(ctx context.Context, quotation *sourcing.Quotation) error {
	return r.db.WithContext(ctx).Save(quotation).Error
}

// FindByID finds a quotation by ID
func (r *GormQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*sourcing.Quotation, error) {
	var quotation sourcing.Quotation
	if err := r.db.WithContext(ctx).First(&quotation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// FindAll returns quotations newest-first, excluding rejected ones
// unless includeRejected is set
func (r *GormQuotationRepository) FindAll(ctx context.Context, includeRejected bool) ([]sourcing.Quotation, error) {
	var quotations []sourcing.Quotation
	query := r.db.WithContext(ctx).Model(&sourcing.Quotation{}).Order("created_at DESC")
	if !includeRejected {
		query = query.Where("status <> ?", sourcing.QuotationStatusRejected)
	}
	if err := query.Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// FindApproved returns approved quotations, most recently approved first
func (r *GormQuotationRepository) FindApproved(ctx context.Context) ([]sourcing.Quotation, error) {
	var quotations []sourcing.Quotation
	if err := r.db.WithContext(ctx).
		Where("status = ?", sourcing.QuotationStatusApproved).
		Order("approved_at DESC").
		Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}
