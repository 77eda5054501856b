package sourcing

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/sourcing"
)

// SupplierService handles supplier provisioning operations
type SupplierService struct {
	supplierRepo  sourcing.SupplierRepository
	quotationRepo sourcing.QuotationRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo sourcing.SupplierRepository, quotationRepo sourcing.QuotationRepository) *SupplierService {
	return &SupplierService{
		supplierRepo:  supplierRepo,
		quotationRepo: quotationRepo,
	}
}

// ListApprovedQuotations returns the approved quotations available for
// supplier provisioning, most recently approved first, projected down to
// the fields the picker needs.
func (s *SupplierService) ListApprovedQuotations(ctx context.Context) ([]ApprovedQuotationResponse, error) {
	quotations, err := s.quotationRepo.FindApproved(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ApprovedQuotationResponse, 0, len(quotations))
	for i := range quotations {
		responses = append(responses, ApprovedQuotationResponse{
			ID:          quotations[i].ID,
			Name:        quotations[i].Name,
			Email:       quotations[i].Email,
			CompanyName: quotations[i].CompanyName,
		})
	}
	return responses, nil
}

// Create provisions a supplier from an approved quotation. The product
// code pre-check gives a friendly conflict early; the database unique
// index remains the authoritative guard against concurrent creates.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest, createdBy uuid.UUID) (*SupplierResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, req.QuotationID)
	if err != nil {
		return nil, err
	}

	supplier, err := sourcing.NewSupplier(quotation, req.Quantity, req.ProductName, req.ProductImage, req.ProductCode, createdBy)
	if err != nil {
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByProductCode(ctx, supplier.ProductCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product code already exists")
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	supplier.Quotation = quotation
	return toSupplierResponse(supplier, true), nil
}

// List returns all suppliers newest-first with the compact quotation
// expansion (name, email, company)
func (s *SupplierService) List(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, *toSupplierResponse(&suppliers[i], false))
	}
	return responses, nil
}

// Get returns a single supplier with the wider quotation expansion
// including business address and phone number
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, true), nil
}

// Update applies a partial update to a supplier. A product code change
// re-checks uniqueness, excluding the supplier itself so saving an
// unchanged code is not a conflict.
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProductCode != nil {
		// Check the code the way it will be stored, so padding cannot
		// slip a duplicate past the pre-check
		productCode := strings.TrimSpace(*req.ProductCode)
		exists, err := s.supplierRepo.ExistsByProductCodeExcluding(ctx, productCode, supplier.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product code already exists")
		}
		if err := supplier.SetProductCode(productCode); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil {
		if err := supplier.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.ProductName != nil {
		if err := supplier.SetProductName(*req.ProductName); err != nil {
			return nil, err
		}
	}
	if req.ProductImage != nil {
		if err := supplier.SetProductImage(*req.ProductImage); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := supplier.SetStatus(sourcing.SupplierStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return toSupplierResponse(supplier, true), nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, id)
}
