package sourcing

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/sourcing"
)

// QuotationService handles quotation lifecycle operations
type QuotationService struct {
	quotationRepo sourcing.QuotationRepository
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(quotationRepo sourcing.QuotationRepository) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
	}
}

// Submit accepts a public quotation submission and stores it as pending
func (s *QuotationService) Submit(ctx context.Context, req SubmitQuotationRequest) (*QuotationResponse, error) {
	quotation, err := sourcing.NewQuotation(
		req.Name,
		req.Email,
		req.PhoneNumber,
		req.BusinessAddress,
		req.CompanyName,
		req.IndustrialExperience,
		req.Qualification,
		req.ProductDetails,
	)
	if err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	return toQuotationResponse(quotation), nil
}

// List returns quotations newest-first. Rejected quotations are hidden
// unless includeRejected is set.
func (s *QuotationService) List(ctx context.Context, includeRejected bool) ([]QuotationResponse, error) {
	quotations, err := s.quotationRepo.FindAll(ctx, includeRejected)
	if err != nil {
		return nil, err
	}

	responses := make([]QuotationResponse, 0, len(quotations))
	for i := range quotations {
		responses = append(responses, *toQuotationResponse(&quotations[i]))
	}
	return responses, nil
}

// Get returns a single quotation by ID
func (s *QuotationService) Get(ctx context.Context, id uuid.UUID) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation), nil
}

// Approve transitions a pending quotation to approved
func (s *QuotationService) Approve(ctx context.Context, id, approvedBy uuid.UUID, adminNotes string) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := quotation.Approve(approvedBy, adminNotes); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	return toQuotationResponse(quotation), nil
}

// Reject transitions a pending quotation to rejected
func (s *QuotationService) Reject(ctx context.Context, id uuid.UUID, adminNotes string) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := quotation.Reject(adminNotes); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	return toQuotationResponse(quotation), nil
}

// Update applies a partial update to a quotation. Fields left nil in the
// request keep their current value.
func (s *QuotationService) Update(ctx context.Context, id uuid.UUID, req UpdateQuotationRequest) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := quotation.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := quotation.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != nil {
		if err := quotation.SetPhoneNumber(*req.PhoneNumber); err != nil {
			return nil, err
		}
	}
	if req.BusinessAddress != nil {
		if err := quotation.SetBusinessAddress(*req.BusinessAddress); err != nil {
			return nil, err
		}
	}
	if req.CompanyName != nil {
		if err := quotation.SetCompanyName(*req.CompanyName); err != nil {
			return nil, err
		}
	}
	if req.IndustrialExperience != nil {
		if err := quotation.SetIndustrialExperience(*req.IndustrialExperience); err != nil {
			return nil, err
		}
	}
	if req.Qualification != nil {
		if err := quotation.SetQualification(*req.Qualification); err != nil {
			return nil, err
		}
	}
	if req.ProductDetails != nil {
		if err := quotation.SetProductDetails(*req.ProductDetails); err != nil {
			return nil, err
		}
	}
	if req.AdminNotes != nil {
		quotation.SetAdminNotes(*req.AdminNotes)
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	return toQuotationResponse(quotation), nil
}
