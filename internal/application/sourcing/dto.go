package sourcing

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/sourcing"
)

// SubmitQuotationRequest is the payload of a public quotation submission
type SubmitQuotationRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required"`
	PhoneNumber          string `json:"phone_number" binding:"required"`
	BusinessAddress      string `json:"business_address" binding:"required"`
	CompanyName          string `json:"company_name" binding:"required"`
	IndustrialExperience string `json:"industrial_experience" binding:"required"`
	Qualification        string `json:"qualification" binding:"required"`
	ProductDetails       string `json:"product_details" binding:"required"`
}

// UpdateQuotationRequest carries a partial quotation update.
// Nil fields are left untouched.
type UpdateQuotationRequest struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	PhoneNumber          *string `json:"phone_number"`
	BusinessAddress      *string `json:"business_address"`
	CompanyName          *string `json:"company_name"`
	IndustrialExperience *string `json:"industrial_experience"`
	Qualification        *string `json:"qualification"`
	ProductDetails       *string `json:"product_details"`
	AdminNotes           *string `json:"admin_notes"`
}

// ReviewQuotationRequest carries optional reviewer notes for approve/reject
type ReviewQuotationRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// QuotationResponse is the full quotation representation
type QuotationResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	PhoneNumber          string     `json:"phone_number"`
	BusinessAddress      string     `json:"business_address"`
	CompanyName          string     `json:"company_name"`
	IndustrialExperience string     `json:"industrial_experience"`
	Qualification        string     `json:"qualification"`
	ProductDetails       string     `json:"product_details"`
	Status               string     `json:"status"`
	AdminNotes           string     `json:"admin_notes,omitempty"`
	ApprovedAt           *time.Time `json:"approved_at,omitempty"`
	ApprovedBy           *uuid.UUID `json:"approved_by,omitempty"`
	RejectedAt           *time.Time `json:"rejected_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func toQuotationResponse(q *sourcing.Quotation) *QuotationResponse {
	return &QuotationResponse{
		ID:                   q.ID,
		Name:                 q.Name,
		Email:                q.Email,
		PhoneNumber:          q.PhoneNumber,
		BusinessAddress:      q.BusinessAddress,
		CompanyName:          q.CompanyName,
		IndustrialExperience: q.IndustrialExperience,
		Qualification:        q.Qualification,
		ProductDetails:       q.ProductDetails,
		Status:               string(q.Status),
		AdminNotes:           q.AdminNotes,
		ApprovedAt:           q.ApprovedAt,
		ApprovedBy:           q.ApprovedBy,
		RejectedAt:           q.RejectedAt,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

// ApprovedQuotationResponse is the minimal projection used when picking
// a quotation to provision a supplier from
type ApprovedQuotationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
}

// CreateSupplierRequest is the payload to provision a supplier
type CreateSupplierRequest struct {
	QuotationID  uuid.UUID `json:"quotation_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required"`
	ProductName  string    `json:"product_name" binding:"required"`
	ProductImage string    `json:"product_image" binding:"required"`
	ProductCode  string    `json:"product_code" binding:"required"`
}

// UpdateSupplierRequest carries a partial supplier update.
// Nil fields are left untouched.
type UpdateSupplierRequest struct {
	Quantity     *int    `json:"quantity"`
	ProductName  *string `json:"product_name"`
	ProductImage *string `json:"product_image"`
	ProductCode  *string `json:"product_code"`
	Status       *string `json:"status"`
}

// SupplierQuotationInfo is the quotation expansion embedded in supplier
// responses. Address and phone are only present on single-supplier reads.
type SupplierQuotationInfo struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CompanyName     string    `json:"company_name"`
	BusinessAddress string    `json:"business_address,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
}

// SupplierResponse is the supplier representation
type SupplierResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Quantity     int                    `json:"quantity"`
	ProductName  string                 `json:"product_name"`
	ProductImage string                 `json:"product_image"`
	ProductCode  string                 `json:"product_code"`
	Status       string                 `json:"status"`
	CreatedBy    uuid.UUID              `json:"created_by"`
	QuotationID  uuid.UUID              `json:"quotation_id"`
	Quotation    *SupplierQuotationInfo `json:"quotation,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func toSupplierResponse(s *sourcing.Supplier, detailed bool) *SupplierResponse {
	resp := &SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Quantity:     s.Quantity,
		ProductName:  s.ProductName,
		ProductImage: s.ProductImage,
		ProductCode:  s.ProductCode,
		Status:       string(s.Status),
		CreatedBy:    s.CreatedBy,
		QuotationID:  s.QuotationID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.Quotation != nil {
		info := &SupplierQuotationInfo{
			ID:          s.Quotation.ID,
			Name:        s.Quotation.Name,
			Email:       s.Quotation.Email,
			CompanyName: s.Quotation.CompanyName,
		}
		if detailed {
			info.BusinessAddress = s.Quotation.BusinessAddress
			info.PhoneNumber = s.Quotation.PhoneNumber
		}
		resp.Quotation = info
	}
	return resp
}
