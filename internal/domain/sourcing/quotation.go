package sourcing

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// QuotationStatus represents the review state of a quotation
type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "PENDING"
	QuotationStatusApproved QuotationStatus = "APPROVED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Quotation represents a vendor application awaiting administrator review.
// It is the aggregate root of the sourcing context: suppliers can only be
// provisioned from an approved quotation.
type Quotation struct {
	shared.BaseEntity
	Name                 string          `gorm:"type:varchar(100);not null"`
	Email                string          `gorm:"type:varchar(200);not null;index"`
	PhoneNumber          string          `gorm:"type:varchar(50);not null"`
	BusinessAddress      string          `gorm:"type:text;not null"`
	CompanyName          string          `gorm:"type:varchar(200);not null"`
	IndustrialExperience string          `gorm:"type:text;not null"`
	Qualification        string          `gorm:"type:text;not null"`
	ProductDetails       string          `gorm:"type:text;not null"`
	Status               QuotationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AdminNotes           string          `gorm:"type:text"`
	ApprovedAt           *time.Time      `gorm:"index"`
	ApprovedBy           *uuid.UUID      `gorm:"type:uuid"`
	RejectedAt           *time.Time
}

// TableName returns the table name for GORM
func (Quotation) TableName() string {
	return "quotations"
}

// NewQuotation creates a pending quotation from an applicant submission.
// Every field is required and whitespace-only values are rejected.
func NewQuotation(name, email, phoneNumber, businessAddress, companyName, industrialExperience, qualification, productDetails string) (*Quotation, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phoneNumber = strings.TrimSpace(phoneNumber)
	businessAddress = strings.TrimSpace(businessAddress)
	companyName = strings.TrimSpace(companyName)
	industrialExperience = strings.TrimSpace(industrialExperience)
	qualification = strings.TrimSpace(qualification)
	productDetails = strings.TrimSpace(productDetails)

	if name == "" || email == "" || phoneNumber == "" || businessAddress == "" ||
		companyName == "" || industrialExperience == "" || qualification == "" || productDetails == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "All fields are required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &Quotation{
		BaseEntity:           shared.NewBaseEntity(),
		Name:                 name,
		Email:                email,
		PhoneNumber:          phoneNumber,
		BusinessAddress:      businessAddress,
		CompanyName:          companyName,
		IndustrialExperience: industrialExperience,
		Qualification:        qualification,
		ProductDetails:       productDetails,
		Status:               QuotationStatusPending,
	}, nil
}

// Approve transitions a pending quotation to approved and records the
// reviewing administrator. Only pending quotations can be approved.
func (q *Quotation) Approve(approvedBy uuid.UUID, adminNotes string) error {
	if q.Status != QuotationStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Quotation has already been reviewed")
	}

	now := time.Now()
	q.Status = QuotationStatusApproved
	q.ApprovedAt = &now
	q.ApprovedBy = &approvedBy
	if adminNotes != "" {
		q.AdminNotes = adminNotes
	}
	q.UpdatedAt = now

	return nil
}

// Reject transitions a pending quotation to rejected.
// Only pending quotations can be rejected.
func (q *Quotation) Reject(adminNotes string) error {
	if q.Status != QuotationStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Quotation has already been reviewed")
	}

	now := time.Now()
	q.Status = QuotationStatusRejected
	q.RejectedAt = &now
	if adminNotes != "" {
		q.AdminNotes = adminNotes
	}
	q.UpdatedAt = now

	return nil
}

// IsApproved returns true if the quotation has been approved
func (q *Quotation) IsApproved() bool {
	return q.Status == QuotationStatusApproved
}

// IsPending returns true if the quotation is awaiting review
func (q *Quotation) IsPending() bool {
	return q.Status == QuotationStatusPending
}

// SetName updates the applicant name
func (q *Quotation) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	q.Name = name
	q.UpdatedAt = time.Now()
	return nil
}

// SetEmail updates the applicant email
func (q *Quotation) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return err
	}
	q.Email = email
	q.UpdatedAt = time.Now()
	return nil
}

// SetPhoneNumber updates the applicant phone number
func (q *Quotation) SetPhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot be empty")
	}
	q.PhoneNumber = phoneNumber
	q.UpdatedAt = time.Now()
	return nil
}

// SetBusinessAddress updates the business address
func (q *Quotation) SetBusinessAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Business address cannot be empty")
	}
	q.BusinessAddress = address
	q.UpdatedAt = time.Now()
	return nil
}

// SetCompanyName updates the company name
func (q *Quotation) SetCompanyName(companyName string) error {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return shared.NewDomainError("INVALID_COMPANY", "Company name cannot be empty")
	}
	q.CompanyName = companyName
	q.UpdatedAt = time.Now()
	return nil
}

// SetIndustrialExperience updates the industrial experience description
func (q *Quotation) SetIndustrialExperience(experience string) error {
	experience = strings.TrimSpace(experience)
	if experience == "" {
		return shared.NewDomainError("INVALID_EXPERIENCE", "Industrial experience cannot be empty")
	}
	q.IndustrialExperience = experience
	q.UpdatedAt = time.Now()
	return nil
}

// SetQualification updates the qualification description
func (q *Quotation) SetQualification(qualification string) error {
	qualification = strings.TrimSpace(qualification)
	if qualification == "" {
		return shared.NewDomainError("INVALID_QUALIFICATION", "Qualification cannot be empty")
	}
	q.Qualification = qualification
	q.UpdatedAt = time.Now()
	return nil
}

// SetProductDetails updates the offered product details
func (q *Quotation) SetProductDetails(details string) error {
	details = strings.TrimSpace(details)
	if details == "" {
		return shared.NewDomainError("INVALID_PRODUCT_DETAILS", "Product details cannot be empty")
	}
	q.ProductDetails = details
	q.UpdatedAt = time.Now()
	return nil
}

// SetAdminNotes updates the reviewer notes
func (q *Quotation) SetAdminNotes(notes string) {
	q.AdminNotes = notes
	q.UpdatedAt = time.Now()
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}
