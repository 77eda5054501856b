package sourcing

import (
	"context"

	"github.com/google/uuid"
)

// QuotationRepository defines the persistence interface for quotations
type QuotationRepository interface {
	Save(ctx context.Context, quotation *Quotation) error
	FindByID(ctx context.Context, id uuid.UUID) (*Quotation, error)
	// FindAll returns quotations newest-first. Rejected quotations are
	// excluded unless includeRejected is set.
	FindAll(ctx context.Context, includeRejected bool) ([]Quotation, error)
	// FindApproved returns approved quotations ordered by approval time,
	// most recently approved first.
	FindApproved(ctx context.Context) ([]Quotation, error)
}
