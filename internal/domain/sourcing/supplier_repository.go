package sourcing

import (
	"context"

	"github.com/google/uuid"
)

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	// Create persists a new supplier. Implementations must run the insert
	// in a transaction that re-verifies the source quotation is still
	// approved and must translate a duplicate product code into
	// shared.ErrAlreadyExists.
	Create(ctx context.Context, supplier *Supplier) error
	Save(ctx context.Context, supplier *Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	// FindAll returns suppliers newest-first with their quotation loaded.
	FindAll(ctx context.Context) ([]Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByProductCode(ctx context.Context, productCode string) (bool, error)
	// ExistsByProductCodeExcluding reports whether another supplier than
	// the given one already uses the product code.
	ExistsByProductCodeExcluding(ctx context.Context, productCode string, excludeID uuid.UUID) (bool, error)
}
