package sourcing

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/sourcing"
	"github.com/stretchr/testify/mock"
)

// MockQuotationRepository is a mock implementation of sourcing.QuotationRepository
type MockQuotationRepository struct {
	mock.Mock
}

var _ sourcing.QuotationRepository = (*MockQuotationRepository)(nil)

func (m *MockQuotationRepository) Save(ctx context.Context, quotation *sourcing.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*sourcing.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sourcing.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindAll(ctx context.Context, includeRejected bool) ([]sourcing.Quotation, error) {
	args := m.Called(ctx, includeRejected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sourcing.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindApproved(ctx context.Context) ([]sourcing.Quotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sourcing.Quotation), args.Error(1)
}

// MockSupplierRepository is a mock implementation of sourcing.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

var _ sourcing.SupplierRepository = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *sourcing.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *sourcing.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*sourcing.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sourcing.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context) ([]sourcing.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sourcing.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) ExistsByProductCode(ctx context.Context, productCode string) (bool, error) {
	args := m.Called(ctx, productCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByProductCodeExcluding(ctx context.Context, productCode string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productCode, excludeID)
	return args.Bool(0), args.Error(1)
}
