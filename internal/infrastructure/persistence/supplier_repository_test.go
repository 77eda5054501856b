package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/sourcing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testSupplier(t *testing.T) *sourcing.Supplier {
	t.Helper()
	quotation, err := sourcing.NewQuotation(
		"Jane Vendor", "jane@vendor.com", "555", "12 Market Street",
		"Vendor Textiles Ltd", "10 years", "ISO 9001", "Cotton t-shirts",
	)
	require.NoError(t, err)
	require.NoError(t, quotation.Approve(uuid.New(), ""))

	supplier, err := sourcing.NewSupplier(quotation, 100, "Cotton T-Shirt", "img", "TSHIRT-001", uuid.New())
	require.NoError(t, err)
	return supplier
}

func TestGormSupplierRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts supplier when quotation is approved", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormSupplierRepository(db)
		supplier := testSupplier(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quotations" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(supplier.QuotationID, 1).
			WillReturnRows(quotationRow(supplier.QuotationID, sourcing.QuotationStatusApproved))
		mock.ExpectExec(`INSERT INTO "suppliers"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, supplier)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when quotation is no longer approved", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormSupplierRepository(db)
		supplier := testSupplier(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quotations" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(supplier.QuotationID, 1).
			WillReturnRows(quotationRow(supplier.QuotationID, sourcing.QuotationStatusRejected))
		mock.ExpectRollback()

		err := repo.Create(ctx, supplier)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps duplicate product code to conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormSupplierRepository(db)
		supplier := testSupplier(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quotations" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(supplier.QuotationID, 1).
			WillReturnRows(quotationRow(supplier.QuotationID, sourcing.QuotationStatusApproved))
		mock.ExpectExec(`INSERT INTO "suppliers"`).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()

		err := repo.Create(ctx, supplier)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		assert.Equal(t, "Product code already exists", domainErr.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when quotation is missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormSupplierRepository(db)
		supplier := testSupplier(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "quotations" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(supplier.QuotationID, 1).
			WillReturnRows(sqlmock.NewRows(quotationColumns()))
		mock.ExpectRollback()

		err := repo.Create(ctx, supplier)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepositoryExistsByProductCode(t *testing.T) {
	ctx := context.Background()

	t.Run("reports existing code", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormSupplierRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE product_code = \$1`).
			WithArgs("TSHIRT-001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByProductCode(ctx, "TSHIRT-001")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excludes the supplier itself on update checks", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGormSupplierRepository(db)
		id := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE product_code = \$1 AND id <> \$2`).
			WithArgs("TSHIRT-001", id).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByProductCodeExcluding(ctx, "TSHIRT-001", id)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
