package sourcing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuotation(t *testing.T) *Quotation {
	t.Helper()
	q, err := NewQuotation(
		"Jane Vendor",
		"jane@vendor.com",
		"+1-555-0100",
		"12 Market Street",
		"Vendor Textiles Ltd",
		"10 years in garment manufacturing",
		"ISO 9001 certified",
		"Cotton t-shirts, 500 units per month",
	)
	require.NoError(t, err)
	return q
}

func TestNewQuotation(t *testing.T) {
	t.Run("creates pending quotation", func(t *testing.T) {
		q := validQuotation(t)

		assert.Equal(t, QuotationStatusPending, q.Status)
		assert.NotEqual(t, uuid.Nil, q.ID)
		assert.Nil(t, q.ApprovedAt)
		assert.Nil(t, q.ApprovedBy)
		assert.Nil(t, q.RejectedAt)
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		q, err := NewQuotation("Jane", "Jane@Vendor.COM", "555", "addr", "co", "exp", "qual", "details")
		require.NoError(t, err)
		assert.Equal(t, "jane@vendor.com", q.Email)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		cases := []struct {
			name   string
			fields [8]string
		}{
			{"empty name", [8]string{"", "a@b.co", "555", "addr", "co", "exp", "qual", "details"}},
			{"empty email", [8]string{"Jane", "", "555", "addr", "co", "exp", "qual", "details"}},
			{"empty phone", [8]string{"Jane", "a@b.co", "", "addr", "co", "exp", "qual", "details"}},
			{"empty address", [8]string{"Jane", "a@b.co", "555", "", "co", "exp", "qual", "details"}},
			{"empty company", [8]string{"Jane", "a@b.co", "555", "addr", "", "exp", "qual", "details"}},
			{"empty experience", [8]string{"Jane", "a@b.co", "555", "addr", "co", "", "qual", "details"}},
			{"empty qualification", [8]string{"Jane", "a@b.co", "555", "addr", "co", "exp", "", "details"}},
			{"empty product details", [8]string{"Jane", "a@b.co", "555", "addr", "co", "exp", "qual", ""}},
			{"whitespace only", [8]string{"  ", "a@b.co", "555", "addr", "co", "exp", "qual", "details"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := tc.fields
				_, err := NewQuotation(f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7])
				require.Error(t, err)

				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "INVALID_INPUT", domainErr.Code)
			})
		}
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		for _, email := range []string{"plain", "no@tld", "spaces in@mail.com", "@missing.local", "a@.com"} {
			_, err := NewQuotation("Jane", email, "555", "addr", "co", "exp", "qual", "details")
			assert.Error(t, err, "email %q should be rejected", email)
		}
	})

	t.Run("accepts valid emails", func(t *testing.T) {
		for _, email := range []string{"a@b.co", "first.last@sub.domain.org", "x+tag@mail.io"} {
			_, err := NewQuotation("Jane", email, "555", "addr", "co", "exp", "qual", "details")
			assert.NoError(t, err, "email %q should be accepted", email)
		}
	})
}

func TestQuotationApprove(t *testing.T) {
	admin := uuid.New()

	t.Run("approves pending quotation", func(t *testing.T) {
		q := validQuotation(t)

		err := q.Approve(admin, "looks good")
		require.NoError(t, err)

		assert.Equal(t, QuotationStatusApproved, q.Status)
		require.NotNil(t, q.ApprovedAt)
		require.NotNil(t, q.ApprovedBy)
		assert.Equal(t, admin, *q.ApprovedBy)
		assert.Equal(t, "looks good", q.AdminNotes)
		assert.True(t, q.IsApproved())
	})

	t.Run("fails on already approved quotation", func(t *testing.T) {
		q := validQuotation(t)
		require.NoError(t, q.Approve(admin, ""))

		err := q.Approve(admin, "")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("fails on rejected quotation", func(t *testing.T) {
		q := validQuotation(t)
		require.NoError(t, q.Reject(""))

		err := q.Approve(admin, "")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assert.Equal(t, QuotationStatusRejected, q.Status)
	})
}

func TestQuotationReject(t *testing.T) {
	t.Run("rejects pending quotation", func(t *testing.T) {
		q := validQuotation(t)

		err := q.Reject("insufficient qualification")
		require.NoError(t, err)

		assert.Equal(t, QuotationStatusRejected, q.Status)
		require.NotNil(t, q.RejectedAt)
		assert.Equal(t, "insufficient qualification", q.AdminNotes)
	})

	t.Run("fails on approved quotation", func(t *testing.T) {
		q := validQuotation(t)
		require.NoError(t, q.Approve(uuid.New(), ""))

		err := q.Reject("")
		require.Error(t, err)
		assert.Equal(t, QuotationStatusApproved, q.Status)
	})

	t.Run("fails on already rejected quotation", func(t *testing.T) {
		q := validQuotation(t)
		require.NoError(t, q.Reject(""))

		err := q.Reject("")
		require.Error(t, err)
	})
}

func TestQuotationSetters(t *testing.T) {
	t.Run("updates fields with validation", func(t *testing.T) {
		q := validQuotation(t)

		require.NoError(t, q.SetName("New Name"))
		require.NoError(t, q.SetEmail("NEW@Mail.COM"))
		require.NoError(t, q.SetCompanyName("New Co"))

		assert.Equal(t, "New Name", q.Name)
		assert.Equal(t, "new@mail.com", q.Email)
		assert.Equal(t, "New Co", q.CompanyName)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		q := validQuotation(t)

		assert.Error(t, q.SetName("   "))
		assert.Error(t, q.SetEmail("not-an-email"))
		assert.Error(t, q.SetPhoneNumber(""))
		assert.Error(t, q.SetBusinessAddress(""))
		assert.Error(t, q.SetCompanyName(""))
		assert.Error(t, q.SetIndustrialExperience(""))
		assert.Error(t, q.SetQualification(""))
		assert.Error(t, q.SetProductDetails(""))
	})
}
