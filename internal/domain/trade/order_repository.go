package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyCount holds the number of orders placed in one month
type MonthlyCount struct {
	Month time.Time
	Count int64
}

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	// Create persists a new order. Implementations must decrement the
	// inventory of every ordered product in the same transaction and
	// fail with shared.ErrInsufficientStock when stock runs out.
	Create(ctx context.Context, order *Order) error
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByUser returns the user's orders newest-first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	// FindAll returns all orders newest-first.
	FindAll(ctx context.Context) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	// TotalRevenue sums the totals of all non-cancelled orders.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	// CountByMonth returns per-month order counts since the given time.
	CountByMonth(ctx context.Context, since time.Time) ([]MonthlyCount, error)
}
