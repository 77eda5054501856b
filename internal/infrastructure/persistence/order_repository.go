package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts the order and decrements the stock of every ordered
// product in one transaction. The guarded UPDATE keeps inventory from
// going negative under concurrent checkouts.
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			result := tx.Model(&catalog.Product{}).
				Where("id = ? AND inventory >= ?", item.ProductID, item.Quantity).
				UpdateColumn("inventory", gorm.Expr("inventory - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.ErrInsufficientStock
			}
		}

		return tx.Create(order).Error
	})
}

// Save persists changes to an existing order
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

// FindByID finds an order by ID with its items loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByUser returns the user's orders newest-first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll returns all orders newest-first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalRevenue sums the totals of all non-cancelled orders
func (r *GormOrderRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	if err := r.db.WithContext(ctx).Model(&trade.Order{}).
		Select("sum(total)").
		Where("status <> ?", trade.OrderStatusCancelled).
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, err
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}

// CountByMonth returns per-month order counts since the given time
func (r *GormOrderRepository) CountByMonth(ctx context.Context, since time.Time) ([]trade.MonthlyCount, error) {
	var counts []trade.MonthlyCount
	if err := r.db.WithContext(ctx).Model(&trade.Order{}).
		Select("date_trunc('month', created_at) as month, count(*) as count").
		Where("created_at >= ?", since).
		Group("month").
		Order("month").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
