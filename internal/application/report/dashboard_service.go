package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/trade"
)

// monthsOfHistory is how far back the orders-per-month series reaches.
const monthsOfHistory = 6

// DashboardSummary aggregates the store-wide figures shown on the
// admin dashboard.
type DashboardSummary struct {
	UserCount          int64               `json:"user_count"`
	ProductCount       int64               `json:"product_count"`
	OrderCount         int64               `json:"order_count"`
	TotalRevenue       decimal.Decimal     `json:"total_revenue"`
	ProductsByCategory []CategoryBreakdown `json:"products_by_category"`
	OrdersByMonth      []MonthlyOrders     `json:"orders_by_month"`
}

// CategoryBreakdown is the product count of one category
type CategoryBreakdown struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// MonthlyOrders is the order count of one month
type MonthlyOrders struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// DashboardService assembles reporting figures across contexts
type DashboardService struct {
	userRepo    identity.UserRepository
	productRepo catalog.ProductRepository
	orderRepo   trade.OrderRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(userRepo identity.UserRepository, productRepo catalog.ProductRepository, orderRepo trade.OrderRepository) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Summary returns the dashboard figures. The monthly series covers the
// trailing six calendar months including the current one, with months
// that saw no orders filled in as zero.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	orderCount, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make([]CategoryBreakdown, 0, len(categories))
	for _, c := range categories {
		byCategory = append(byCategory, CategoryBreakdown{Category: c.Category, Count: c.Count})
	}

	since := startOfMonth(time.Now().UTC()).AddDate(0, -(monthsOfHistory - 1), 0)
	monthly, err := s.orderRepo.CountByMonth(ctx, since)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		UserCount:          userCount,
		ProductCount:       productCount,
		OrderCount:         orderCount,
		TotalRevenue:       revenue,
		ProductsByCategory: byCategory,
		OrdersByMonth:      fillMonths(since, monthly),
	}, nil
}

// fillMonths expands sparse per-month counts into a dense series so the
// dashboard chart always shows every month.
func fillMonths(since time.Time, counts []trade.MonthlyCount) []MonthlyOrders {
	byMonth := make(map[string]int64, len(counts))
	for _, c := range counts {
		byMonth[c.Month.UTC().Format("2006-01")] = c.Count
	}

	series := make([]MonthlyOrders, 0, monthsOfHistory)
	for i := 0; i < monthsOfHistory; i++ {
		month := since.AddDate(0, i, 0).Format("2006-01")
		series = append(series, MonthlyOrders{Month: month, Count: byMonth[month]})
	}
	return series
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
