package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// OrderService handles checkout and order management
type OrderService struct {
	orderRepo   trade.OrderRepository
	productRepo catalog.ProductRepository
	cartStore   trade.CartStore
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, productRepo catalog.ProductRepository, cartStore trade.CartStore) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartStore:   cartStore,
	}
}

// Create places an order for the given user. Each line captures the
// current catalog name and price; the repository decrements inventory
// transactionally. The user's cart is cleared on success.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	items := make([]trade.OrderItem, 0, len(req.Items))
	for _, input := range req.Items {
		product, err := s.productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.InStock(input.Quantity) {
			return nil, shared.ErrInsufficientStock
		}
		items = append(items, trade.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    input.Quantity,
		})
	}

	order, err := trade.NewOrder(userID, req.ShippingAddress, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// A stale cart is not worth failing a placed order over.
	if err := s.cartStore.Delete(ctx, userID); err != nil {
		logger.L(ctx).Warn("failed to clear cart after checkout",
			zap.String("user_id", userID.String()), zap.Error(err))
	}

	return toOrderResponse(order), nil
}

// MyOrders returns the caller's orders newest-first
func (s *OrderService) MyOrders(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// Get returns a single order. Customers can only read their own orders;
// administrators can read any.
func (s *OrderService) Get(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, shared.ErrForbidden
	}

	return toOrderResponse(order), nil
}

// ListAll returns every order newest-first, for administrators
func (s *OrderService) ListAll(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// UpdateStatus transitions an order's fulfillment state
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateStatus(trade.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return toOrderResponse(order), nil
}

func toOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *toOrderResponse(&orders[i]))
	}
	return responses
}
