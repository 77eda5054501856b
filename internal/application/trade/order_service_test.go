package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T, userID uuid.UUID) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(userID, "12 Market Street", []trade.OrderItem{
		{ProductID: uuid.New(), ProductName: "Cotton T-Shirt", Price: decimal.NewFromFloat(19.99), Quantity: 2},
	})
	require.NoError(t, err)
	return order
}

func TestOrderServiceCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("captures catalog prices and clears the cart", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		store := cache.NewMemoryCartStore()
		service := NewOrderService(orderRepo, productRepo, store)

		product := testProduct(t, "Cotton T-Shirt", 19.99, 50)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("Create", ctx, mock.AnythingOfType("*trade.Order")).Return(nil)

		cart := trade.NewCart()
		require.NoError(t, cart.AddItem(trade.CartItem{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 2}))
		require.NoError(t, store.Save(ctx, userID, cart))

		resp, err := service.Create(ctx, userID, CreateOrderRequest{
			ShippingAddress: "12 Market Street",
			Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		})
		require.NoError(t, err)

		assert.Equal(t, "pending", resp.Status)
		require.Len(t, resp.Items, 1)
		assert.True(t, resp.Items[0].Price.Equal(decimal.NewFromFloat(19.99)))
		assert.True(t, resp.Total.Equal(decimal.NewFromFloat(39.98)))

		stored, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.True(t, stored.IsEmpty(), "cart is cleared after checkout")
	})

	t.Run("insufficient stock blocks checkout", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo, cache.NewMemoryCartStore())

		product := testProduct(t, "Cotton T-Shirt", 19.99, 1)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := service.Create(ctx, userID, CreateOrderRequest{
			ShippingAddress: "12 Market Street",
			Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 5}},
		})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage-level stock failure surfaces to the caller", func(t *testing.T) {
		// The in-memory check can race with concurrent checkouts; the
		// repository's transactional decrement is authoritative.
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo, cache.NewMemoryCartStore())

		product := testProduct(t, "Cotton T-Shirt", 19.99, 50)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		orderRepo.On("Create", ctx, mock.AnythingOfType("*trade.Order")).Return(shared.ErrInsufficientStock)

		_, err := service.Create(ctx, userID, CreateOrderRequest{
			ShippingAddress: "12 Market Street",
			Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		service := NewOrderService(orderRepo, productRepo, cache.NewMemoryCartStore())
		id := uuid.New()

		productRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, userID, CreateOrderRequest{
			ShippingAddress: "12 Market Street",
			Items:           []OrderItemInput{{ProductID: id, Quantity: 1}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderServiceGet(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner can read their own order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
		order := placedOrder(t, owner)

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		resp, err := service.Get(ctx, order.ID, owner, false)
		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.ID)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
		order := placedOrder(t, owner)

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.Get(ctx, order.ID, uuid.New(), false)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("administrators can read any order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
		order := placedOrder(t, owner)

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		resp, err := service.Get(ctx, order.ID, uuid.New(), true)
		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.ID)
	})
}

func TestOrderServiceMyOrders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	orderRepo := new(MockOrderRepository)
	service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
	order := placedOrder(t, userID)

	orderRepo.On("FindByUser", ctx, userID).Return([]trade.Order{*order}, nil)

	resp, err := service.MyOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, userID, resp[0].UserID)
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the order along the fulfillment flow", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
		order := placedOrder(t, uuid.New())

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		resp, err := service.UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "processing"})
		require.NoError(t, err)
		assert.Equal(t, "processing", resp.Status)
	})

	t.Run("finalized orders cannot change", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
		order := placedOrder(t, uuid.New())
		require.NoError(t, order.UpdateStatus(trade.OrderStatusDelivered))

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "cancelled"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockProductRepository), cache.NewMemoryCartStore())
		order := placedOrder(t, uuid.New())

		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "teleported"})
		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
