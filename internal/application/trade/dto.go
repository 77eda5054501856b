package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/trade"
)

// AddCartItemRequest represents adding a product to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest represents changing the quantity of a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// SyncCartRequest replaces the stored cart with the client's local one,
// used to merge a guest cart after login.
type SyncCartRequest struct {
	Items []SyncCartItem `json:"items" binding:"required"`
}

// SyncCartItem is one line of a cart sync request. Only the product ID
// and quantity are trusted; name, price, and image are re-read from the
// catalog.
type SyncCartItem struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	Items     []trade.CartItem `json:"items"`
	Total     decimal.Decimal  `json:"total"`
	ItemCount int              `json:"item_count"`
}

func toCartResponse(cart *trade.Cart) *CartResponse {
	return &CartResponse{
		Items:     cart.Items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

// CreateOrderRequest represents a checkout request. Prices come from
// the catalog, never from the client.
type CreateOrderRequest struct {
	ShippingAddress string           `json:"shipping_address" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1"`
}

// OrderItemInput is one requested line of a new order
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderStatusRequest represents a fulfillment state change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func toOrderResponse(order *trade.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID:   order.Items[i].ProductID,
			ProductName: order.Items[i].ProductName,
			Price:       order.Items[i].Price,
			Quantity:    order.Items[i].Quantity,
			Subtotal:    order.Items[i].Subtotal(),
		})
	}

	return &OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		Total:           order.Total,
		Status:          string(order.Status),
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
