package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem represents a single line of an order with the price
// captured at purchase time.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal returns price multiplied by quantity
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a placed order in the trade context
type Order struct {
	shared.BaseEntity
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	ShippingAddress string          `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order from captured line items.
// The total is computed from the items, never taken from the client.
func NewOrder(userID uuid.UUID, shippingAddress string, items []OrderItem) (*Order, error) {
	shippingAddress = strings.TrimSpace(shippingAddress)
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must contain at least one item")
	}

	order := &Order{
		BaseEntity:      shared.NewBaseEntity(),
		UserID:          userID,
		Status:          OrderStatusPending,
		ShippingAddress: shippingAddress,
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
		}
		items[i].BaseEntity = shared.NewBaseEntity()
		items[i].OrderID = order.ID
		total = total.Add(items[i].Subtotal())
	}

	order.Items = items
	order.Total = total

	return order, nil
}

// UpdateStatus transitions the order to a new fulfillment state.
// Delivered and cancelled orders are terminal.
func (o *Order) UpdateStatus(status OrderStatus) error {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid order status")
	}

	if o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Order is already finalized")
	}

	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

// IsFinalized returns true when the order reached a terminal state
func (o *Order) IsFinalized() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}
