package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartItem represents a product placed in a cart
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the pending purchases of one user. It is a value object
// persisted in a shared store keyed by user, not a database entity.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddItem adds a product to the cart, merging quantities if it is
// already present.
func (c *Cart) AddItem(item CartItem) error {
	if item.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// UpdateQuantity replaces the quantity of a cart line
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveItem removes a product from the cart
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty returns true when the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total returns the sum of all line subtotals
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount returns the total number of units in the cart
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
