package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []OrderItem {
	return []OrderItem{
		{ProductID: uuid.New(), ProductName: "Tee", Price: decimal.NewFromFloat(19.99), Quantity: 2},
		{ProductID: uuid.New(), ProductName: "Jeans", Price: decimal.NewFromFloat(49.90), Quantity: 1},
	}
}

func TestNewOrder(t *testing.T) {
	userID := uuid.New()

	t.Run("computes total from items", func(t *testing.T) {
		order, err := NewOrder(userID, "12 Market Street", testItems())
		require.NoError(t, err)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.True(t, order.Total.Equal(decimal.NewFromFloat(89.88)), "got %s", order.Total)
		for _, item := range order.Items {
			assert.Equal(t, order.ID, item.OrderID)
		}
	})

	t.Run("rejects empty address", func(t *testing.T) {
		_, err := NewOrder(userID, "  ", testItems())
		assert.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewOrder(userID, "12 Market Street", nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive item quantity", func(t *testing.T) {
		items := testItems()
		items[0].Quantity = 0
		_, err := NewOrder(userID, "12 Market Street", items)
		assert.Error(t, err)
	})
}

func TestOrderUpdateStatus(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		t.Helper()
		order, err := NewOrder(uuid.New(), "addr", testItems())
		require.NoError(t, err)
		return order
	}

	t.Run("walks through fulfillment states", func(t *testing.T) {
		order := newOrder(t)
		for _, status := range []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered} {
			require.NoError(t, order.UpdateStatus(status))
		}
		assert.True(t, order.IsFinalized())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order := newOrder(t)
		assert.Error(t, order.UpdateStatus("returned"))
	})

	t.Run("finalized orders cannot change", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.UpdateStatus(OrderStatusCancelled))

		assert.Error(t, order.UpdateStatus(OrderStatusProcessing))
	})
}
