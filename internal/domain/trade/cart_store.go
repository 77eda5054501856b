package trade

import (
	"context"

	"github.com/google/uuid"
)

// CartStore defines the shared storage interface for carts. Carts are
// keyed by user so a session survives process restarts and multiple
// server instances.
type CartStore interface {
	// Get returns the user's cart, or an empty cart if none is stored.
	Get(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, userID uuid.UUID, cart *Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
