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

// CartService handles cart operations backed by the shared cart store
type CartService struct {
	cartStore   trade.CartStore
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartStore trade.CartStore, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

// Get returns the user's cart, empty if nothing is stored
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// AddItem adds a product to the cart. Name, price, and image are read
// from the catalog so the client cannot set its own prices.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(trade.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  req.Quantity,
	}); err != nil {
		return nil, err
	}

	if err := s.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// UpdateItem changes the quantity of a cart line
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.UpdateQuantity(productID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// RemoveItem removes a product from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveItem(productID); err != nil {
		return nil, err
	}

	if err := s.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// Sync replaces the stored cart with the client's local cart, re-reading
// every line from the catalog. Lines for products that no longer exist
// are dropped rather than failing the whole sync.
func (s *CartService) Sync(ctx context.Context, userID uuid.UUID, req SyncCartRequest) (*CartResponse, error) {
	cart := trade.NewCart()

	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if shared.IsNotFound(err) {
				logger.L(ctx).Debug("dropping unknown product from cart sync",
					zap.String("product_id", item.ProductID.String()))
				continue
			}
			return nil, err
		}

		if err := cart.AddItem(trade.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  item.Quantity,
		}); err != nil {
			return nil, err
		}
	}

	if err := s.cartStore.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// Clear empties the user's cart
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartStore.Delete(ctx, userID)
}
