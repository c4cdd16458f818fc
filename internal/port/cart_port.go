package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, action domain.QuantityAction) (domain.CartItem, error)
	DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error)
	Checkout(ctx context.Context, ownerID string) (domain.Order, error)
}

// CartBackend is the remote cart API as seen by the front-end.
type CartBackend interface {
	FetchCart(ctx context.Context) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, action domain.QuantityAction) error
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	Checkout(ctx context.Context) error
}

type EventPublisher interface {
	PublishCheckout(ctx context.Context, order domain.Order) error
}

type Navigator interface {
	Navigate(route string)
}
