// Package cartview holds the client-side state of the shopping cart page.
//
// The view never mutates its items speculatively: every change is applied
// only after the backend has acknowledged it, so a failed request leaves the
// view exactly as it was. Failures are logged and returned.
package cartview

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/port"
)

// CheckoutRoute is where the view navigates after a successful checkout.
const CheckoutRoute = "/checkout"

type View struct {
	backend   port.CartBackend
	navigator port.Navigator
	logger    *slog.Logger

	mu    sync.Mutex
	items []domain.CartItem
}

func New(backend port.CartBackend, navigator port.Navigator, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}

	return &View{
		backend:   backend,
		navigator: navigator,
		logger:    logger,
	}
}

// Load replaces the items with the backend's cart.
func (v *View) Load(ctx context.Context) error {
	items, err := v.backend.FetchCart(ctx)
	if err != nil {
		v.logger.Error("failed to fetch cart items", slog.Any("error", err))
		return err
	}

	v.mu.Lock()
	v.items = items
	v.mu.Unlock()

	return nil
}

func (v *View) AdjustQuantity(ctx context.Context, id uuid.UUID, action domain.QuantityAction) error {
	if err := v.backend.UpdateQuantity(ctx, id, action); err != nil {
		v.logger.Error("failed to update quantity",
			slog.String("item_id", id.String()),
			slog.String("action", string(action)),
			slog.Any("error", err))
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.items {
		if v.items[i].ID == id {
			v.items[i].Quantity = action.Apply(v.items[i].Quantity)
		}
	}

	return nil
}

func (v *View) Remove(ctx context.Context, id uuid.UUID) error {
	if err := v.backend.RemoveItem(ctx, id); err != nil {
		v.logger.Error("failed to remove item from cart",
			slog.String("item_id", id.String()),
			slog.Any("error", err))
		return err
	}

	v.mu.Lock()
	v.items = slices.DeleteFunc(v.items, func(item domain.CartItem) bool {
		return item.ID == id
	})
	v.mu.Unlock()

	return nil
}

// Checkout clears the items and navigates to CheckoutRoute once the backend accepts the order.
func (v *View) Checkout(ctx context.Context) error {
	if err := v.backend.Checkout(ctx); err != nil {
		v.logger.Error("failed to complete checkout", slog.Any("error", err))
		return err
	}

	v.mu.Lock()
	v.items = nil
	v.mu.Unlock()

	if v.navigator != nil {
		v.navigator.Navigate(CheckoutRoute)
	}

	return nil
}

// Items returns a copy of the current line items in backend order.
func (v *View) Items() []domain.CartItem {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.items)
}

func (v *View) Summary() (domain.Summary, error) {
	items := v.Items()

	return domain.Summarize(items, domain.CartCurrency(items))
}
