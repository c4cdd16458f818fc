package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/port"
)

type CartService struct {
	repo      port.CartRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewCart(repo port.CartRepository, publisher port.EventPublisher, logger *slog.Logger) (*CartService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if publisher == nil {
		return nil, fmt.Errorf("publisher is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CartService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (s *CartService) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	return cart, nil
}

// AddItem puts item into the cart; items priced in a currency other than the cart's are rejected.
func (s *CartService) AddItem(ctx context.Context, ownerID string, item domain.CartItem) error {
	cart, err := s.repo.GetCart(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("repo.GetCart: %w", err)
	}

	if len(cart.Items) > 0 {
		if unit := domain.CartCurrency(cart.Items); unit != item.Price.Currency {
			return fmt.Errorf("%w: cart is in %s, item is in %s", domain.ErrCurrencyMismatch, unit, item.Price.Currency)
		}
	}

	if err := s.repo.AddItem(ctx, ownerID, item); err != nil {
		return fmt.Errorf("repo.AddItem: %w", err)
	}

	return nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, action domain.QuantityAction) (domain.CartItem, error) {
	item, err := s.repo.UpdateQuantity(ctx, ownerID, itemID, action)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("repo.UpdateQuantity: %w", err)
	}

	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, ownerID string, itemID uuid.UUID) error {
	deleted, err := s.repo.DeleteItem(ctx, ownerID, itemID)
	if err != nil {
		return fmt.Errorf("repo.DeleteItem: %w", err)
	}

	if !deleted {
		return domain.ErrItemNotFound
	}

	return nil
}

// Checkout turns the cart into an order. The checkout event is published after
// the order is stored; a publish failure is logged and does not fail the checkout.
func (s *CartService) Checkout(ctx context.Context, ownerID string) (domain.Order, error) {
	order, err := s.repo.Checkout(ctx, ownerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.Checkout: %w", err)
	}

	if err := s.publisher.PublishCheckout(ctx, order); err != nil {
		s.logger.Error("publish checkout event",
			slog.String("order_id", order.ID.String()),
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
	}

	return order, nil
}
