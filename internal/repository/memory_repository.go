package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/port"
)

// memoryRepository keeps carts in process memory; used when no database is configured.
type memoryRepository struct {
	mu    sync.Mutex
	carts map[string][]domain.CartItem
	now   func() time.Time
}

func NewMemory() port.CartRepository {
	return &memoryRepository{
		carts: make(map[string][]domain.CartItem),
		now:   time.Now,
	}
}

func (r *memoryRepository) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, errEmptyOwnerID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.Cart{
		OwnerID: ownerID,
		Items:   slices.Clone(r.carts[ownerID]),
	}, nil
}

func (r *memoryRepository) AddItem(_ context.Context, ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return errEmptyOwnerID
	}

	item.Quantity = domain.ClampQuantity(item.Quantity)
	item.Price = item.Price.Rounded()

	r.mu.Lock()
	defer r.mu.Unlock()

	cart := domain.Cart{Items: r.carts[ownerID]}
	if i := cart.Find(item.ID); i >= 0 {
		cart.Items[i].Quantity = domain.AddQuantity(cart.Items[i].Quantity, item.Quantity)
		return nil
	}

	item.CreatedAt = r.now()
	r.carts[ownerID] = append(cart.Items, item)

	return nil
}

func (r *memoryRepository) UpdateQuantity(_ context.Context, ownerID string, itemID uuid.UUID, action domain.QuantityAction) (domain.CartItem, error) {
	if ownerID == "" {
		return domain.CartItem{}, errEmptyOwnerID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart := domain.Cart{Items: r.carts[ownerID]}

	i := cart.Find(itemID)
	if i < 0 {
		return domain.CartItem{}, domain.ErrItemNotFound
	}

	cart.Items[i].Quantity = action.Apply(cart.Items[i].Quantity)

	return cart.Items[i], nil
}

func (r *memoryRepository) DeleteItem(_ context.Context, ownerID string, itemID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, errEmptyOwnerID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart := domain.Cart{Items: r.carts[ownerID]}

	i := cart.Find(itemID)
	if i < 0 {
		return false, nil
	}

	r.carts[ownerID] = slices.Delete(cart.Items, i, i+1)

	return true, nil
}

func (r *memoryRepository) Checkout(_ context.Context, ownerID string) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, errEmptyOwnerID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]
	if len(items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	summary, err := domain.Summarize(items, domain.CartCurrency(items))
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Items:     slices.Clone(items),
		Summary:   summary,
		CreatedAt: r.now(),
	}

	delete(r.carts, ownerID)

	return order, nil
}
