package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartview/internal/db"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/port"
	"golang.org/x/text/currency"
)

var errEmptyOwnerID = errors.New("ownerID is empty")

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, errEmptyOwnerID
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return errEmptyOwnerID
	}

	// NUMERIC(12, 2) rounds the same way; rounding here keeps both stores in step
	price := item.Price.Rounded()

	err := r.q.AddItem(ctx, db.AddItemParams{
		OwnerID:       ownerID,
		ItemID:        item.ID,
		Name:          item.Name,
		ImageUrl:      item.ImageURL,
		PriceAmount:   price.Amount,
		PriceCurrency: price.Currency.String(),
		Quantity:      int32(domain.ClampQuantity(item.Quantity)),
	})
	if err != nil {
		return fmt.Errorf("q.AddItem: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, action domain.QuantityAction) (domain.CartItem, error) {
	if ownerID == "" {
		return domain.CartItem{}, errEmptyOwnerID
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.CartItem, error) {
		row, err := q.GetItemForUpdate(ctx, db.GetItemForUpdateParams{
			OwnerID: ownerID,
			ItemID:  itemID,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CartItem{}, domain.ErrItemNotFound
		}
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("q.GetItemForUpdate: %w", err)
		}

		item, err := mapCartRowToDomain(db.GetCartRow(row))
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("mapCartRowToDomain: %w", err)
		}

		item.Quantity = action.Apply(item.Quantity)

		if _, err := q.SetQuantity(ctx, db.SetQuantityParams{
			OwnerID:  ownerID,
			ItemID:   itemID,
			Quantity: int32(item.Quantity),
		}); err != nil {
			return domain.CartItem{}, fmt.Errorf("q.SetQuantity: %w", err)
		}

		return item, nil
	})
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, errEmptyOwnerID
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID: ownerID,
		ItemID:  itemID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) Checkout(ctx context.Context, ownerID string) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, errEmptyOwnerID
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		rows, err := q.GetCartForUpdate(ctx, ownerID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetCartForUpdate: %w", err)
		}

		cartRows := make([]db.GetCartRow, 0, len(rows))
		for _, row := range rows {
			cartRows = append(cartRows, db.GetCartRow(row))
		}

		items, err := mapCartRowsToDomain(cartRows)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapCartRowsToDomain: %w", err)
		}

		if len(items) == 0 {
			return domain.Order{}, domain.ErrEmptyCart
		}

		unit := domain.CartCurrency(items)

		summary, err := domain.Summarize(items, unit)
		if err != nil {
			return domain.Order{}, fmt.Errorf("domain.Summarize: %w", err)
		}

		order := domain.Order{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Items:   items,
			Summary: summary,
		}

		order.CreatedAt, err = q.InsertOrder(ctx, db.InsertOrderParams{
			OrderID:        order.ID,
			OwnerID:        ownerID,
			SubtotalAmount: summary.Subtotal.Amount,
			ShippingAmount: summary.Shipping.Amount,
			TotalAmount:    summary.Total.Amount,
			Currency:       unit.String(),
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for _, item := range items {
			err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
				OrderID:       order.ID,
				ItemID:        item.ID,
				Name:          item.Name,
				ImageUrl:      item.ImageURL,
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
				Quantity:      int32(item.Quantity),
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.InsertOrderItem[%s]: %w", item.ID, err)
			}
		}

		if _, err := q.DeleteCart(ctx, ownerID); err != nil {
			return domain.Order{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		return order, nil
	})
}

func mapCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ID:        row.ItemID,
		Name:      row.Name,
		ImageURL:  row.ImageUrl,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Quantity:  int(row.Quantity),
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
