package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/shopspring/decimal"
)

const TopicCheckoutCompleted = `cart.checkout-completed`

// CheckoutCompleted is the event value written to TopicCheckoutCompleted, keyed by owner id.
type CheckoutCompleted struct {
	OrderID   uuid.UUID       `json:"order_id"`
	OwnerID   string          `json:"owner_id"`
	Items     []OrderLine     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderLine struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func NewCheckoutCompleted(order domain.Order) CheckoutCompleted {
	lines := make([]OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, OrderLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price.Amount,
			Quantity: item.Quantity,
		})
	}

	return CheckoutCompleted{
		OrderID:   order.ID,
		OwnerID:   order.OwnerID,
		Items:     lines,
		Subtotal:  order.Summary.Subtotal.Amount,
		Shipping:  order.Summary.Shipping.Amount,
		Total:     order.Summary.Total.Amount,
		Currency:  order.Summary.Total.Currency.String(),
		CreatedAt: order.CreatedAt.UTC(),
	}
}
