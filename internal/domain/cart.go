package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	ID       uuid.UUID
	Name     string
	ImageURL string
	Price    Money
	Quantity int

	CreatedAt time.Time
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Find returns the index of the item with the given id, or -1.
func (c Cart) Find(id uuid.UUID) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}

	return -1
}
