package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/shopspring/decimal"
)

type itemDTO struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity"`
}

type addItemRequest struct {
	ID       uuid.UUID       `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity"`
}

type updateQuantityRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Action string    `json:"action" binding:"required"`
}

type orderDTO struct {
	ID        uuid.UUID       `json:"id"`
	Items     []itemDTO       `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
}

func toItemDTO(item domain.CartItem) itemDTO {
	return itemDTO{
		ID:       item.ID,
		Name:     item.Name,
		Image:    item.ImageURL,
		Price:    item.Price.Amount,
		Currency: item.Price.Currency.String(),
		Quantity: item.Quantity,
	}
}

func toItemDTOs(items []domain.CartItem) []itemDTO {
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDTO(item))
	}

	return dtos
}

func toOrderDTO(order domain.Order) orderDTO {
	return orderDTO{
		ID:        order.ID,
		Items:     toItemDTOs(order.Items),
		Subtotal:  order.Summary.Subtotal.Amount,
		Shipping:  order.Summary.Shipping.Amount,
		Total:     order.Summary.Total.Amount,
		Currency:  order.Summary.Total.Currency.String(),
		CreatedAt: order.CreatedAt,
	}
}
