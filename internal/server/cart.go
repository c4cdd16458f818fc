package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"golang.org/x/text/currency"
)

func (h *Handler) GetCart(c *gin.Context) {
	ownerID := c.GetString(ctxOwnerID)

	cart, err := h.svc.GetCart(c.Request.Context(), ownerID)
	if err != nil {
		h.fail(c, "get cart", err)
		return
	}

	c.JSON(http.StatusOK, toItemDTOs(cart.Items))
}

func (h *Handler) AddItem(c *gin.Context) {
	ownerID := c.GetString(ctxOwnerID)

	var request addItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, "invalid request body", err)
		return
	}

	unit := domain.DefaultCurrency
	if request.Currency != "" {
		var err error
		if unit, err = currency.ParseISO(request.Currency); err != nil {
			h.badRequest(c, "invalid currency", err)
			return
		}
	}

	price := domain.NewMoney(request.Price, unit)

	if price.Amount.IsNegative() {
		h.badRequest(c, "price must not be negative", nil)
		return
	}

	if !price.HasPriceScale() {
		h.badRequest(c, "price must have at most 2 decimal places", nil)
		return
	}

	if request.Quantity > domain.MaxQuantity {
		h.badRequest(c, fmt.Sprintf("quantity must not exceed %d", domain.MaxQuantity), nil)
		return
	}

	item := domain.CartItem{
		ID:       request.ID,
		Name:     request.Name,
		ImageURL: request.Image,
		Price:    price,
		Quantity: domain.ClampQuantity(request.Quantity),
	}

	if err := h.svc.AddItem(c.Request.Context(), ownerID, item); err != nil {
		h.fail(c, "add item", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "item": toItemDTO(item)})
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	ownerID := c.GetString(ctxOwnerID)

	var request updateQuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.badRequest(c, "invalid request body", err)
		return
	}

	action, err := domain.ParseQuantityAction(request.Action)
	if err != nil {
		h.badRequest(c, "action must be increment or decrement", err)
		return
	}

	item, err := h.svc.UpdateQuantity(c.Request.Context(), ownerID, request.ID, action)
	if err != nil {
		h.fail(c, "update quantity", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "item": toItemDTO(item)})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	ownerID := c.GetString(ctxOwnerID)

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.badRequest(c, "invalid item id", err)
		return
	}

	if err := h.svc.RemoveItem(c.Request.Context(), ownerID, itemID); err != nil {
		h.fail(c, "remove item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *Handler) Checkout(c *gin.Context) {
	ownerID := c.GetString(ctxOwnerID)

	order, err := h.svc.Checkout(c.Request.Context(), ownerID)
	if err != nil {
		h.fail(c, "checkout", err)
		return
	}

	h.logger.Info("checkout completed",
		slog.String(ctxRequestID, c.GetString(ctxRequestID)),
		slog.String(ctxOwnerID, ownerID),
		slog.String("order_id", order.ID.String()))

	c.JSON(http.StatusOK, gin.H{"message": "Checkout successful", "order": toOrderDTO(order)})
}

func (h *Handler) badRequest(c *gin.Context, message string, err error) {
	attrs := []any{slog.String(ctxRequestID, c.GetString(ctxRequestID))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	h.logger.Warn(message, attrs...)

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": message})
}

// fail maps service errors onto HTTP statuses.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		status, message = http.StatusNotFound, "Item not found in cart"
	case errors.Is(err, domain.ErrEmptyCart):
		status, message = http.StatusConflict, "Cart is empty"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		status, message = http.StatusConflict, "Item currency does not match cart"
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	h.logger.Log(c.Request.Context(), level, op+" failed",
		slog.String(ctxRequestID, c.GetString(ctxRequestID)),
		slog.String(ctxOwnerID, c.GetString(ctxOwnerID)),
		slog.String("error", err.Error()))

	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
