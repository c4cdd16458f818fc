package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
)

// CartService is the subset of the cart use cases served over HTTP.
type CartService interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, action domain.QuantityAction) (domain.CartItem, error)
	RemoveItem(ctx context.Context, ownerID string, itemID uuid.UUID) error
	Checkout(ctx context.Context, ownerID string) (domain.Order, error)
}

type Handler struct {
	svc    CartService
	logger *slog.Logger
}

type Options struct {
	GinMode        string
	DefaultOwnerID string
	Logger         *slog.Logger
}

func API(svc CartService, opts Options) *gin.Engine {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	h := &Handler{svc: svc, logger: opts.Logger}

	r := gin.New()
	r.Use(requestLogger(opts.Logger), gin.Recovery())
	r.GET("/ping", healthCheck)

	api := r.Group("/api")
	api.Use(owner(opts.DefaultOwnerID))
	{
		api.GET("/cart", h.GetCart)
		api.POST("/cart", h.AddItem)
		api.PUT("/cart/update-quantity", h.UpdateQuantity)
		api.DELETE("/cart/:id", h.RemoveItem)
		api.POST("/checkout", h.Checkout)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
