package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

type Client struct {
	baseURL    *url.URL
	ownerID    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithOwnerID sends X-Owner-ID on every request; without it the backend uses its default owner.
func WithOwnerID(ownerID string) Option {
	return func(c *Client) {
		c.ownerID = ownerID
	}
}

// WithTimeout sets the request timeout on a copy of the configured http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL[%s] must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

var _ port.CartBackend = (*Client)(nil)

type wireItem struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity"`
}

func (c *Client) FetchCart(ctx context.Context) ([]domain.CartItem, error) {
	var wire []wireItem
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &wire); err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(wire))
	for _, w := range wire {
		unit := domain.DefaultCurrency
		if w.Currency != "" {
			var err error
			if unit, err = currency.ParseISO(w.Currency); err != nil {
				return nil, fmt.Errorf("item[%s] currency[%s] is not valid: %w", w.ID, w.Currency, err)
			}
		}

		items = append(items, domain.CartItem{
			ID:       w.ID,
			Name:     w.Name,
			ImageURL: w.Image,
			Price:    domain.NewMoney(w.Price, unit),
			// a line always holds at least one unit, whatever the backend sent
			Quantity: domain.ClampQuantity(w.Quantity),
		})
	}

	return items, nil
}

func (c *Client) UpdateQuantity(ctx context.Context, itemID uuid.UUID, action domain.QuantityAction) error {
	body := struct {
		ID     uuid.UUID             `json:"id"`
		Action domain.QuantityAction `json:"action"`
	}{
		ID:     itemID,
		Action: action,
	}

	return c.do(ctx, http.MethodPut, "/api/cart/update-quantity", body, nil)
}

func (c *Client) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(itemID.String()), nil, nil)
}

func (c *Client) Checkout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/checkout", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ownerID != "" {
		req.Header.Set("X-Owner-ID", c.ownerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ack struct {
			Message string `json:"message"`
		}
		// error bodies are informational only
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&ack)

		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    ack.Message,
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
