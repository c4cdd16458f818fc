package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/cartview/internal/client"
	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/events"
	"github.com/nikolayk812/cartview/internal/repository"
	"github.com/nikolayk812/cartview/internal/server"
	"github.com/nikolayk812/cartview/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// startBackend runs the real HTTP API over an in-memory store.
func startBackend(t *testing.T) (*service.CartService, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := service.NewCart(repository.NewMemory(), events.NewNoop(), logger)
	require.NoError(t, err)

	srv := httptest.NewServer(server.API(svc, server.Options{
		GinMode:        gin.TestMode,
		DefaultOwnerID: "guest",
		Logger:         logger,
	}))
	t.Cleanup(srv.Close)

	return svc, srv
}

func newClient(t *testing.T, baseURL string, opts ...client.Option) *client.Client {
	t.Helper()

	hc := &http.Client{Transport: &http.Transport{}}
	t.Cleanup(hc.CloseIdleConnections)

	c, err := client.New(baseURL, append([]client.Option{client.WithHTTPClient(hc)}, opts...)...)
	require.NoError(t, err)

	return c
}

func TestNew(t *testing.T) {
	_, err := client.New("localhost")
	require.Error(t, err)

	_, err = client.New("http://localhost:5001/")
	require.NoError(t, err)
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := t.Context()
	svc, srv := startBackend(t)
	c := newClient(t, srv.URL, client.WithOwnerID("alice"))

	mug := domain.CartItem{
		ID:       uuid.New(),
		Name:     "Mug",
		ImageURL: "https://img.example/mug.png",
		Price:    domain.NewMoney(decimal.RequireFromString("10"), currency.USD),
		Quantity: 2,
	}
	tea := domain.CartItem{
		ID:       uuid.New(),
		Name:     "Tea",
		Price:    domain.NewMoney(decimal.RequireFromString("5"), currency.USD),
		Quantity: 1,
	}
	require.NoError(t, svc.AddItem(ctx, "alice", mug))
	require.NoError(t, svc.AddItem(ctx, "alice", tea))

	items, err := c.FetchCart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, mug.ID, items[0].ID)
	assert.Equal(t, "Mug", items[0].Name)
	assert.Equal(t, mug.ImageURL, items[0].ImageURL)
	assert.Equal(t, currency.USD, items[0].Price.Currency)
	assert.True(t, mug.Price.Amount.Equal(items[0].Price.Amount))

	require.NoError(t, c.UpdateQuantity(ctx, mug.ID, domain.Increment))
	require.NoError(t, c.RemoveItem(ctx, tea.ID))

	cart, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	require.NoError(t, c.Checkout(ctx))

	items, err = c.FetchCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_Errors(t *testing.T) {
	ctx := t.Context()
	_, srv := startBackend(t)
	c := newClient(t, srv.URL)

	tests := []struct {
		name       string
		call       func() error
		wantStatus int
	}{
		{
			name:       "update unknown item",
			call:       func() error { return c.UpdateQuantity(ctx, uuid.New(), domain.Increment) },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "update with invalid action",
			call:       func() error { return c.UpdateQuantity(ctx, uuid.New(), domain.QuantityAction("double")) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "remove unknown item",
			call:       func() error { return c.RemoveItem(ctx, uuid.New()) },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "checkout empty cart",
			call:       func() error { return c.Checkout(ctx) },
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, client.ErrUnexpectedStatus)

			var statusErr *client.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
			assert.NotEmpty(t, statusErr.Message)
		})
	}
}

func TestClient_SendsRequestShape(t *testing.T) {
	itemID := uuid.New()

	var (
		gotMethod string
		gotPath   string
		gotOwner  string
		gotBody   map[string]string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotOwner = r.Method, r.URL.Path, r.Header.Get("X-Owner-ID")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL, client.WithOwnerID("bob"))

	require.NoError(t, c.UpdateQuantity(t.Context(), itemID, domain.Decrement))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/cart/update-quantity", gotPath)
	assert.Equal(t, "bob", gotOwner)
	assert.Equal(t, map[string]string{"id": itemID.String(), "action": "decrement"}, gotBody)

	require.NoError(t, c.RemoveItem(t.Context(), itemID))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/cart/"+itemID.String(), gotPath)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(t, url)

	_, err := c.FetchCart(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, client.ErrUnexpectedStatus)
}

func TestClient_FetchCartClampsQuantity(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `[
			{"id":%q,"name":"zero","price":"1","currency":"USD","quantity":0},
			{"id":%q,"name":"negative","price":"1","currency":"USD","quantity":-3},
			{"id":%q,"name":"huge","price":"1","currency":"USD","quantity":9223372036854775807},
			{"id":%q,"name":"normal","price":"1","currency":"USD","quantity":4}
		]`, ids[0], ids[1], ids[2], ids[3])
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL)

	items, err := c.FetchCart(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, domain.MinQuantity, items[0].Quantity)
	assert.Equal(t, domain.MinQuantity, items[1].Quantity)
	assert.Equal(t, domain.MaxQuantity, items[2].Quantity)
	assert.Equal(t, 4, items[3].Quantity)
}

type countingTransport struct {
	calls int
}

func (ct *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	ct.calls++
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`[]`)),
		Request:    r,
	}, nil
}

func TestWithTimeout_KeepsCallerTransport(t *testing.T) {
	transport := &countingTransport{}

	c, err := client.New("http://cart.invalid",
		client.WithHTTPClient(&http.Client{Transport: transport}),
		client.WithTimeout(time.Second))
	require.NoError(t, err)

	items, err := c.FetchCart(t.Context())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, transport.calls)
}
