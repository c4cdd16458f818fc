package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

func TestCommands(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := service.NewCart(repository.NewMemory(), events.NewNoop(), logger)
	require.NoError(t, err)

	srv := httptest.NewServer(server.API(svc, server.Options{
		GinMode:        gin.TestMode,
		DefaultOwnerID: "guest",
		Logger:         logger,
	}))
	t.Cleanup(srv.Close)

	mug := domain.CartItem{
		ID:       uuid.New(),
		Name:     "Mug",
		Price:    domain.NewMoney(decimal.NewFromInt(10), currency.USD),
		Quantity: 2,
	}
	tea := domain.CartItem{
		ID:       uuid.New(),
		Name:     "Tea",
		Price:    domain.NewMoney(decimal.NewFromInt(5), currency.USD),
		Quantity: 1,
	}
	require.NoError(t, svc.AddItem(context.Background(), "carol", mug))
	require.NoError(t, svc.AddItem(context.Background(), "carol", tea))

	run := func(args ...string) string {
		t.Helper()

		var stdout, stderr bytes.Buffer
		cmd := newRootCmd(&stdout, &stderr)
		cmd.SetArgs(append([]string{"--backend-url", srv.URL, "--owner", "carol"}, args...))

		require.NoError(t, cmd.Execute(), stderr.String())

		return stdout.String()
	}

	out := run("show")
	assert.Contains(t, out, "Mug")
	assert.Regexp(t, `Total\s+USD 35\.00`, out)

	out = run("inc", mug.ID.String())
	assert.Regexp(t, `Total\s+USD 45\.00`, out)

	out = run("rm", tea.ID.String())
	assert.NotContains(t, out, "Tea")
	assert.Regexp(t, `Subtotal\s+USD 30\.00`, out)

	// unknown item: backend rejects, page is unchanged
	out = run("dec", uuid.NewString())
	assert.Regexp(t, `Subtotal\s+USD 30\.00`, out)

	out = run("checkout")
	assert.Contains(t, out, "-> /checkout")

	out = run("show")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestCommands_InvalidItemID(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--backend-url", "http://127.0.0.1:1", "inc", "not-a-uuid"})

	require.Error(t, cmd.Execute())
}
