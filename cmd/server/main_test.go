package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"pays-go/internal/order"
	"pays-go/internal/pays"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler(t *testing.T) {
	cfg, err := pays.NewConfig(123, 456, "secret", true)
	require.NoError(t, err)

	t.Run("RedirectsToGateway", func(t *testing.T) {
		orders := order.NewMemoryService()
		handler := checkoutHandler(cfg, orders, "https://shop.example/return")

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/checkout?price=19.99&currency=CZK&email=jan@example.com", nil))

		require.Equal(t, http.StatusFound, rec.Code)

		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "https://www.pays.cz/paymentorder", loc.Scheme+"://"+loc.Host+loc.Path)

		q := loc.Query()
		assert.Equal(t, "123", q.Get("Merchant"))
		assert.Equal(t, "456", q.Get("Shop"))
		assert.Equal(t, "CZK", q.Get("Currency"))
		assert.Equal(t, "1999", q.Get("Amount"))
		assert.Equal(t, "jan@example.com", q.Get("Email"))
		assert.Equal(t, "https://shop.example/return", q.Get("ReturnURL"))

		// A pending order exists under the generated ID.
		o, ok := orders.Get(q.Get("MerchantOrderNumber"))
		require.True(t, ok)
		assert.Equal(t, order.StatusPending, o.Status)
		assert.Equal(t, int64(1999), o.Amount)
	})

	t.Run("BadPrice", func(t *testing.T) {
		handler := checkoutHandler(cfg, order.NewMemoryService(), "")

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/checkout?price=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("BadCurrency", func(t *testing.T) {
		handler := checkoutHandler(cfg, order.NewMemoryService(), "")

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/checkout?price=10&currency=GBP", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
