package cart_test

import (
	"testing"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testProducts = []catalog.Product{
		{ID: 1, Name: "Camiseta", Price: decimal.RequireFromString("25.00"), Image: "tee.jpg", Stock: 10},
		{ID: 3, Name: "Gorra", Price: decimal.RequireFromString("25.00"), Stock: 3},
	}
	testServices = []catalog.Service{
		{ID: 1, Name: "Clase privada", Price: decimal.RequireFromString("500"), TimeSlots: []string{"10:00"}},
	}
)

func TestResolve(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("follows_cart_order_and_joins_catalog", func(t *testing.T) {
		lines := []cart.Line{
			{ItemID: 1, Kind: cart.KindService, Quantity: 1, ReservationDate: &date, ReservationTime: "10:00"},
			{ItemID: 3, Kind: cart.KindProduct, Quantity: 2},
		}

		items := cart.Resolve(lines, testProducts, testServices)
		require.Len(t, items, 2)

		assert.Equal(t, "Clase privada", items[0].Name)
		assert.Equal(t, cart.KindService, items[0].Kind)
		assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, "10:00", items[0].ReservationTime)
		require.NotNil(t, items[0].ReservationDate)
		assert.Equal(t, date, *items[0].ReservationDate)

		assert.Equal(t, "Gorra", items[1].Name)
		assert.Equal(t, 2, items[1].Quantity)
		assert.Equal(t, "50.00", items[1].LineTotal().StringFixed(2))
	})

	t.Run("drops_stale_ids", func(t *testing.T) {
		lines := []cart.Line{
			{ItemID: 99, Kind: cart.KindProduct, Quantity: 1},
			{ItemID: 1, Kind: cart.KindProduct, Quantity: 1},
			{ItemID: 3, Kind: cart.KindService, Quantity: 1},
		}

		items := cart.Resolve(lines, testProducts, testServices)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].ID)
		assert.Equal(t, cart.KindProduct, items[0].Kind)
	})

	t.Run("is_deterministic", func(t *testing.T) {
		lines := []cart.Line{
			{ItemID: 3, Kind: cart.KindProduct, Quantity: 1},
			{ItemID: 1, Kind: cart.KindService, Quantity: 1},
		}
		assert.Equal(t,
			cart.Resolve(lines, testProducts, testServices),
			cart.Resolve(lines, testProducts, testServices),
		)
	})

	t.Run("empty_cart", func(t *testing.T) {
		assert.Empty(t, cart.Resolve(nil, testProducts, testServices))
	})
}
