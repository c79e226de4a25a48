package services

import (
	"testing"

	"table-tap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBurger = models.MenuItem{ID: "burger", Name: "Burger", Price: 10.99, Category: "main-courses"}
	testFries  = models.MenuItem{ID: "fries", Name: "Fries", Price: 3.99, Category: "starters"}
)

func TestCartService_GetReturnsEmptyCartForNewUser(t *testing.T) {
	carts := NewCartService()

	cart := carts.Get(1)

	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddItem(t *testing.T) {
	carts := NewCartService()

	carts.AddItem(1, testBurger)
	cart := carts.AddItem(1, testBurger)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.InDelta(t, 21.98, cart.Total(), 0.001)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	carts := NewCartService()

	carts.AddItem(1, testBurger)
	carts.AddItem(2, testFries)

	require.Len(t, carts.Get(1).Lines, 1)
	assert.Equal(t, "burger", carts.Get(1).Lines[0].Item.ID)
	require.Len(t, carts.Get(2).Lines, 1)
	assert.Equal(t, "fries", carts.Get(2).Lines[0].Item.ID)
}

func TestCartService_RemoveItem(t *testing.T) {
	carts := NewCartService()
	carts.AddItem(1, testBurger)
	carts.AddItem(1, testFries)

	cart := carts.RemoveItem(1, "burger")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "fries", cart.Lines[0].Item.ID)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	carts := NewCartService()
	carts.AddItem(1, testBurger)

	cart := carts.UpdateQuantity(1, "burger", 4)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	cart = carts.UpdateQuantity(1, "burger", -1)
	assert.Equal(t, 0, cart.Lines[0].Quantity)
}

func TestCartService_Clear(t *testing.T) {
	carts := NewCartService()
	carts.AddItem(1, testBurger)

	carts.Clear(1)

	assert.True(t, carts.Get(1).IsEmpty())
}

func TestCartService_Drain(t *testing.T) {
	carts := NewCartService()
	carts.AddItem(1, testBurger)
	carts.AddItem(1, testFries)

	cart, err := carts.Drain(1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.True(t, carts.Get(1).IsEmpty())
}

func TestCartService_Drain_EmptyCart(t *testing.T) {
	carts := NewCartService()

	_, err := carts.Drain(1)

	assert.ErrorIs(t, err, ErrEmptyCart)
}
