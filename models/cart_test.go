package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = MenuItem{ID: "burger", Name: "Burger", Price: 10.99, Category: "main-courses"}
	fries  = MenuItem{ID: "fries", Name: "Fries", Price: 3.99, Category: "starters"}
)

func TestCart_Add_NewItem(t *testing.T) {
	cart := Cart{}.Add(burger)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "burger", cart.Lines[0].Item.ID)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_Add_RepeatedItemIncrementsQuantity(t *testing.T) {
	cart := Cart{}
	for i := 0; i < 3; i++ {
		cart = cart.Add(burger)
	}

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := Cart{}.Add(burger).Add(fries).Add(burger)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "burger", cart.Lines[0].Item.ID)
	assert.Equal(t, "fries", cart.Lines[1].Item.ID)
}

func TestCart_Remove_DropsWholeLine(t *testing.T) {
	cart := Cart{}.Add(burger).Add(burger).Add(fries)

	cart = cart.Remove("burger")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "fries", cart.Lines[0].Item.ID)
}

func TestCart_Remove_UnknownIDIsNoOp(t *testing.T) {
	cart := Cart{}.Add(burger)

	next := cart.Remove("nonexistent")

	assert.Equal(t, cart.Lines, next.Lines)
}

func TestCart_UpdateQuantity_SetsQuantity(t *testing.T) {
	cart := Cart{}.Add(burger)

	cart = cart.UpdateQuantity("burger", 5)

	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCart_UpdateQuantity_NegativeClampsToZero(t *testing.T) {
	cart := Cart{}.Add(burger)

	cart = cart.UpdateQuantity("burger", -3)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 0, cart.Lines[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroKeepsLine(t *testing.T) {
	cart := Cart{}.Add(burger)

	cart = cart.UpdateQuantity("burger", 0)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 0, cart.Lines[0].Quantity)
	assert.InDelta(t, 0.0, cart.Total(), 0.001)
}

func TestCart_UpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	cart := Cart{}.Add(burger)

	next := cart.UpdateQuantity("nonexistent", 5)

	assert.Equal(t, cart.Lines, next.Lines)
}

func TestCart_Clear(t *testing.T) {
	cart := Cart{}.Add(burger).Add(fries)

	cart = cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.InDelta(t, 0.0, cart.Total(), 0.001)
}

func TestCart_Total_SumOfPriceTimesQuantity(t *testing.T) {
	cart := Cart{}.Add(burger).Add(fries)
	assert.InDelta(t, 14.98, cart.Total(), 0.001)

	cart = cart.Add(burger)
	assert.InDelta(t, 25.97, cart.Total(), 0.001)

	cart = cart.UpdateQuantity("fries", 3)
	assert.InDelta(t, 33.95, cart.Total(), 0.001)

	cart = cart.Remove("burger")
	assert.InDelta(t, 11.97, cart.Total(), 0.001)
}

func TestCart_MutationsAreSnapshots(t *testing.T) {
	original := Cart{}.Add(burger)

	_ = original.Add(fries)
	_ = original.UpdateQuantity("burger", 9)
	_ = original.Remove("burger")
	_ = original.Clear()

	require.Len(t, original.Lines, 1)
	assert.Equal(t, 1, original.Lines[0].Quantity)
	assert.InDelta(t, 10.99, original.Total(), 0.001)
}
