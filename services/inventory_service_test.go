package services

import (
	"testing"

	"table-tap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestInventoryService_CreateAndList(t *testing.T) {
	inventory := NewInventoryService()

	inventory.Create(models.CreateInventoryItemRequest{Name: "Tomatoes", Quantity: 50, Unit: "kg", ReorderPoint: 10})
	inventory.Create(models.CreateInventoryItemRequest{Name: "Flour", Quantity: 20, Unit: "kg", ReorderPoint: 5})

	items := inventory.List()
	require.Len(t, items, 2)
	assert.Equal(t, "Tomatoes", items[0].Name)
	assert.Equal(t, "Flour", items[1].Name)
	assert.False(t, items[0].LastRestocked.IsZero())
}

func TestInventoryService_Update(t *testing.T) {
	inventory := NewInventoryService()
	created := inventory.Create(models.CreateInventoryItemRequest{Name: "Tomatoes", Quantity: 50, ReorderPoint: 10})

	updated, err := inventory.Update(created.ID, models.UpdateInventoryItemRequest{Quantity: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
}

func TestInventoryService_Update_QuantityBumpIsRestock(t *testing.T) {
	inventory := NewInventoryService()
	created := inventory.Create(models.CreateInventoryItemRequest{Name: "Tomatoes", Quantity: 5, ReorderPoint: 10})

	updated, err := inventory.Update(created.ID, models.UpdateInventoryItemRequest{Quantity: intPtr(50)})
	require.NoError(t, err)
	assert.False(t, updated.LastRestocked.Before(created.LastRestocked))
}

func TestInventoryService_Update_NotFound(t *testing.T) {
	inventory := NewInventoryService()

	_, err := inventory.Update("nonexistent", models.UpdateInventoryItemRequest{})
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryService_Delete(t *testing.T) {
	inventory := NewInventoryService()
	created := inventory.Create(models.CreateInventoryItemRequest{Name: "Tomatoes"})

	require.NoError(t, inventory.Delete(created.ID))
	assert.Empty(t, inventory.List())

	assert.ErrorIs(t, inventory.Delete(created.ID), ErrInventoryNotFound)
}

func TestInventoryService_LowStock(t *testing.T) {
	inventory := NewInventoryService()
	inventory.Create(models.CreateInventoryItemRequest{Name: "Tomatoes", Quantity: 50, ReorderPoint: 10})
	low := inventory.Create(models.CreateInventoryItemRequest{Name: "Flour", Quantity: 5, ReorderPoint: 5})
	out := inventory.Create(models.CreateInventoryItemRequest{Name: "Sugar", Quantity: 0, ReorderPoint: 2})

	items := inventory.LowStock()
	require.Len(t, items, 2)
	assert.Equal(t, low.ID, items[0].ID)
	assert.Equal(t, out.ID, items[1].ID)
}
