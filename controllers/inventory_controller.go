package controllers

import (
	"errors"

	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

// GetInventory godoc
// @Summary Get inventory
// @Tags Admin - Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/inventory [get]
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Inventory retrieved successfully",
		Data:    ctrl.inventory.List(),
	})
}

// GetLowStock godoc
// @Summary Get low-stock items
// @Description Items at or below their reorder point (Admin)
// @Tags Admin - Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/inventory/low-stock [get]
func (ctrl *InventoryController) GetLowStock(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Low stock items retrieved successfully",
		Data:    ctrl.inventory.LowStock(),
	})
}

// CreateInventoryItem godoc
// @Summary Create inventory item
// @Tags Admin - Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateInventoryItemRequest true "Inventory item"
// @Success 201 {object} models.Response
// @Router /admin/inventory [post]
func (ctrl *InventoryController) CreateInventoryItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item := ctrl.inventory.Create(req)
	c.JSON(201, models.Response{Success: true, Message: "Inventory item created successfully", Data: item})
}

// UpdateInventoryItem godoc
// @Summary Update inventory item
// @Tags Admin - Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory item ID"
// @Param request body models.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/inventory/{id} [patch]
func (ctrl *InventoryController) UpdateInventoryItem(c *gin.Context) {
	var req models.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, err := ctrl.inventory.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrInventoryNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Inventory item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update inventory item"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Inventory item updated successfully", Data: item})
}

// DeleteInventoryItem godoc
// @Summary Delete inventory item
// @Tags Admin - Inventory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Inventory item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/inventory/{id} [delete]
func (ctrl *InventoryController) DeleteInventoryItem(c *gin.Context) {
	if err := ctrl.inventory.Delete(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Inventory item not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Inventory item deleted successfully"})
}
