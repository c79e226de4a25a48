package controllers

import (
	"errors"

	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{catalog: catalog}
}

// GetCategories godoc
// @Summary Get menu categories
// @Description Get the catalog grouped by category
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    ctrl.catalog.Categories(),
	})
}

// GetMenu godoc
// @Summary Get menu items
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Menu retrieved successfully",
		Data:    ctrl.catalog.Items(),
	})
}

// GetMenuItem godoc
// @Summary Get menu item by ID
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	item, err := ctrl.catalog.Item(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Menu item retrieved successfully", Data: item})
}

// CreateMenuItem godoc
// @Summary Create menu item
// @Description Add an item to the catalog (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.Response
// @Router /admin/menu [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, err := ctrl.catalog.CreateItem(req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create menu item"})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Menu item created successfully", Data: item})
}

// UpdateMenuItem godoc
// @Summary Update menu item
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, err := ctrl.catalog.UpdateItem(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu item"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Menu item updated successfully", Data: item})
}

// DeleteMenuItem godoc
// @Summary Delete menu item
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	if err := ctrl.catalog.DeleteItem(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Menu item deleted successfully"})
}
