package controllers

import (
	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts   *services.CartService
	catalog *services.CatalogService
}

func NewCartController(carts *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{carts: carts, catalog: catalog}
}

func cartPayload(cart models.Cart) gin.H {
	return gin.H{
		"lines": cart.Lines,
		"total": cart.Total(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart with its recomputed total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.carts.Get(c.GetInt("user_id"))
	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved successfully", Data: cartPayload(cart)})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add one unit of a menu item; repeated adds increment the line quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, err := ctrl.catalog.Item(req.ItemID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	cart := ctrl.carts.AddItem(c.GetInt("user_id"), item)
	c.JSON(200, models.Response{Success: true, Message: "Item added to cart", Data: cartPayload(cart)})
}

// UpdateItem godoc
// @Summary Update cart line quantity
// @Description Set a line's quantity; negative values clamp to zero and the line stays in the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := ctrl.carts.UpdateQuantity(c.GetInt("user_id"), c.Param("id"), req.Quantity)
	c.JSON(200, models.Response{Success: true, Message: "Cart updated successfully", Data: cartPayload(cart)})
}

// RemoveItem godoc
// @Summary Remove cart line
// @Description Delete the line entirely regardless of quantity; unknown ids are a no-op
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.carts.RemoveItem(c.GetInt("user_id"), c.Param("id"))
	c.JSON(200, models.Response{Success: true, Message: "Item removed from cart", Data: cartPayload(cart)})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.carts.Clear(c.GetInt("user_id"))
	c.JSON(200, models.Response{Success: true, Message: "Cart cleared successfully", Data: cartPayload(models.Cart{})})
}
