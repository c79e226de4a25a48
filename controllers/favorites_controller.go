package controllers

import (
	"table-tap/models"
	"table-tap/services"

	"github.com/gin-gonic/gin"
)

type FavoritesController struct {
	favorites *services.FavoritesService
	catalog   *services.CatalogService
}

func NewFavoritesController(favorites *services.FavoritesService, catalog *services.CatalogService) *FavoritesController {
	return &FavoritesController{favorites: favorites, catalog: catalog}
}

// List godoc
// @Summary List favorites
// @Description Get the current user's liked menu items
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /favorites [get]
func (ctrl *FavoritesController) List(c *gin.Context) {
	items, err := ctrl.favorites.List(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load favorites"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Favorites retrieved successfully", Data: items})
}

// Add godoc
// @Summary Add favorite
// @Description Like a menu item; duplicates are ignored
// @Tags Favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddFavoriteRequest true "Item to like"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites [post]
func (ctrl *FavoritesController) Add(c *gin.Context) {
	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, err := ctrl.catalog.Item(req.ItemID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	if err := ctrl.favorites.Add(c.Request.Context(), c.GetInt("user_id"), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save favorite"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Favorite added successfully"})
}

// Remove godoc
// @Summary Remove favorite
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /favorites/{id} [delete]
func (ctrl *FavoritesController) Remove(c *gin.Context) {
	if err := ctrl.favorites.Remove(c.Request.Context(), c.GetInt("user_id"), c.Param("id")); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove favorite"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Favorite removed successfully"})
}
